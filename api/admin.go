package api

import "context"

// Role and Permission mirror the backend's RBAC entities.
type Role struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Permissions []Permission `json:"permissions,omitempty"`
}

type Permission struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// AdminUser is a user record as the admin screens see it.
type AdminUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Roles    []Role `json:"roles,omitempty"`
}

type roleAssignment struct {
	UserID      int64  `json:"userId"`
	RoleName    string `json:"roleName"`
	ActorUserID int64  `json:"actorUserId"`
}

// Admin exposes the /api/admin endpoints. Every call here is doubly gated:
// the screens consult the role gate before rendering, and the backend rejects
// unauthorized callers with 403 regardless.
type Admin struct {
	c *Client
}

func NewAdmin(c *Client) *Admin {
	return &Admin{c: c}
}

func (a *Admin) Users(ctx context.Context) ([]AdminUser, error) {
	var out []AdminUser
	if err := a.c.getJSON(ctx, "/api/admin/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Admin) Roles(ctx context.Context) ([]Role, error) {
	var out []Role
	if err := a.c.getJSON(ctx, "/api/admin/roles", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Admin) Permissions(ctx context.Context) ([]Permission, error) {
	var out []Permission
	if err := a.c.getJSON(ctx, "/api/admin/permissions", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignRole grants roleName to userID, recording actorUserID in the audit
// trail.
func (a *Admin) AssignRole(ctx context.Context, userID int64, roleName string, actorUserID int64) error {
	return a.c.postJSON(ctx, "/api/admin/users/assign-role", roleAssignment{
		UserID:      userID,
		RoleName:    roleName,
		ActorUserID: actorUserID,
	}, nil)
}

// RemoveRole revokes roleName from userID.
func (a *Admin) RemoveRole(ctx context.Context, userID int64, roleName string, actorUserID int64) error {
	return a.c.postJSON(ctx, "/api/admin/users/remove-role", roleAssignment{
		UserID:      userID,
		RoleName:    roleName,
		ActorUserID: actorUserID,
	}, nil)
}
