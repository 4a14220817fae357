// Package rbac is the client-side role gate: a synchronous predicate over the
// stored profile that privileged screens consult before rendering. It is a UX
// courtesy, not a security boundary - the backend independently re-checks
// every privileged operation, so a positive answer here is never treated as
// authorization.
package rbac

import "github.com/jrsteele09/ems-console/session"

// Role names seeded by the backend's RBAC initialiser.
const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleEmployee = "EMPLOYEE"
)

// Gate answers role-membership questions from the session store without ever
// touching the network. A screen whose required role is absent renders an
// access-denied state instead of issuing any request.
type Gate struct {
	store session.Store
}

func NewGate(store session.Store) *Gate {
	return &Gate{store: store}
}

// HasRole reports whether the current user's role set contains name. It is
// false for every role whenever no session exists.
func (g *Gate) HasRole(name string) bool {
	sess, err := g.store.Read()
	if err != nil || sess == nil {
		return false
	}
	return sess.Profile.HasRole(name)
}

// HasAnyRole reports whether the current user holds at least one of names.
// The admin screens gate on ADMIN or HR this way.
func (g *Gate) HasAnyRole(names ...string) bool {
	sess, err := g.store.Read()
	if err != nil || sess == nil {
		return false
	}
	for _, name := range names {
		if sess.Profile.HasRole(name) {
			return true
		}
	}
	return false
}
