package api

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// AuditEntry is one row of the backend's audit trail.
type AuditEntry struct {
	ID           int64     `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	ActorUserID  int64     `json:"actorUserId"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resourceType"`
	ResourceID   string    `json:"resourceId,omitempty"`
	Details      string    `json:"details,omitempty"`
	IP           string    `json:"ip,omitempty"`
	UserAgent    string    `json:"userAgent,omitempty"`
	Impersonated bool      `json:"impersonated"`
}

// AuditPage is the backend's page envelope.
type AuditPage struct {
	Content       []AuditEntry `json:"content"`
	TotalPages    int          `json:"totalPages"`
	TotalElements int64        `json:"totalElements"`
	Number        int          `json:"number"`
	Size          int          `json:"size"`
}

// AuditFilter narrows an audit query. Zero values mean "no constraint".
type AuditFilter struct {
	ActorUserID  int64
	Action       string
	ResourceType string
	StartDate    time.Time
	EndDate      time.Time
}

// DefaultAuditSort matches the viewer's default ordering.
const DefaultAuditSort = "timestamp,desc"

// Audit exposes the audit log query endpoint.
type Audit struct {
	c *Client
}

func NewAudit(c *Client) *Audit {
	return &Audit{c: c}
}

// Query fetches one page of audit entries. page is zero-based; sort is a
// "field,direction" specifier, DefaultAuditSort when empty.
func (a *Audit) Query(ctx context.Context, filter AuditFilter, page, size int, sort string) (*AuditPage, error) {
	if size <= 0 {
		size = 20
	}
	if sort == "" {
		sort = DefaultAuditSort
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))
	params.Set("sort", sort)
	if filter.ActorUserID != 0 {
		params.Set("actorUserId", strconv.FormatInt(filter.ActorUserID, 10))
	}
	if filter.Action != "" {
		params.Set("action", filter.Action)
	}
	if filter.ResourceType != "" {
		params.Set("resourceType", filter.ResourceType)
	}
	if !filter.StartDate.IsZero() {
		params.Set("startDate", filter.StartDate.UTC().Format(time.RFC3339))
	}
	if !filter.EndDate.IsZero() {
		params.Set("endDate", filter.EndDate.UTC().Format(time.RFC3339))
	}

	var out AuditPage
	if err := a.c.getJSON(ctx, "/api/admin/audit-logs?"+params.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
