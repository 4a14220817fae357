package api

import (
	"context"
	"fmt"
)

// Department mirrors the backend's department resource.
type Department struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// Departments exposes the /api/departments endpoints.
type Departments struct {
	c *Client
}

func NewDepartments(c *Client) *Departments {
	return &Departments{c: c}
}

func (d *Departments) List(ctx context.Context) ([]Department, error) {
	var out []Department
	if err := d.c.getJSON(ctx, "/api/departments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d *Departments) Get(ctx context.Context, id int64) (*Department, error) {
	var out Department
	if err := d.c.getJSON(ctx, fmt.Sprintf("/api/departments/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *Departments) Create(ctx context.Context, dep Department) (*Department, error) {
	var out Department
	if err := d.c.postJSON(ctx, "/api/departments", dep, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *Departments) Update(ctx context.Context, id int64, dep Department) (*Department, error) {
	var out Department
	if err := d.c.putJSON(ctx, fmt.Sprintf("/api/departments/%d", id), dep, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *Departments) Delete(ctx context.Context, id int64) error {
	return d.c.delete(ctx, fmt.Sprintf("/api/departments/%d", id))
}
