package api

import (
	"context"
	"fmt"
)

// Employee mirrors the backend's employee resource. Department is embedded
// the way the backend serialises it.
type Employee struct {
	ID         int64       `json:"id,omitempty"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Email      string      `json:"email"`
	Age        int         `json:"age,omitempty"`
	Department *Department `json:"department,omitempty"`
}

// Employees exposes the /api/employees endpoints.
type Employees struct {
	c *Client
}

func NewEmployees(c *Client) *Employees {
	return &Employees{c: c}
}

func (e *Employees) List(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := e.c.getJSON(ctx, "/api/employees", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Employees) Get(ctx context.Context, id int64) (*Employee, error) {
	var out Employee
	if err := e.c.getJSON(ctx, fmt.Sprintf("/api/employees/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Employees) Create(ctx context.Context, emp Employee) (*Employee, error) {
	var out Employee
	if err := e.c.postJSON(ctx, "/api/employees", emp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Employees) Update(ctx context.Context, id int64, emp Employee) (*Employee, error) {
	var out Employee
	if err := e.c.putJSON(ctx, fmt.Sprintf("/api/employees/%d", id), emp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *Employees) Delete(ctx context.Context, id int64) error {
	return e.c.delete(ctx, fmt.Sprintf("/api/employees/%d", id))
}
