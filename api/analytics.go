package api

import "context"

// DepartmentCount backs the employees-by-department chart.
type DepartmentCount struct {
	DepartmentName string `json:"departmentName"`
	EmployeeCount  int64  `json:"employeeCount"`
}

// Analytics exposes the summary endpoints the dashboard charts render from.
type Analytics struct {
	c *Client
}

func NewAnalytics(c *Client) *Analytics {
	return &Analytics{c: c}
}

func (a *Analytics) EmployeesByDepartment(ctx context.Context) ([]DepartmentCount, error) {
	var out []DepartmentCount
	if err := a.c.getJSON(ctx, "/api/analytics/employees-by-department", &out); err != nil {
		return nil, err
	}
	return out, nil
}
