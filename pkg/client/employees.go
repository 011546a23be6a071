package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type EmployeeClient struct {
	c *Client
}

func (e *EmployeeClient) List(ctx context.Context) ([]Employee, error) {
	var out []Employee
	err := e.c.doJSON(ctx, http.MethodGet, "/employees", nil, nil, &out)
	return out, err
}

func (e *EmployeeClient) Get(ctx context.Context, id int64) (Employee, error) {
	var out Employee
	err := e.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, nil, &out)
	return out, err
}

func (e *EmployeeClient) Create(ctx context.Context, req EmployeeRequest) (Employee, error) {
	var out Employee
	err := e.c.doJSON(ctx, http.MethodPost, "/employees", nil, req, &out)
	return out, err
}

func (e *EmployeeClient) Update(ctx context.Context, id int64, req EmployeeRequest) (Employee, error) {
	var out Employee
	err := e.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", id), nil, req, &out)
	return out, err
}

func (e *EmployeeClient) Delete(ctx context.Context, id int64) error {
	return e.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, nil, nil)
}

func (e *EmployeeClient) SearchByName(ctx context.Context, name string) ([]Employee, error) {
	var out []Employee
	err := e.c.doJSON(ctx, http.MethodGet, "/employees/search", url.Values{"name": {name}}, nil, &out)
	return out, err
}

func (e *EmployeeClient) ListByDepartment(ctx context.Context, department string) ([]Employee, error) {
	var out []Employee
	err := e.c.doJSON(ctx, http.MethodGet, "/employees/department", url.Values{"department": {department}}, nil, &out)
	return out, err
}

func (e *EmployeeClient) ListByRole(ctx context.Context, roleID int64) ([]Employee, error) {
	var out []Employee
	err := e.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/employees/role/%d", roleID), nil, nil, &out)
	return out, err
}

// CheckEmail reports whether an email is already taken. Used by forms for
// inline validation before submit.
func (e *EmployeeClient) CheckEmail(ctx context.Context, email string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	err := e.c.doJSON(ctx, http.MethodGet, "/employees/check-email", url.Values{"email": {email}}, nil, &out)
	return out.Exists, err
}
