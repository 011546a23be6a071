package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type UserClient struct {
	c *Client
}

func (u *UserClient) List(ctx context.Context) ([]User, error) {
	var out []User
	err := u.c.doJSON(ctx, http.MethodGet, "/users", nil, nil, &out)
	return out, err
}

func (u *UserClient) Get(ctx context.Context, id int64) (User, error) {
	var out User
	err := u.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &out)
	return out, err
}

func (u *UserClient) GetByUsername(ctx context.Context, username string) (User, error) {
	var out User
	err := u.c.doJSON(ctx, http.MethodGet, "/users/username/"+url.PathEscape(username), nil, nil, &out)
	return out, err
}

func (u *UserClient) GetByEmployee(ctx context.Context, employeeID int64) (User, error) {
	var out User
	err := u.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/users/employee/%d", employeeID), nil, nil, &out)
	return out, err
}

func (u *UserClient) Create(ctx context.Context, req UserCreate) (User, error) {
	var out User
	err := u.c.doJSON(ctx, http.MethodPost, "/users", nil, req, &out)
	return out, err
}

func (u *UserClient) Update(ctx context.Context, id int64, req User) (User, error) {
	var out User
	err := u.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, req, &out)
	return out, err
}

func (u *UserClient) Delete(ctx context.Context, id int64) error {
	return u.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}

func (u *UserClient) ChangePassword(ctx context.Context, id int64, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return u.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d/change-password", id), nil, body, nil)
}

func (u *UserClient) Activate(ctx context.Context, id int64) error {
	return u.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d/activate", id), nil, nil, nil)
}

func (u *UserClient) Deactivate(ctx context.Context, id int64) error {
	return u.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d/deactivate", id), nil, nil, nil)
}
