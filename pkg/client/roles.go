package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type RoleClient struct {
	c *Client
}

func (r *RoleClient) List(ctx context.Context) ([]Role, error) {
	var out []Role
	err := r.c.doJSON(ctx, http.MethodGet, "/roles", nil, nil, &out)
	return out, err
}

func (r *RoleClient) Get(ctx context.Context, id int64) (Role, error) {
	var out Role
	err := r.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/roles/%d", id), nil, nil, &out)
	return out, err
}

func (r *RoleClient) GetByName(ctx context.Context, name string) (Role, error) {
	var out Role
	err := r.c.doJSON(ctx, http.MethodGet, "/roles/name/"+url.PathEscape(name), nil, nil, &out)
	return out, err
}

func (r *RoleClient) Create(ctx context.Context, req Role) (Role, error) {
	var out Role
	err := r.c.doJSON(ctx, http.MethodPost, "/roles", nil, req, &out)
	return out, err
}

func (r *RoleClient) Update(ctx context.Context, id int64, req Role) (Role, error) {
	var out Role
	err := r.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/roles/%d", id), nil, req, &out)
	return out, err
}

func (r *RoleClient) Delete(ctx context.Context, id int64) error {
	return r.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/roles/%d", id), nil, nil, nil)
}
