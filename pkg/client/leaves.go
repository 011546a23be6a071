package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type LeaveClient struct {
	c *Client
}

func (l *LeaveClient) List(ctx context.Context) ([]LeaveRequest, error) {
	var out []LeaveRequest
	err := l.c.doJSON(ctx, http.MethodGet, "/leave-requests", nil, nil, &out)
	return out, err
}

func (l *LeaveClient) Get(ctx context.Context, id int64) (LeaveRequest, error) {
	var out LeaveRequest
	err := l.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/leave-requests/%d", id), nil, nil, &out)
	return out, err
}

func (l *LeaveClient) Create(ctx context.Context, req LeaveRequestCreate) (LeaveRequest, error) {
	var out LeaveRequest
	err := l.c.doJSON(ctx, http.MethodPost, "/leave-requests", nil, req, &out)
	return out, err
}

func (l *LeaveClient) Update(ctx context.Context, id int64, req LeaveRequestCreate) (LeaveRequest, error) {
	var out LeaveRequest
	err := l.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/leave-requests/%d", id), nil, req, &out)
	return out, err
}

func (l *LeaveClient) Delete(ctx context.Context, id int64) error {
	return l.c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/leave-requests/%d", id), nil, nil, nil)
}

func (l *LeaveClient) ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveRequest, error) {
	var out []LeaveRequest
	err := l.c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/leave-requests/employee/%d", employeeID), nil, nil, &out)
	return out, err
}

func (l *LeaveClient) ListByStatus(ctx context.Context, status string) ([]LeaveRequest, error) {
	var out []LeaveRequest
	err := l.c.doJSON(ctx, http.MethodGet, "/leave-requests/status", url.Values{"status": {status}}, nil, &out)
	return out, err
}

func (l *LeaveClient) ListPending(ctx context.Context) ([]LeaveRequest, error) {
	var out []LeaveRequest
	err := l.c.doJSON(ctx, http.MethodGet, "/leave-requests/pending", nil, nil, &out)
	return out, err
}

func (l *LeaveClient) Approve(ctx context.Context, id int64) (LeaveRequest, error) {
	var out LeaveRequest
	err := l.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/leave-requests/%d/approve", id), nil, nil, &out)
	return out, err
}

func (l *LeaveClient) Reject(ctx context.Context, id int64, reason string) (LeaveRequest, error) {
	var out LeaveRequest
	body := map[string]string{"reason": reason}
	err := l.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/leave-requests/%d/reject", id), nil, body, &out)
	return out, err
}

func (l *LeaveClient) Cancel(ctx context.Context, id int64) (LeaveRequest, error) {
	var out LeaveRequest
	err := l.c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/leave-requests/%d/cancel", id), nil, nil, &out)
	return out, err
}
