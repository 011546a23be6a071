package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ems-platform/pkg/session"
)

// Config wires a Client to its collaborators. Session is required; it is
// both the token source for outgoing requests and the target of the
// 401-clears-session policy.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    *session.Store
	Navigator  Navigator
}

// Client is the typed entry point to the backend API. Resource groups hang
// off it; all of their calls share one decorated transport.
type Client struct {
	base    *url.URL
	http    *http.Client
	session *session.Store

	Auth      *AuthClient
	Employees *EmployeeClient
	Leaves    *LeaveClient
	Roles     *RoleClient
	Users     *UserClient
}

func New(cfg Config) (*Client, error) {
	if cfg.Session == nil {
		return nil, errors.New("client: session store is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" {
		return nil, fmt.Errorf("client: invalid base url %q", cfg.BaseURL)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	inner := hc.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}
	decorated := &http.Client{
		Transport:     &authTransport{base: inner, session: cfg.Session, nav: cfg.Navigator},
		Timeout:       hc.Timeout,
		CheckRedirect: hc.CheckRedirect,
		Jar:           hc.Jar,
	}

	c := &Client{base: base, http: decorated, session: cfg.Session}
	c.Auth = &AuthClient{c: c}
	c.Employees = &EmployeeClient{c: c}
	c.Leaves = &LeaveClient{c: c}
	c.Roles = &RoleClient{c: c}
	c.Users = &UserClient{c: c}
	return c, nil
}

// Session exposes the store for guard construction and UI chrome.
func (c *Client) Session() *session.Store { return c.session }

// Dashboard fetches the aggregate summary behind the dashboard screen.
func (c *Client) Dashboard(ctx context.Context) (DashboardSummary, error) {
	var out DashboardSummary
	err := c.doJSON(ctx, http.MethodGet, "/dashboard/summary", nil, nil, &out)
	return out, err
}

// APIError is a non-2xx backend response. Authorization failures still
// surface as APIError after the transport has run its redirect side effects.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// doJSON performs one call: marshal body, decorate, check status, decode
// into out. A nil out discards the response body.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(raw))
}
