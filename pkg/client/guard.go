package client

import (
	"net/url"
	"strings"

	"ems-platform/pkg/session"
)

// RouteRule declares who may reach a path. An empty Roles set on a
// non-public route means "authenticated only, any role".
type RouteRule struct {
	Pattern string
	Public  bool
	Roles   []string
}

// DefaultRoutes is the application route surface. Order matters: literal
// segments are listed before parameterized ones so /employees/create wins
// over /employees/:id.
var DefaultRoutes = []RouteRule{
	{Pattern: "/login", Public: true},
	{Pattern: "/register", Public: true},
	{Pattern: "/forgot-password", Public: true},
	{Pattern: "/unauthorized", Public: true},
	{Pattern: "/dashboard"},
	{Pattern: "/employees", Roles: []string{"Admin", "Manager"}},
	{Pattern: "/employees/create", Roles: []string{"Admin", "Manager"}},
	{Pattern: "/employees/edit/:id", Roles: []string{"Admin", "Manager"}},
	{Pattern: "/employees/:id", Roles: []string{"Admin", "Manager"}},
	{Pattern: "/leave-requests"},
	{Pattern: "/leave-requests/create"},
	{Pattern: "/users"},
	{Pattern: "/profile"},
}

// Decision is the terminal outcome of a guard evaluation: either the
// navigation proceeds, or it is replaced by a redirect.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// Guard runs the two-gate check before a screen is activated. It is a pure
// function of session state and route metadata: no network calls, no side
// effects beyond the returned redirect.
type Guard struct {
	session *session.Store
	routes  []RouteRule
}

func NewGuard(sess *session.Store, routes []RouteRule) *Guard {
	if routes == nil {
		routes = DefaultRoutes
	}
	return &Guard{session: sess, routes: routes}
}

// Evaluate resolves a navigation attempt.
//
// Gate 1: authentication. Unauthenticated access to a protected path
// redirects to login carrying the requested path as returnUrl.
// Gate 2: authorization. A declared role set is matched against the
// principal's single role; failure redirects to /unauthorized.
//
// The root path and any unmatched path redirect to login.
func (g *Guard) Evaluate(path string) Decision {
	rule, ok := g.match(path)
	if !ok {
		return Decision{RedirectTo: "/login"}
	}
	if rule.Public {
		return Decision{Allowed: true}
	}

	if !g.session.IsAuthenticated() {
		return Decision{RedirectTo: "/login?returnUrl=" + url.QueryEscape(path)}
	}
	if len(rule.Roles) == 0 {
		return Decision{Allowed: true}
	}
	if g.session.HasAnyRole(rule.Roles...) {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: "/unauthorized"}
}

func (g *Guard) match(path string) (RouteRule, bool) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return RouteRule{}, false
	}
	for _, rule := range g.routes {
		if segmentsMatch(splitPath(rule.Pattern), segs) {
			return rule, true
		}
	}
	return RouteRule{}, false
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// segmentsMatch compares a pattern against a concrete path. A ":name"
// segment matches any single non-empty segment.
func segmentsMatch(pattern, path []string) bool {
	if len(pattern) != len(path) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if path[i] == "" {
				return false
			}
			continue
		}
		if p != path[i] {
			return false
		}
	}
	return true
}
