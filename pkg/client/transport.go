package client

import (
	"net/http"
	"strings"

	"ems-platform/pkg/session"
)

// Navigator receives redirect decisions from the transport and the route
// guard. A UI would swap screens; a CLI prints guidance.
type Navigator interface {
	NavigateTo(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) NavigateTo(path string) { f(path) }

// authTransport is the single interception point for outgoing requests: it
// attaches the bearer token from the session and reacts to authorization
// failures. Every resource client call flows through it.
//
// 401 policy: force-clear the session and redirect to login. A UI that looks
// logged in while every call fails is worse than an eager logout.
// 403 leaves the session alone; the user is still who they are, just not
// allowed this action.
type authTransport struct {
	base    http.RoundTripper
	session *session.Store
	nav     Navigator
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// The login call passes through untouched in both directions: it must
	// never carry a possibly-stale token, and its own 401 means bad
	// credentials, not a stale session.
	isLogin := strings.HasSuffix(req.URL.Path, "/auth/login")
	if !isLogin {
		if token, ok := t.session.Token(); ok {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil || isLogin {
		return resp, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		t.session.Clear()
		if t.nav != nil {
			t.nav.NavigateTo("/login")
		}
	case http.StatusForbidden:
		if t.nav != nil {
			t.nav.NavigateTo("/unauthorized")
		}
	}
	return resp, nil
}
