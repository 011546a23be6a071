package client

import (
	"context"
	"net/http"
	"net/url"

	"ems-platform/pkg/session"
)

// AuthClient covers the credential lifecycle. Login and Register feed the
// session store directly; everything else is a plain call.
type AuthClient struct {
	c *Client
}

// Login authenticates and records the returned token and principal in the
// session before returning.
func (a *AuthClient) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	var out LoginResponse
	body := map[string]string{"username": username, "password": password}
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return LoginResponse{}, err
	}
	if err := a.recordSession(out); err != nil {
		return LoginResponse{}, err
	}
	return out, nil
}

// Register creates an account and logs it straight in, mirroring Login.
func (a *AuthClient) Register(ctx context.Context, req RegisterRequest) (LoginResponse, error) {
	var out LoginResponse
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return LoginResponse{}, err
	}
	if err := a.recordSession(out); err != nil {
		return LoginResponse{}, err
	}
	return out, nil
}

// Logout is purely client-side: bearer tokens are not revocable here.
func (a *AuthClient) Logout() {
	a.c.session.Clear()
}

// ForgotPassword requests a reset token. The backend has no mail delivery,
// so the token comes back in the response for the caller to present.
func (a *AuthClient) ForgotPassword(ctx context.Context, email string) (PasswordResetIssue, error) {
	var out PasswordResetIssue
	body := map[string]string{"email": email}
	if err := a.c.doJSON(ctx, http.MethodPost, "/auth/forgot-password", nil, body, &out); err != nil {
		return PasswordResetIssue{}, err
	}
	return out, nil
}

func (a *AuthClient) ValidateResetToken(ctx context.Context, token string) (bool, error) {
	var out struct {
		Valid bool `json:"valid"`
	}
	q := url.Values{"token": {token}}
	if err := a.c.doJSON(ctx, http.MethodGet, "/auth/validate-reset-token", q, nil, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

func (a *AuthClient) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return a.c.doJSON(ctx, http.MethodPost, "/auth/reset-password", nil, body, nil)
}

func (a *AuthClient) recordSession(resp LoginResponse) error {
	return a.c.session.RecordLogin(resp.Token, session.Principal{
		UserID:     resp.UserID,
		Username:   resp.Username,
		Email:      resp.Email,
		RoleName:   resp.RoleName,
		EmployeeID: resp.EmployeeID,
	})
}
