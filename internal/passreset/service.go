package passreset

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"ems-platform/internal/user"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Service issues and redeems password reset tokens. Forgot never reveals
// whether an account exists; the token comes back in the response only
// because there is no mail delivery in this system.
type Service struct {
	users  *user.Service
	tokens TokenStore
	ttl    time.Duration
}

func NewService(users *user.Service, tokens TokenStore, ttl time.Duration) *Service {
	return &Service{users: users, tokens: tokens, ttl: ttl}
}

// ForgotResult always carries a token and expiry so responses built from
// it look the same whether or not an account matched. Issued is for
// internal callers only; leaking it to the requester defeats the point.
type ForgotResult struct {
	Token     string
	UserID    int64
	ExpiresAt time.Time
	Issued    bool
}

// Forgot looks the account up by username or email and, if found, issues a
// single-use token bound to the user id. Unknown logins get a decoy token
// that is never stored and therefore never redeemable.
func (s *Service) Forgot(ctx context.Context, login string) (ForgotResult, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return ForgotResult{}, ErrInvalidArgument
	}

	u, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ForgotResult{
				Token:     uuid.NewString(),
				ExpiresAt: time.Now().UTC().Add(s.ttl),
				Issued:    false,
			}, nil
		}
		return ForgotResult{}, err
	}

	token := uuid.NewString()
	if err := s.tokens.Save(ctx, token, u.UserID, s.ttl); err != nil {
		return ForgotResult{}, err
	}
	return ForgotResult{
		Token:     token,
		UserID:    u.UserID,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
		Issued:    true,
	}, nil
}

// Validate reports whether a token is still redeemable without consuming it.
func (s *Service) Validate(ctx context.Context, token string) (bool, error) {
	if strings.TrimSpace(token) == "" {
		return false, ErrInvalidArgument
	}
	_, err := s.tokens.Peek(ctx, token)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Reset consumes the token and sets the new password, returning the affected
// user id. The token is spent even if it turns out the user row has gone
// away since issuance.
func (s *Service) Reset(ctx context.Context, token, newPassword string) (int64, error) {
	if strings.TrimSpace(token) == "" {
		return 0, ErrInvalidArgument
	}
	userID, err := s.tokens.Consume(ctx, token)
	if err != nil {
		return 0, err
	}
	if err := s.users.ResetPassword(ctx, userID, newPassword); err != nil {
		return 0, err
	}
	return userID, nil
}
