package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence contract for audit events.
// It MUST be append-only; no Update/Delete methods are provided.
type Repository interface {
	Append(ctx context.Context, e Event) error
}

var ErrInvalidEvent = errors.New("audit: invalid event")

// Service logs internal audit information. Callers should treat audit
// logging as best-effort and only warn on failures.
type Service struct {
	repo  Repository
	clock func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, clock: time.Now}
}

func (s *Service) Append(ctx context.Context, e Event) error {
	if s.repo == nil {
		return errors.New("audit: repository not configured")
	}
	if e.Type == "" {
		return ErrInvalidEvent
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = s.clock().UTC()
	}
	return s.repo.Append(ctx, e)
}

// LogLogin records a successful authentication.
func (s *Service) LogLogin(ctx context.Context, userID int64, role, ip string) error {
	return s.Append(ctx, Event{
		Type:        EventTypeLogin,
		ActorUserID: userID,
		ActorRole:   role,
		IPAddress:   ip,
		Message:     "login succeeded",
	})
}

// LogLoginFailed records a rejected login attempt. The username goes in the
// message because there may be no account behind it.
func (s *Service) LogLoginFailed(ctx context.Context, username, ip string) error {
	return s.Append(ctx, Event{
		Type:      EventTypeLoginFailed,
		IPAddress: ip,
		Message:   fmt.Sprintf("login failed for %q", username),
	})
}

// LogUserStatusChanged records an account being activated or deactivated.
func (s *Service) LogUserStatusChanged(ctx context.Context, actorUserID int64, actorRole, ip string, targetUserID int64, active bool) error {
	msg := "user deactivated"
	if active {
		msg = "user activated"
	}
	return s.Append(ctx, Event{
		Type:        EventTypeUserStatusChanged,
		ActorUserID: actorUserID,
		ActorRole:   actorRole,
		IPAddress:   ip,
		TargetID:    targetUserID,
		Message:     msg,
	})
}

// LogLeaveDecision records an approve/reject/cancel on a leave request.
func (s *Service) LogLeaveDecision(ctx context.Context, actorUserID int64, actorRole, ip string, leaveRequestID int64, decision string) error {
	return s.Append(ctx, Event{
		Type:        EventTypeLeaveDecision,
		ActorUserID: actorUserID,
		ActorRole:   actorRole,
		IPAddress:   ip,
		TargetID:    leaveRequestID,
		Message:     "leave request " + decision,
	})
}

// LogPasswordReset records a completed password reset. The actor is unknown
// at this point; only the target account is recorded.
func (s *Service) LogPasswordReset(ctx context.Context, targetUserID int64, ip string) error {
	return s.Append(ctx, Event{
		Type:      EventTypePasswordReset,
		IPAddress: ip,
		TargetID:  targetUserID,
		Message:   "password reset completed",
	})
}
