package audit

import "time"

// Event is an immutable, append-only audit log record.
//
// Invariants:
// - Events are never updated or deleted.
// - Actor and ip capture are best-effort; never block business flows on audit failures.
type Event struct {
	ID string `json:"id" db:"id"`

	// Type indicates the business category of the audit record.
	Type EventType `json:"type" db:"type"`

	// ActorUserID is the authenticated account causing the event, zero for
	// anonymous flows (failed logins, password resets).
	ActorUserID int64  `json:"actorUserId,omitempty" db:"actor_user_id"`
	ActorRole   string `json:"actorRole,omitempty" db:"actor_role"`

	// IPAddress captures the original client IP when available.
	IPAddress string `json:"ipAddress,omitempty" db:"ip_address"`

	// TargetID is the record the event acted on, keyed by Type (a user id for
	// account events, a leave request id for leave decisions).
	TargetID int64 `json:"targetId,omitempty" db:"target_id"`

	// Message is a short human-readable description for internal ops.
	Message string `json:"message,omitempty" db:"message"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type EventType string

const (
	EventTypeLogin             EventType = "login"
	EventTypeLoginFailed       EventType = "login_failed"
	EventTypeUserStatusChanged EventType = "user_status_changed"
	EventTypeLeaveDecision     EventType = "leave_decision"
	EventTypePasswordReset     EventType = "password_reset"
)
