package session

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Durable storage keys. Two entries only: the raw token and the serialized
// principal record.
const (
	tokenKey     = "auth_token"
	principalKey = "current_user"
)

// Principal is the authenticated identity attached to a session. EmployeeID
// is optional because administrative accounts need not map to an employee
// record.
type Principal struct {
	UserID     int64  `json:"userId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	RoleName   string `json:"roleName"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
}

// Store is the single source of truth for "who is logged in". It is
// constructed once at process start, hydrated from durable storage, and
// injected into every consumer.
//
// Invariant: token and principal are set and cleared together, never one
// without the other. Hydration enforces this too: a half-written or
// unparsable persisted session comes up empty instead of erroring.
//
// IsAuthenticated deliberately ignores token expiry; the backend rejecting a
// stale token with 401 is the enforcement point. Expiry is still parsed once
// per token so callers that want to warn can ask Expired().
type Store struct {
	mu        sync.Mutex
	storage   Storage
	token     string
	principal *Principal

	// expiresAt is parsed from the token once, at RecordLogin or hydration.
	// expiryKnown is false when the token could not be introspected; Expired
	// then reports true (fail closed).
	expiresAt   time.Time
	expiryKnown bool

	observers []func()
	clock     func() time.Time
}

// NewStore hydrates a session from storage. Malformed persisted state is
// cleared and the store starts empty; no error reaches the caller for that.
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage, clock: time.Now}

	token, hasToken := storage.Get(tokenKey)
	rawPrincipal, hasPrincipal := storage.Get(principalKey)
	if !hasToken || !hasPrincipal || token == "" {
		s.wipeStorage()
		return s
	}

	var p Principal
	if err := json.Unmarshal([]byte(rawPrincipal), &p); err != nil || p.UserID == 0 {
		s.wipeStorage()
		return s
	}

	s.token = token
	s.principal = &p
	s.expiresAt, s.expiryKnown = introspectExpiry(token)
	return s
}

// RecordLogin stores the credential and principal from a successful
// authentication response. Both are persisted before observers run.
func (s *Store) RecordLogin(token string, p Principal) error {
	s.mu.Lock()
	raw, err := json.Marshal(p)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.storage.Set(tokenKey, token); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.storage.Set(principalKey, string(raw)); err != nil {
		s.mu.Unlock()
		return err
	}

	s.token = token
	s.principal = &p
	s.expiresAt, s.expiryKnown = introspectExpiry(token)
	observers := append([]func(){}, s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
	return nil
}

// Clear removes the session from memory and storage. Idempotent: clearing an
// empty store is a no-op and does not notify.
func (s *Store) Clear() {
	s.mu.Lock()
	if s.token == "" && s.principal == nil {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.principal = nil
	s.expiresAt = time.Time{}
	s.expiryKnown = false
	s.wipeStorage()
	observers := append([]func(){}, s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}

// Token returns the in-memory token; it never re-reads storage.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *Store) Principal() (Principal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return Principal{}, false
	}
	return *s.principal, true
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.principal != nil
}

// HasRole compares case-insensitively; role names arrive in mixed case from
// different backends and route tables.
func (s *Store) HasRole(role string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.principal != nil && strings.EqualFold(s.principal.RoleName, role)
}

func (s *Store) HasAnyRole(roles ...string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.principal == nil {
		return false
	}
	for _, r := range roles {
		if strings.EqualFold(s.principal.RoleName, r) {
			return true
		}
	}
	return false
}

// ExpiresAt reports the token expiry when it could be introspected.
func (s *Store) ExpiresAt() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt, s.expiryKnown
}

// Expired reports whether the held token is past its expiry. A token whose
// expiry could not be parsed counts as expired. An empty store is also
// "expired" in the sense that it holds no usable credential.
func (s *Store) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return true
	}
	if !s.expiryKnown {
		return true
	}
	return !s.clock().Before(s.expiresAt)
}

// Subscribe registers fn to run synchronously after every RecordLogin and
// every effective Clear.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) wipeStorage() {
	_ = s.storage.Delete(tokenKey)
	_ = s.storage.Delete(principalKey)
}

// introspectExpiry decodes the token without verifying its signature, purely
// to read the exp claim. Verification belongs to the backend.
func introspectExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
