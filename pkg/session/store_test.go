package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	raw, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func adminPrincipal() Principal {
	return Principal{UserID: 1, Username: "alice", Email: "a@x.com", RoleName: "Admin"}
}

func TestLoginThenClear(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	if s.IsAuthenticated() {
		t.Fatal("fresh store authenticated")
	}
	if err := s.RecordLogin("t1", adminPrincipal()); err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Fatal("not authenticated after login")
	}
	p, ok := s.Principal()
	if !ok || p.RoleName != "Admin" || p.Username != "alice" {
		t.Fatalf("principal = %+v, %v", p, ok)
	}
	tok, ok := s.Token()
	if !ok || tok != "t1" {
		t.Fatalf("token = %q, %v", tok, ok)
	}

	s.Clear()
	if s.IsAuthenticated() {
		t.Fatal("authenticated after clear")
	}
	if _, ok := s.Principal(); ok {
		t.Fatal("principal survived clear")
	}
}

func TestClearIsIdempotent(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	var notified int
	s.Subscribe(func() { notified++ })

	s.Clear()
	if notified != 0 {
		t.Fatalf("clear of empty store notified %d times", notified)
	}

	_ = s.RecordLogin("t1", adminPrincipal())
	s.Clear()
	s.Clear()
	if notified != 2 {
		t.Fatalf("notified %d times, want 2 (login + first clear)", notified)
	}
}

func TestRoleChecks(t *testing.T) {
	s := NewStore(NewMemoryStorage())

	if s.HasAnyRole("Admin", "Manager") {
		t.Fatal("role check true without principal")
	}

	p := adminPrincipal()
	p.RoleName = "Employee"
	_ = s.RecordLogin("t1", p)

	if s.HasAnyRole("Admin", "Manager") {
		t.Fatal("employee matched admin/manager")
	}
	if !s.HasAnyRole("Admin", "Employee") {
		t.Fatal("employee did not match own role")
	}
	if !s.HasRole("EMPLOYEE") || !s.HasRole("employee") {
		t.Fatal("role comparison is not case-insensitive")
	}
}

func TestHydrationFromStorage(t *testing.T) {
	storage := NewMemoryStorage()
	first := NewStore(storage)
	_ = first.RecordLogin("t1", adminPrincipal())

	second := NewStore(storage)
	if !second.IsAuthenticated() {
		t.Fatal("rehydrated store not authenticated")
	}
	p, _ := second.Principal()
	if p.Username != "alice" {
		t.Fatalf("rehydrated principal = %+v", p)
	}
}

func TestMalformedPersistedSessionStartsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	_ = storage.Set("auth_token", "t1")
	_ = storage.Set("current_user", "{not json")

	s := NewStore(storage)
	if s.IsAuthenticated() {
		t.Fatal("authenticated from corrupt storage")
	}
	if _, ok := storage.Get("auth_token"); ok {
		t.Fatal("corrupt session not wiped from storage")
	}
}

func TestTokenWithoutPrincipalStartsEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	_ = storage.Set("auth_token", "t1")

	s := NewStore(storage)
	if s.IsAuthenticated() {
		t.Fatal("authenticated with token but no principal")
	}
}

func TestExpiryIntrospection(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	s.clock = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	_ = s.RecordLogin(signedToken(t, time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)), adminPrincipal())
	if s.Expired() {
		t.Fatal("live token reported expired")
	}
	at, ok := s.ExpiresAt()
	if !ok || !at.Equal(time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)) {
		t.Fatalf("ExpiresAt = %v, %v", at, ok)
	}

	_ = s.RecordLogin(signedToken(t, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)), adminPrincipal())
	if !s.Expired() {
		t.Fatal("stale token not reported expired")
	}
	// Stale-but-present still counts as authenticated; the backend's 401 is
	// the enforcement point.
	if !s.IsAuthenticated() {
		t.Fatal("stale token flipped IsAuthenticated")
	}
}

func TestUnparsableTokenFailsClosed(t *testing.T) {
	s := NewStore(NewMemoryStorage())
	_ = s.RecordLogin("not-a-jwt", adminPrincipal())

	if !s.Expired() {
		t.Fatal("unparsable token not treated as expired")
	}
	if _, ok := s.ExpiresAt(); ok {
		t.Fatal("ExpiresAt reported known for unparsable token")
	}
}

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	storage, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	s := NewStore(storage)
	if err := s.RecordLogin("t1", adminPrincipal()); err != nil {
		t.Fatalf("RecordLogin: %v", err)
	}

	reopened, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	s2 := NewStore(reopened)
	if !s2.IsAuthenticated() {
		t.Fatal("session did not survive file round trip")
	}
}

func TestFileStorageCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{{{{"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	storage, err := NewFileStorage(path)
	if err != nil {
		t.Fatalf("NewFileStorage: %v", err)
	}
	if NewStore(storage).IsAuthenticated() {
		t.Fatal("authenticated from corrupt file")
	}
}
