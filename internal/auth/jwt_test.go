package auth

import (
	"testing"
	"time"

	"ems-platform/internal/config"
)

func TestIssueAndVerify(t *testing.T) {
	m, err := NewManager(config.AuthConfig{
		JWTSecret:      "secret",
		JWTIssuer:      "issuer",
		JWTAudience:    "aud",
		AccessTokenTTL: 15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("manager: %v", err)
	}

	empID := int64(7)
	now := time.Unix(1700000000, 0).UTC()
	tok, err := m.Issue(now, Identity{UserID: 1, Username: "alice", Email: "a@x.com", Role: "Admin", EmployeeID: &empID})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token string")
	}

	claims, err := m.Verify(tok, now.Add(1*time.Minute))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 1 || claims.Username != "alice" || claims.Role != "Admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.EmployeeID == nil || *claims.EmployeeID != 7 {
		t.Fatalf("expected employeeId 7, got %v", claims.EmployeeID)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m, _ := NewManager(config.AuthConfig{JWTSecret: "secret", AccessTokenTTL: time.Minute})
	now := time.Unix(1700000000, 0).UTC()
	tok, err := m.Issue(now, Identity{UserID: 1, Username: "alice", Role: "Employee"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	// Beyond TTL plus the 30s leeway.
	if _, err := m.Verify(tok, now.Add(5*time.Minute)); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m1, _ := NewManager(config.AuthConfig{JWTSecret: "secret-a", AccessTokenTTL: time.Minute})
	m2, _ := NewManager(config.AuthConfig{JWTSecret: "secret-b", AccessTokenTTL: time.Minute})

	now := time.Now()
	tok, err := m1.Issue(now, Identity{UserID: 1, Username: "alice", Role: "Employee"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := m2.Verify(tok, now); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestIssueRejectsIncompleteIdentity(t *testing.T) {
	m, _ := NewManager(config.AuthConfig{JWTSecret: "secret", AccessTokenTTL: time.Minute})
	if _, err := m.Issue(time.Now(), Identity{Username: "alice"}); err == nil {
		t.Fatalf("expected error for missing userId/role")
	}
}
