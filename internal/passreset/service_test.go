package passreset

import (
	"context"
	"errors"
	"testing"
	"time"

	"ems-platform/internal/employee"
	"ems-platform/internal/role"
	"ems-platform/internal/user"
)

func newTestService(t *testing.T) (*Service, *user.Service, user.User, *MemoryTokenStore) {
	t.Helper()
	ctx := context.Background()

	roles := role.NewMemoryRepo()
	rl, err := roles.Create(ctx, role.Role{RoleName: "Employee"})
	if err != nil {
		t.Fatalf("seed role: %v", err)
	}

	users := user.NewService(user.NewMemoryRepo(), employee.NewMemoryRepo(), roles)
	u, err := users.Create(ctx, user.CreateRequest{
		Username: "jdoe",
		Password: "original-pass",
		Email:    "jdoe@example.com",
		RoleID:   rl.RoleID,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	store := NewMemoryTokenStore()
	return NewService(users, store, time.Hour), users, u, store
}

func TestForgotIssuesTokenForKnownLogin(t *testing.T) {
	svc, _, u, _ := newTestService(t)
	ctx := context.Background()

	for _, login := range []string{"jdoe", "jdoe@example.com"} {
		res, err := svc.Forgot(ctx, login)
		if err != nil {
			t.Fatalf("Forgot(%s): %v", login, err)
		}
		if !res.Issued || res.Token == "" || res.UserID != u.UserID {
			t.Fatalf("Forgot(%s) = %+v", login, res)
		}
	}
}

func TestForgotUnknownLoginDoesNotReveal(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Forgot(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("Forgot: %v", err)
	}
	if res.Issued || res.UserID != 0 {
		t.Fatalf("unknown login leaked: %+v", res)
	}
	// The decoy must be shaped like a real token yet redeem nothing.
	if res.Token == "" || res.ExpiresAt.IsZero() {
		t.Fatalf("decoy missing: %+v", res)
	}
	if ok, _ := svc.Validate(ctx, res.Token); ok {
		t.Fatal("decoy token validated")
	}
	if _, err := svc.Reset(ctx, res.Token, "sneaky-pass"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("decoy reset err = %v, want ErrTokenNotFound", err)
	}
}

func TestResetConsumesToken(t *testing.T) {
	svc, users, u, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Forgot(ctx, "jdoe")
	if err != nil {
		t.Fatalf("Forgot: %v", err)
	}

	ok, err := svc.Validate(ctx, res.Token)
	if err != nil || !ok {
		t.Fatalf("Validate = %v, %v", ok, err)
	}

	resetID, err := svc.Reset(ctx, res.Token, "brand-new-pass")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if resetID != u.UserID {
		t.Fatalf("reset user id = %d, want %d", resetID, u.UserID)
	}
	if _, err := users.Authenticate(ctx, u.Username, "brand-new-pass"); err != nil {
		t.Fatalf("authenticate with new password: %v", err)
	}

	if _, err := svc.Reset(ctx, res.Token, "again-pass"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("reuse err = %v, want ErrTokenNotFound", err)
	}
	if ok, _ := svc.Validate(ctx, res.Token); ok {
		t.Fatal("consumed token still validates")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc, _, _, store := newTestService(t)
	ctx := context.Background()

	res, err := svc.Forgot(ctx, "jdoe")
	if err != nil {
		t.Fatalf("Forgot: %v", err)
	}

	store.clock = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if ok, _ := svc.Validate(ctx, res.Token); ok {
		t.Fatal("expired token validates")
	}
	if _, err := svc.Reset(ctx, res.Token, "whatever-pass"); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("expired reset err = %v, want ErrTokenNotFound", err)
	}
}
