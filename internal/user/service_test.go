package user

import (
	"context"
	"errors"
	"testing"

	"ems-platform/internal/employee"
	"ems-platform/internal/role"
)

func newTestService(t *testing.T) (*Service, role.Role, employee.Employee) {
	t.Helper()
	ctx := context.Background()

	roles := role.NewMemoryRepo()
	rl, err := roles.Create(ctx, role.Role{RoleName: "Employee"})
	if err != nil {
		t.Fatalf("seed role: %v", err)
	}

	employees := employee.NewMemoryRepo()
	emp, err := employees.Create(ctx, employee.Employee{FirstName: "Alice", LastName: "Smith", Email: "alice@x.com", RoleID: rl.RoleID})
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	return NewService(NewMemoryRepo(), employees, roles), rl, emp
}

func TestCreate_HashesPasswordAndLinksEmployee(t *testing.T) {
	ctx := context.Background()
	s, rl, emp := newTestService(t)

	u, err := s.Create(ctx, CreateRequest{
		Username: "alice", Password: "correct-horse", Email: "alice@x.com",
		EmployeeID: &emp.EmployeeID, RoleID: rl.RoleID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.PasswordHash == "" || u.PasswordHash == "correct-horse" {
		t.Fatalf("expected hashed password")
	}
	if !u.IsActive {
		t.Fatalf("new users start active")
	}
	if u.EmployeeName != "Alice Smith" {
		t.Fatalf("expected resolved employee name, got %q", u.EmployeeName)
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, rl, _ := newTestService(t)

	req := CreateRequest{Username: "alice", Password: "correct-horse", Email: "a@x.com", RoleID: rl.RoleID}
	if _, err := s.Create(ctx, req); err != nil {
		t.Fatalf("create: %v", err)
	}
	req.Email = "other@x.com"
	if _, err := s.Create(ctx, req); !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	s, rl, _ := newTestService(t)

	created, err := s.Create(ctx, CreateRequest{Username: "alice", Password: "correct-horse", Email: "a@x.com", RoleID: rl.RoleID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Authenticate(ctx, "alice", "correct-horse"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if _, err := s.Authenticate(ctx, "alice", "wrong"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if _, err := s.Authenticate(ctx, "nobody", "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Deactivated accounts cannot log in even with the right password.
	if err := s.Deactivate(ctx, created.UserID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := s.Authenticate(ctx, "alice", "correct-horse"); !errors.Is(err, ErrInactive) {
		t.Fatalf("expected ErrInactive, got %v", err)
	}
	if err := s.Activate(ctx, created.UserID); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if _, err := s.Authenticate(ctx, "alice", "correct-horse"); err != nil {
		t.Fatalf("authenticate after reactivation: %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	s, rl, _ := newTestService(t)

	u, err := s.Create(ctx, CreateRequest{Username: "alice", Password: "correct-horse", Email: "a@x.com", RoleID: rl.RoleID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.ChangePassword(ctx, u.UserID, "wrong", "new-password-1"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if err := s.ChangePassword(ctx, u.UserID, "correct-horse", "short"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for short password, got %v", err)
	}
	if err := s.ChangePassword(ctx, u.UserID, "correct-horse", "new-password-1"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := s.Authenticate(ctx, "alice", "new-password-1"); err != nil {
		t.Fatalf("authenticate with new password: %v", err)
	}
}

func TestFindByLogin(t *testing.T) {
	ctx := context.Background()
	s, rl, _ := newTestService(t)

	if _, err := s.Create(ctx, CreateRequest{Username: "alice", Password: "correct-horse", Email: "a@x.com", RoleID: rl.RoleID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.FindByLogin(ctx, "alice"); err != nil {
		t.Fatalf("by username: %v", err)
	}
	if _, err := s.FindByLogin(ctx, "a@x.com"); err != nil {
		t.Fatalf("by email: %v", err)
	}
	if _, err := s.FindByLogin(ctx, "nobody@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
