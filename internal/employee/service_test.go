package employee

import (
	"context"
	"errors"
	"testing"

	"ems-platform/internal/role"
)

func newTestService(t *testing.T) (*Service, role.Role) {
	t.Helper()
	roles := role.NewMemoryRepo()
	rl, err := roles.Create(context.Background(), role.Role{RoleName: "Employee"})
	if err != nil {
		t.Fatalf("seed role: %v", err)
	}
	return NewService(NewMemoryRepo(), roles), rl
}

func TestCreate_ResolvesRoleName(t *testing.T) {
	ctx := context.Background()
	s, rl := newTestService(t)

	e, err := s.Create(ctx, CreateRequest{
		FirstName: "Alice", LastName: "Smith", Email: "alice@x.com",
		Department: "Engineering", HireDate: "2024-01-15", Salary: 75000, RoleID: rl.RoleID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.EmployeeID == 0 {
		t.Fatalf("expected assigned id")
	}
	if e.RoleName != "Employee" {
		t.Fatalf("expected resolved role name, got %q", e.RoleName)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, rl := newTestService(t)

	req := CreateRequest{FirstName: "Alice", LastName: "Smith", Email: "alice@x.com", RoleID: rl.RoleID}
	if _, err := s.Create(ctx, req); err != nil {
		t.Fatalf("create: %v", err)
	}
	req.Email = "ALICE@x.com" // duplicate check is case-insensitive
	if _, err := s.Create(ctx, req); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreate_UnknownRole(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)

	_, err := s.Create(ctx, CreateRequest{FirstName: "A", LastName: "B", Email: "a@x.com", RoleID: 99})
	if !errors.Is(err, ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}

func TestCreate_RejectsBadInput(t *testing.T) {
	ctx := context.Background()
	s, rl := newTestService(t)

	cases := []CreateRequest{
		{LastName: "B", Email: "a@x.com", RoleID: rl.RoleID},                                        // missing first name
		{FirstName: "A", LastName: "B", Email: "nope", RoleID: rl.RoleID},                           // bad email
		{FirstName: "A", LastName: "B", Email: "a@x.com"},                                           // missing role
		{FirstName: "A", LastName: "B", Email: "a@x.com", RoleID: rl.RoleID, HireDate: "15/01/24"},  // bad date
		{FirstName: "A", LastName: "B", Email: "a@x.com", RoleID: rl.RoleID, Salary: -1},            // negative salary
	}
	for i, req := range cases {
		if _, err := s.Create(ctx, req); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("case %d: expected ErrInvalidArgument, got %v", i, err)
		}
	}
}

func TestUpdate_EmailConflictOnlyAgainstOthers(t *testing.T) {
	ctx := context.Background()
	s, rl := newTestService(t)

	a, _ := s.Create(ctx, CreateRequest{FirstName: "A", LastName: "One", Email: "a@x.com", RoleID: rl.RoleID})
	if _, err := s.Create(ctx, CreateRequest{FirstName: "B", LastName: "Two", Email: "b@x.com", RoleID: rl.RoleID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Re-submitting your own email is not a conflict.
	if _, err := s.Update(ctx, a.EmployeeID, UpdateRequest{Email: "a@x.com", FirstName: "Anna"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	// Taking someone else's is.
	if _, err := s.Update(ctx, a.EmployeeID, UpdateRequest{Email: "b@x.com"}); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestSearchAndFilters(t *testing.T) {
	ctx := context.Background()
	s, rl := newTestService(t)

	if _, err := s.Create(ctx, CreateRequest{FirstName: "Alice", LastName: "Smith", Email: "a@x.com", Department: "Engineering", RoleID: rl.RoleID}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, CreateRequest{FirstName: "Bob", LastName: "Jones", Email: "b@x.com", Department: "Sales", RoleID: rl.RoleID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	byName, err := s.SearchByName(ctx, "smi")
	if err != nil || len(byName) != 1 || byName[0].FirstName != "Alice" {
		t.Fatalf("search: %v %+v", err, byName)
	}

	byDept, err := s.ListByDepartment(ctx, "engineering")
	if err != nil || len(byDept) != 1 {
		t.Fatalf("department filter: %v %+v", err, byDept)
	}

	taken, err := s.EmailTaken(ctx, "b@x.com")
	if err != nil || !taken {
		t.Fatalf("email check: %v %v", err, taken)
	}
}

func TestDelete_Missing(t *testing.T) {
	s, _ := newTestService(t)
	if err := s.Delete(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
