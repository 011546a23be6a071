package role

import (
	"context"
	"errors"
	"testing"
)

func TestCreate_NormalizesAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepo())

	r, err := s.Create(ctx, CreateRequest{RoleName: "ADMIN", Description: "full access"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if r.RoleName != "Admin" {
		t.Fatalf("expected canonical name Admin, got %q", r.RoleName)
	}

	if _, err := s.Create(ctx, CreateRequest{RoleName: "admin"}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestGetByName_IsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepo())

	if _, err := s.Create(ctx, CreateRequest{RoleName: "Manager"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	r, err := s.GetByName(ctx, "mAnAgEr")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if r.RoleName != "Manager" {
		t.Fatalf("unexpected role: %+v", r)
	}
}

func TestUpdate_RenameToExistingNameFails(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewMemoryRepo())

	a, _ := s.Create(ctx, CreateRequest{RoleName: "Admin"})
	if _, err := s.Create(ctx, CreateRequest{RoleName: "Manager"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Update(ctx, a.RoleID, UpdateRequest{RoleName: "manager"}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestDelete_MissingRole(t *testing.T) {
	s := NewService(NewMemoryRepo())
	if err := s.Delete(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
