package role

import (
	"context"
	"errors"
	"strings"

	"ems-platform/internal/rbac"
)

var (
	ErrNotFound        = errors.New("role not found")
	ErrDuplicateName   = errors.New("role name already exists")
	ErrInvalidArgument = errors.New("invalid argument")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateRequest struct {
	RoleName    string `json:"roleName"`
	Description string `json:"description,omitempty"`
}

type UpdateRequest struct {
	RoleName    string `json:"roleName,omitempty"`
	Description string `json:"description,omitempty"`
}

func (s *Service) List(ctx context.Context) ([]Role, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Role, error) {
	if id <= 0 {
		return Role{}, ErrInvalidArgument
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByName(ctx context.Context, name string) (Role, error) {
	if strings.TrimSpace(name) == "" {
		return Role{}, ErrInvalidArgument
	}
	return s.repo.GetByName(ctx, rbac.Normalize(name))
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Role, error) {
	name := rbac.Normalize(req.RoleName)
	if name == "" {
		return Role{}, ErrInvalidArgument
	}
	exists, err := s.repo.ExistsByName(ctx, name)
	if err != nil {
		return Role{}, err
	}
	if exists {
		return Role{}, ErrDuplicateName
	}
	return s.repo.Create(ctx, Role{RoleName: name, Description: req.Description})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Role, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return Role{}, err
	}

	if req.RoleName != "" {
		name := rbac.Normalize(req.RoleName)
		if !rbac.Matches(cur.RoleName, name) {
			exists, err := s.repo.ExistsByName(ctx, name)
			if err != nil {
				return Role{}, err
			}
			if exists {
				return Role{}, ErrDuplicateName
			}
		}
		cur.RoleName = name
	}
	if req.Description != "" {
		cur.Description = req.Description
	}
	return s.repo.Update(ctx, cur)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	return s.repo.Delete(ctx, id)
}
