package employee

import (
	"context"
	"errors"
	"strings"
	"time"

	"ems-platform/internal/role"
)

var (
	ErrNotFound        = errors.New("employee not found")
	ErrDuplicateEmail  = errors.New("employee email already exists")
	ErrRoleNotFound    = errors.New("role not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Service owns employee business rules. Role existence is validated against
// the role repository before an employee row references it.
type Service struct {
	repo  Repository
	roles role.Repository
}

func NewService(repo Repository, roles role.Repository) *Service {
	return &Service{repo: repo, roles: roles}
}

type CreateRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	Department  string  `json:"department,omitempty"`
	Position    string  `json:"position,omitempty"`
	HireDate    string  `json:"hireDate,omitempty"`
	Salary      float64 `json:"salary,omitempty"`
	RoleID      int64   `json:"roleId"`
}

type UpdateRequest struct {
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	Email       string   `json:"email,omitempty"`
	PhoneNumber *string  `json:"phoneNumber,omitempty"`
	Department  *string  `json:"department,omitempty"`
	Position    *string  `json:"position,omitempty"`
	HireDate    *string  `json:"hireDate,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
	RoleID      int64    `json:"roleId,omitempty"`
}

func (s *Service) List(ctx context.Context) ([]Employee, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Employee, error) {
	if id <= 0 {
		return Employee{}, ErrInvalidArgument
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (Employee, error) {
	if strings.TrimSpace(email) == "" {
		return Employee{}, ErrInvalidArgument
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) SearchByName(ctx context.Context, name string) ([]Employee, error) {
	return s.repo.SearchByName(ctx, name)
}

func (s *Service) ListByDepartment(ctx context.Context, department string) ([]Employee, error) {
	return s.repo.ListByDepartment(ctx, department)
}

func (s *Service) ListByRole(ctx context.Context, roleID int64) ([]Employee, error) {
	if roleID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListByRole(ctx, roleID)
}

// EmailTaken backs the check-email form helper.
func (s *Service) EmailTaken(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, ErrInvalidArgument
	}
	return s.repo.ExistsByEmail(ctx, email)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Employee, error) {
	if err := validateCreate(req); err != nil {
		return Employee{}, err
	}

	taken, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return Employee{}, err
	}
	if taken {
		return Employee{}, ErrDuplicateEmail
	}

	rl, err := s.roles.GetByID(ctx, req.RoleID)
	if err != nil {
		if errors.Is(err, role.ErrNotFound) {
			return Employee{}, ErrRoleNotFound
		}
		return Employee{}, err
	}

	return s.repo.Create(ctx, Employee{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.TrimSpace(req.Email),
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		Position:    req.Position,
		HireDate:    req.HireDate,
		Salary:      req.Salary,
		RoleID:      rl.RoleID,
		RoleName:    rl.RoleName,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Employee, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return Employee{}, err
	}

	if req.Email != "" && !strings.EqualFold(req.Email, cur.Email) {
		taken, err := s.repo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return Employee{}, err
		}
		if taken {
			return Employee{}, ErrDuplicateEmail
		}
		cur.Email = strings.TrimSpace(req.Email)
	}
	if req.FirstName != "" {
		cur.FirstName = strings.TrimSpace(req.FirstName)
	}
	if req.LastName != "" {
		cur.LastName = strings.TrimSpace(req.LastName)
	}
	if req.PhoneNumber != nil {
		cur.PhoneNumber = *req.PhoneNumber
	}
	if req.Department != nil {
		cur.Department = *req.Department
	}
	if req.Position != nil {
		cur.Position = *req.Position
	}
	if req.HireDate != nil {
		if *req.HireDate != "" && !validDate(*req.HireDate) {
			return Employee{}, ErrInvalidArgument
		}
		cur.HireDate = *req.HireDate
	}
	if req.Salary != nil {
		if *req.Salary < 0 {
			return Employee{}, ErrInvalidArgument
		}
		cur.Salary = *req.Salary
	}
	if req.RoleID > 0 && req.RoleID != cur.RoleID {
		rl, err := s.roles.GetByID(ctx, req.RoleID)
		if err != nil {
			if errors.Is(err, role.ErrNotFound) {
				return Employee{}, ErrRoleNotFound
			}
			return Employee{}, err
		}
		cur.RoleID = rl.RoleID
		cur.RoleName = rl.RoleName
	}

	return s.repo.Update(ctx, cur)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	return s.repo.Delete(ctx, id)
}

func validateCreate(req CreateRequest) error {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return ErrInvalidArgument
	}
	if !strings.Contains(req.Email, "@") {
		return ErrInvalidArgument
	}
	if req.RoleID <= 0 {
		return ErrInvalidArgument
	}
	if req.HireDate != "" && !validDate(req.HireDate) {
		return ErrInvalidArgument
	}
	if req.Salary < 0 {
		return ErrInvalidArgument
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
