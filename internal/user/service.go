package user

import (
	"context"
	"errors"
	"strings"

	"ems-platform/internal/employee"
	"ems-platform/internal/role"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrRoleNotFound      = errors.New("role not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrInactive          = errors.New("user is deactivated")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// Service owns account business rules: bcrypt hashing, uniqueness, the
// active flag gating login, and linkage to employee/role records.
type Service struct {
	repo      Repository
	employees employee.Repository
	roles     role.Repository
}

func NewService(repo Repository, employees employee.Repository, roles role.Repository) *Service {
	return &Service{repo: repo, employees: employees, roles: roles}
}

type CreateRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Email      string `json:"email"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
	RoleID     int64  `json:"roleId"`
}

type UpdateRequest struct {
	Username   string `json:"username,omitempty"`
	Email      string `json:"email,omitempty"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
	RoleID     int64  `json:"roleId,omitempty"`
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	if id <= 0 {
		return User{}, ErrInvalidArgument
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	if strings.TrimSpace(username) == "" {
		return User{}, ErrInvalidArgument
	}
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) GetByEmployee(ctx context.Context, employeeID int64) (User, error) {
	if employeeID <= 0 {
		return User{}, ErrInvalidArgument
	}
	return s.repo.GetByEmployee(ctx, employeeID)
}

// FindByLogin resolves a username or an account/employee email to a user.
// Used by password reset, where the form accepts either.
func (s *Service) FindByLogin(ctx context.Context, login string) (User, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return User{}, ErrInvalidArgument
	}
	if u, err := s.repo.GetByUsername(ctx, login); err == nil {
		return u, nil
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}
	return s.repo.GetByEmail(ctx, login)
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (User, error) {
	if err := validateCreate(req); err != nil {
		return User{}, err
	}

	taken, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return User{}, err
	}
	if taken {
		return User{}, ErrDuplicateUsername
	}

	rl, err := s.roles.GetByID(ctx, req.RoleID)
	if err != nil {
		if errors.Is(err, role.ErrNotFound) {
			return User{}, ErrRoleNotFound
		}
		return User{}, err
	}

	u := User{
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
		RoleID:   rl.RoleID,
		RoleName: rl.RoleName,
		IsActive: true,
	}

	if req.EmployeeID != nil {
		emp, err := s.employees.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrNotFound) {
				return User{}, ErrEmployeeNotFound
			}
			return User{}, err
		}
		u.EmployeeID = &emp.EmployeeID
		u.EmployeeName = emp.FullName()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.PasswordHash = string(hash)

	return s.repo.Create(ctx, u)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (User, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if req.Username != "" && !strings.EqualFold(req.Username, cur.Username) {
		taken, err := s.repo.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return User{}, err
		}
		if taken {
			return User{}, ErrDuplicateUsername
		}
		cur.Username = strings.TrimSpace(req.Username)
	}
	if req.Email != "" {
		cur.Email = strings.TrimSpace(req.Email)
	}
	if req.EmployeeID != nil {
		emp, err := s.employees.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			if errors.Is(err, employee.ErrNotFound) {
				return User{}, ErrEmployeeNotFound
			}
			return User{}, err
		}
		cur.EmployeeID = &emp.EmployeeID
		cur.EmployeeName = emp.FullName()
	}
	if req.RoleID > 0 && req.RoleID != cur.RoleID {
		rl, err := s.roles.GetByID(ctx, req.RoleID)
		if err != nil {
			if errors.Is(err, role.ErrNotFound) {
				return User{}, ErrRoleNotFound
			}
			return User{}, err
		}
		cur.RoleID = rl.RoleID
		cur.RoleName = rl.RoleName
	}

	return s.repo.Update(ctx, cur)
}

// Authenticate verifies credentials for login. Deactivated accounts are
// rejected even with a correct password.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return User{}, ErrInvalidArgument
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrWrongPassword
	}
	if !u.IsActive {
		return User{}, ErrInactive
	}
	return u, nil
}

// ChangePassword requires the current password; admin-driven resets go
// through the password-reset flow instead.
func (s *Service) ChangePassword(ctx context.Context, id int64, current, next string) error {
	if len(next) < 8 {
		return ErrInvalidArgument
	}
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)); err != nil {
		return ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, string(hash))
}

// ResetPassword overwrites the password without the current one. Callers must
// have verified a reset token first.
func (s *Service) ResetPassword(ctx context.Context, id int64, next string) error {
	if len(next) < 8 {
		return ErrInvalidArgument
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, string(hash))
}

func (s *Service) Activate(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	return s.repo.SetActive(ctx, id, true)
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	return s.repo.SetActive(ctx, id, false)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	return s.repo.Delete(ctx, id)
}

func validateCreate(req CreateRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return ErrInvalidArgument
	}
	if len(req.Password) < 8 {
		return ErrInvalidArgument
	}
	if !strings.Contains(req.Email, "@") {
		return ErrInvalidArgument
	}
	if req.RoleID <= 0 {
		return ErrInvalidArgument
	}
	return nil
}
