package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"ems-platform/internal/employee"
)

var (
	ErrNotFound          = errors.New("leave request not found")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidTransition = errors.New("leave request is not pending")
	ErrNotOwner          = errors.New("leave request belongs to another employee")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// Service owns the leave-request lifecycle. Decisions (approve/reject) and
// cancellation are only valid while the request is PENDING.
type Service struct {
	repo      Repository
	employees employee.Repository
	clock     func() time.Time
}

func NewService(repo Repository, employees employee.Repository) *Service {
	return &Service{repo: repo, employees: employees, clock: time.Now}
}

type CreateRequest struct {
	EmployeeID int64  `json:"employeeId"`
	LeaveType  Type   `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason,omitempty"`
}

type UpdateRequest struct {
	LeaveType Type   `json:"leaveType,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

func (s *Service) List(ctx context.Context) ([]LeaveRequest, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (LeaveRequest, error) {
	if id <= 0 {
		return LeaveRequest{}, ErrInvalidArgument
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveRequest, error) {
	if employeeID <= 0 {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListByEmployee(ctx, employeeID)
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]LeaveRequest, error) {
	if !status.Valid() {
		return nil, ErrInvalidArgument
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) ListPending(ctx context.Context) ([]LeaveRequest, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

// Create always starts a request in PENDING, whatever the caller sent.
func (s *Service) Create(ctx context.Context, req CreateRequest) (LeaveRequest, error) {
	if req.EmployeeID <= 0 || !req.LeaveType.Valid() {
		return LeaveRequest{}, ErrInvalidArgument
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveRequest{}, err
	}
	if end.Before(start) {
		return LeaveRequest{}, ErrInvalidArgument
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			return LeaveRequest{}, ErrEmployeeNotFound
		}
		return LeaveRequest{}, err
	}

	return s.repo.Create(ctx, LeaveRequest{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.FullName(),
		LeaveType:    req.LeaveType,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Reason:       strings.TrimSpace(req.Reason),
		Status:       StatusPending,
	})
}

// Update edits dates/type/reason of a request that has not been decided yet.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (LeaveRequest, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}
	if cur.Status != StatusPending {
		return LeaveRequest{}, ErrInvalidTransition
	}

	if req.LeaveType != "" {
		if !req.LeaveType.Valid() {
			return LeaveRequest{}, ErrInvalidArgument
		}
		cur.LeaveType = req.LeaveType
	}
	if req.StartDate != "" {
		cur.StartDate = req.StartDate
	}
	if req.EndDate != "" {
		cur.EndDate = req.EndDate
	}
	start, end, err := parseRange(cur.StartDate, cur.EndDate)
	if err != nil {
		return LeaveRequest{}, err
	}
	if end.Before(start) {
		return LeaveRequest{}, ErrInvalidArgument
	}
	if req.Reason != "" {
		cur.Reason = strings.TrimSpace(req.Reason)
	}

	return s.repo.Update(ctx, cur)
}

// Approve records the decision and the approver. approverEmployeeID is the
// employee record of the deciding manager/admin; it may be zero for
// administrative accounts without an employee record.
func (s *Service) Approve(ctx context.Context, id int64, approverEmployeeID int64, approverName string) (LeaveRequest, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}
	if cur.Status != StatusPending {
		return LeaveRequest{}, ErrInvalidTransition
	}

	now := s.clock().UTC()
	cur.Status = StatusApproved
	if approverEmployeeID > 0 {
		cur.ApprovedBy = &approverEmployeeID
	}
	cur.ApproverName = approverName
	cur.ApprovedAt = &now
	cur.RejectionReason = ""
	return s.repo.Update(ctx, cur)
}

func (s *Service) Reject(ctx context.Context, id int64, reason string) (LeaveRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return LeaveRequest{}, ErrInvalidArgument
	}
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}
	if cur.Status != StatusPending {
		return LeaveRequest{}, ErrInvalidTransition
	}

	cur.Status = StatusRejected
	cur.RejectionReason = strings.TrimSpace(reason)
	return s.repo.Update(ctx, cur)
}

// Cancel is the employee withdrawing their own pending request.
// byEmployeeID <= 0 skips the ownership check (admin path).
func (s *Service) Cancel(ctx context.Context, id int64, byEmployeeID int64) (LeaveRequest, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return LeaveRequest{}, err
	}
	if byEmployeeID > 0 && cur.EmployeeID != byEmployeeID {
		return LeaveRequest{}, ErrNotOwner
	}
	if cur.Status != StatusPending {
		return LeaveRequest{}, ErrInvalidTransition
	}

	cur.Status = StatusCancelled
	return s.repo.Update(ctx, cur)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArgument
	}
	return s.repo.Delete(ctx, id)
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidArgument
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidArgument
	}
	return start, end, nil
}
