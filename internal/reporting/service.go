package reporting

import (
	"context"

	"ems-platform/internal/employee"
	"ems-platform/internal/leave"
	"ems-platform/internal/user"
)

// Service aggregates read-only views over the other repositories. It queries
// the same sources the CRUD endpoints serve, so counts are always consistent
// with what the list screens show.
type Service struct {
	employees employee.Repository
	leaves    leave.Repository
	users     user.Repository
}

func NewService(employees employee.Repository, leaves leave.Repository, users user.Repository) *Service {
	return &Service{employees: employees, leaves: leaves, users: users}
}

func (s *Service) Dashboard(ctx context.Context) (DashboardSummary, error) {
	out := DashboardSummary{
		ByDepartment: make(map[string]int64),
		ByRole:       make(map[string]int64),
	}

	emps, err := s.employees.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, e := range emps {
		out.TotalEmployees++
		out.ByDepartment[e.Department]++
		if e.RoleName != "" {
			out.ByRole[e.RoleName]++
		}
	}

	leaves, err := s.leaves.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, lr := range leaves {
		out.TotalLeaveRequests++
		switch lr.Status {
		case leave.StatusPending:
			out.PendingLeaveRequests++
		case leave.StatusApproved:
			out.ApprovedLeaveRequests++
		case leave.StatusRejected:
			out.RejectedLeaveRequests++
		case leave.StatusCancelled:
			out.CancelledLeaveRequests++
		}
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	for _, u := range users {
		if u.IsActive {
			out.ActiveUsers++
		} else {
			out.InactiveUsers++
		}
	}
	return out, nil
}
