package leave

import "context"

// Repository is the persistence contract for leave requests.
// Implementations must return ErrNotFound for missing ids and resolve
// EmployeeName/ApproverName on reads.
type Repository interface {
	List(ctx context.Context) ([]LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveRequest, error)
	ListByStatus(ctx context.Context, status Status) ([]LeaveRequest, error)
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)
	Delete(ctx context.Context, id int64) error
}
