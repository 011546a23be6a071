package leave

import "time"

// LeaveRequest tracks one employee absence request through its lifecycle.
// Status transitions only happen out of PENDING:
//
//	PENDING -> APPROVED (manager/admin, records approver)
//	PENDING -> REJECTED (manager/admin, requires a reason)
//	PENDING -> CANCELLED (owning employee)
//
// StartDate/EndDate are plain YYYY-MM-DD strings on the wire.
type LeaveRequest struct {
	LeaveRequestID  int64      `json:"leaveRequestId" db:"leave_request_id"`
	EmployeeID      int64      `json:"employeeId" db:"employee_id"`
	EmployeeName    string     `json:"employeeName,omitempty" db:"employee_name"`
	LeaveType       Type       `json:"leaveType" db:"leave_type"`
	StartDate       string     `json:"startDate" db:"start_date"`
	EndDate         string     `json:"endDate" db:"end_date"`
	Reason          string     `json:"reason,omitempty" db:"reason"`
	Status          Status     `json:"status" db:"status"`
	ApprovedBy      *int64     `json:"approvedBy,omitempty" db:"approved_by"`
	ApproverName    string     `json:"approverName,omitempty" db:"approver_name"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty" db:"approved_at"`
	RejectionReason string     `json:"rejectionReason,omitempty" db:"rejection_reason"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

type Type string

const (
	TypeSick      Type = "SICK"
	TypeVacation  Type = "VACATION"
	TypePersonal  Type = "PERSONAL"
	TypeMaternity Type = "MATERNITY"
	TypePaternity Type = "PATERNITY"
	TypeUnpaid    Type = "UNPAID"
)

func (t Type) Valid() bool {
	switch t {
	case TypeSick, TypeVacation, TypePersonal, TypeMaternity, TypePaternity, TypeUnpaid:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}
