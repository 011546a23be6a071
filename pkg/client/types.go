package client

// Wire shapes owned by the backend schema. Dates are plain YYYY-MM-DD
// strings; timestamps are RFC 3339.

type LoginResponse struct {
	Token      string `json:"token"`
	UserID     int64  `json:"userId"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	RoleName   string `json:"roleName"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
}

type Employee struct {
	EmployeeID  int64   `json:"employeeId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	Department  string  `json:"department"`
	Position    string  `json:"position,omitempty"`
	HireDate    string  `json:"hireDate"`
	Salary      float64 `json:"salary,omitempty"`
	RoleID      int64   `json:"roleId"`
	RoleName    string  `json:"roleName,omitempty"`
}

type EmployeeRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber,omitempty"`
	Department  string  `json:"department"`
	Position    string  `json:"position,omitempty"`
	HireDate    string  `json:"hireDate"`
	Salary      float64 `json:"salary,omitempty"`
	RoleID      int64   `json:"roleId"`
}

type LeaveRequest struct {
	LeaveRequestID  int64  `json:"leaveRequestId"`
	EmployeeID      int64  `json:"employeeId"`
	EmployeeName    string `json:"employeeName,omitempty"`
	LeaveType       string `json:"leaveType"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	Reason          string `json:"reason,omitempty"`
	Status          string `json:"status"`
	ApprovedBy      *int64 `json:"approvedBy,omitempty"`
	ApproverName    string `json:"approverName,omitempty"`
	ApprovedAt      string `json:"approvedAt,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

type LeaveRequestCreate struct {
	EmployeeID int64  `json:"employeeId"`
	LeaveType  string `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason,omitempty"`
}

type Role struct {
	RoleID      int64  `json:"roleId"`
	RoleName    string `json:"roleName"`
	Description string `json:"description,omitempty"`
}

type User struct {
	UserID       int64  `json:"userId"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	RoleID       int64  `json:"roleId"`
	RoleName     string `json:"roleName"`
	EmployeeID   *int64 `json:"employeeId,omitempty"`
	EmployeeName string `json:"employeeName,omitempty"`
	IsActive     bool   `json:"isActive"`
}

type UserCreate struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Email      string `json:"email"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
	RoleID     int64  `json:"roleId"`
}

type DashboardSummary struct {
	TotalEmployees int64            `json:"totalEmployees"`
	ByDepartment   map[string]int64 `json:"byDepartment"`
	ByRole         map[string]int64 `json:"byRole"`

	TotalLeaveRequests     int64 `json:"totalLeaveRequests"`
	PendingLeaveRequests   int64 `json:"pendingLeaveRequests"`
	ApprovedLeaveRequests  int64 `json:"approvedLeaveRequests"`
	RejectedLeaveRequests  int64 `json:"rejectedLeaveRequests"`
	CancelledLeaveRequests int64 `json:"cancelledLeaveRequests"`

	ActiveUsers   int64 `json:"activeUsers"`
	InactiveUsers int64 `json:"inactiveUsers"`
}

// PasswordResetIssue is the forgot-password response. The token is present
// whether or not an account matched; only a matching account's token
// redeems.
type PasswordResetIssue struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
	ExpiresAt  string `json:"expiresAt"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}
