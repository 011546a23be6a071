package reporting

// DashboardSummary is the aggregate view behind the dashboard screen:
// headcount broken down by department and role, and the leave request
// pipeline by status.
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
