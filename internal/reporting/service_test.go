package reporting

import (
	"context"
	"testing"

	"ems-platform/internal/employee"
	"ems-platform/internal/leave"
	"ems-platform/internal/user"
)

func TestDashboardCounts(t *testing.T) {
	ctx := context.Background()
	emps := employee.NewMemoryRepo()
	leaves := leave.NewMemoryRepo()
	users := user.NewMemoryRepo()

	seed := []employee.Employee{
		{FirstName: "A", LastName: "One", Email: "a@x.com", Department: "Engineering", RoleName: "Admin"},
		{FirstName: "B", LastName: "Two", Email: "b@x.com", Department: "Engineering", RoleName: "Employee"},
		{FirstName: "C", LastName: "Three", Email: "c@x.com", Department: "Sales", RoleName: "Employee"},
	}
	for _, e := range seed {
		if _, err := emps.Create(ctx, e); err != nil {
			t.Fatalf("seed employee: %v", err)
		}
	}

	for _, st := range []leave.Status{leave.StatusPending, leave.StatusPending, leave.StatusApproved, leave.StatusRejected} {
		if _, err := leaves.Create(ctx, leave.LeaveRequest{EmployeeID: 1, LeaveType: leave.TypeSick, StartDate: "2024-07-01", EndDate: "2024-07-02", Status: st}); err != nil {
			t.Fatalf("seed leave: %v", err)
		}
	}

	if _, err := users.Create(ctx, user.User{Username: "u1", Email: "u1@x.com", RoleID: 1, IsActive: true}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := users.Create(ctx, user.User{Username: "u2", Email: "u2@x.com", RoleID: 1, IsActive: false}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	sum, err := NewService(emps, leaves, users).Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if sum.TotalEmployees != 3 || sum.ByDepartment["Engineering"] != 2 || sum.ByDepartment["Sales"] != 1 {
		t.Fatalf("employee counts = %+v", sum)
	}
	if sum.ByRole["Employee"] != 2 || sum.ByRole["Admin"] != 1 {
		t.Fatalf("role counts = %+v", sum.ByRole)
	}
	if sum.TotalLeaveRequests != 4 || sum.PendingLeaveRequests != 2 || sum.ApprovedLeaveRequests != 1 || sum.RejectedLeaveRequests != 1 {
		t.Fatalf("leave counts = %+v", sum)
	}
	if sum.ActiveUsers != 1 || sum.InactiveUsers != 1 {
		t.Fatalf("user counts = %+v", sum)
	}
}
