package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ems-platform/pkg/client"
)

var leaveCmd = &cobra.Command{
	Use:         "leave",
	Short:       "File and review leave requests",
	Annotations: map[string]string{"route": "/leave-requests"},
}

var leaveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all leave requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := api.Leaves.List(cmd.Context())
		if err != nil {
			return err
		}
		printLeaves(out)
		return nil
	},
}

var leaveMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own leave requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := sess.Principal()
		if !ok || p.EmployeeID == nil {
			return errors.New("no employee record on this account")
		}
		out, err := api.Leaves.ListByEmployee(cmd.Context(), *p.EmployeeID)
		if err != nil {
			return err
		}
		printLeaves(out)
		return nil
	},
}

var leavePendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List requests awaiting decision",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := api.Leaves.ListPending(cmd.Context())
		if err != nil {
			return err
		}
		printLeaves(out)
		return nil
	},
}

var leaveCreateReq client.LeaveRequestCreate

var leaveCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "File a new leave request",
	RunE: func(cmd *cobra.Command, args []string) error {
		lr, err := api.Leaves.Create(cmd.Context(), leaveCreateReq)
		if err != nil {
			return err
		}
		fmt.Printf("filed request %d (%s, %s to %s)\n", lr.LeaveRequestID, lr.LeaveType, lr.StartDate, lr.EndDate)
		return nil
	},
}

var leaveApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a pending request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := leaveID(args[0])
		if err != nil {
			return err
		}
		lr, err := api.Leaves.Approve(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("request %d approved\n", lr.LeaveRequestID)
		return nil
	},
}

var rejectReason string

var leaveRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a pending request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := leaveID(args[0])
		if err != nil {
			return err
		}
		if rejectReason == "" {
			return errors.New("--reason is required")
		}
		lr, err := api.Leaves.Reject(cmd.Context(), id, rejectReason)
		if err != nil {
			return err
		}
		fmt.Printf("request %d rejected\n", lr.LeaveRequestID)
		return nil
	},
}

var leaveCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel your own pending request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := leaveID(args[0])
		if err != nil {
			return err
		}
		lr, err := api.Leaves.Cancel(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("request %d cancelled\n", lr.LeaveRequestID)
		return nil
	},
}

func leaveID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func printLeaves(list []client.LeaveRequest) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMPLOYEE\tTYPE\tFROM\tTO\tSTATUS\tAPPROVER")
	for _, lr := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			lr.LeaveRequestID, lr.EmployeeName, lr.LeaveType, lr.StartDate, lr.EndDate, lr.Status, lr.ApproverName)
	}
	w.Flush()
}

func init() {
	f := leaveCreateCmd.Flags()
	f.Int64Var(&leaveCreateReq.EmployeeID, "employee-id", 0, "employee id (managers only; defaults to self)")
	f.StringVar(&leaveCreateReq.LeaveType, "type", "", "SICK, VACATION, PERSONAL, MATERNITY, PATERNITY or UNPAID")
	f.StringVar(&leaveCreateReq.StartDate, "from", "", "start date (YYYY-MM-DD)")
	f.StringVar(&leaveCreateReq.EndDate, "to", "", "end date (YYYY-MM-DD)")
	f.StringVar(&leaveCreateReq.Reason, "reason", "", "reason")

	leaveRejectCmd.Flags().StringVar(&rejectReason, "reason", "", "rejection reason")

	leaveCmd.AddCommand(leaveListCmd, leaveMineCmd, leavePendingCmd, leaveCreateCmd, leaveApproveCmd, leaveRejectCmd, leaveCancelCmd)
	rootCmd.AddCommand(leaveCmd)
}
