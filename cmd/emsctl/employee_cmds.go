package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ems-platform/pkg/client"
)

var employeesCmd = &cobra.Command{
	Use:         "employees",
	Short:       "Manage employee records",
	Annotations: map[string]string{"route": "/employees"},
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := api.Employees.List(cmd.Context())
		if err != nil {
			return err
		}
		printEmployees(out)
		return nil
	},
}

var employeesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		e, err := api.Employees.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		printEmployees([]client.Employee{e})
		return nil
	},
}

var employeesSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search employees by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := api.Employees.SearchByName(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printEmployees(out)
		return nil
	},
}

var employeesDeptCmd = &cobra.Command{
	Use:   "department <name>",
	Short: "List employees in a department",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := api.Employees.ListByDepartment(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printEmployees(out)
		return nil
	},
}

var empCreateReq client.EmployeeRequest

var employeesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := api.Employees.Create(cmd.Context(), empCreateReq)
		if err != nil {
			return err
		}
		fmt.Printf("created employee %d: %s %s\n", e.EmployeeID, e.FirstName, e.LastName)
		return nil
	},
}

var employeesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		if err := api.Employees.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Println("deleted")
		return nil
	},
}

func printEmployees(list []client.Employee) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tDEPARTMENT\tPOSITION\tROLE\tHIRED")
	for _, e := range list {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\t%s\t%s\n",
			e.EmployeeID, e.FirstName, e.LastName, e.Email, e.Department, e.Position, e.RoleName, e.HireDate)
	}
	w.Flush()
}

func init() {
	f := employeesCreateCmd.Flags()
	f.StringVar(&empCreateReq.FirstName, "first-name", "", "first name")
	f.StringVar(&empCreateReq.LastName, "last-name", "", "last name")
	f.StringVar(&empCreateReq.Email, "email", "", "email")
	f.StringVar(&empCreateReq.PhoneNumber, "phone", "", "phone number")
	f.StringVar(&empCreateReq.Department, "department", "", "department")
	f.StringVar(&empCreateReq.Position, "position", "", "position")
	f.StringVar(&empCreateReq.HireDate, "hire-date", "", "hire date (YYYY-MM-DD)")
	f.Float64Var(&empCreateReq.Salary, "salary", 0, "salary")
	f.Int64Var(&empCreateReq.RoleID, "role-id", 0, "role id")

	employeesCmd.AddCommand(employeesListCmd, employeesGetCmd, employeesSearchCmd, employeesDeptCmd, employeesCreateCmd, employeesDeleteCmd)
	rootCmd.AddCommand(employeesCmd)
}
