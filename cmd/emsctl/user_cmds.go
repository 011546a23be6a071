package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:         "users",
	Short:       "Administer user accounts",
	Annotations: map[string]string{"route": "/users"},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := api.Users.List(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tEMPLOYEE\tACTIVE")
		for _, u := range out {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%v\n",
				u.UserID, u.Username, u.Email, u.RoleName, u.EmployeeName, u.IsActive)
		}
		w.Flush()
		return nil
	},
}

var usersActivateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Reactivate an account",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setActive(cmd, args[0], true) },
}

var usersDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate an account",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setActive(cmd, args[0], false) },
}

func setActive(cmd *cobra.Command, raw string, active bool) error {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", raw)
	}
	if active {
		err = api.Users.Activate(cmd.Context(), id)
	} else {
		err = api.Users.Deactivate(cmd.Context(), id)
	}
	if err != nil {
		return err
	}
	fmt.Println("updated")
	return nil
}

var (
	currentPassword string
	newPassword     string
)

var usersPasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change your own password",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := sess.Principal()
		if !ok {
			return fmt.Errorf("not logged in")
		}
		if err := api.Users.ChangePassword(cmd.Context(), p.UserID, currentPassword, newPassword); err != nil {
			return err
		}
		fmt.Println("password updated")
		return nil
	},
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List roles",
	// No screen of its own in the route table; gated like the users list.
	Annotations: map[string]string{"route": "/users"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := api.Roles.List(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
		for _, r := range out {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.RoleID, r.RoleName, r.Description)
		}
		w.Flush()
		return nil
	},
}

func init() {
	usersPasswordCmd.Flags().StringVar(&currentPassword, "current", "", "current password")
	usersPasswordCmd.Flags().StringVar(&newPassword, "new", "", "new password")

	usersCmd.AddCommand(usersListCmd, usersActivateCmd, usersDeactivateCmd, usersPasswordCmd)
	rootCmd.AddCommand(usersCmd, rolesCmd)
}
