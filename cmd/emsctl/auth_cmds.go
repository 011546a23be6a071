package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ems-platform/pkg/client"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginUsername == "" || loginPassword == "" {
			return errors.New("--username and --password are required")
		}
		resp, err := api.Auth.Login(cmd.Context(), loginUsername, loginPassword)
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", resp.Username, resp.RoleName)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		api.Auth.Logout()
		fmt.Println("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current identity and token expiry",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := sess.Principal()
		if !ok {
			return errors.New("not logged in")
		}
		fmt.Printf("user:  %s (id %d)\n", p.Username, p.UserID)
		fmt.Printf("email: %s\n", p.Email)
		fmt.Printf("role:  %s\n", p.RoleName)
		if p.EmployeeID != nil {
			fmt.Printf("employee id: %d\n", *p.EmployeeID)
		}
		if at, known := sess.ExpiresAt(); known {
			state := "valid"
			if sess.Expired() {
				state = "expired"
			}
			fmt.Printf("token: %s until %s\n", state, at.Format(time.RFC3339))
		}
		return nil
	},
}

var (
	registerFirst string
	registerLast  string
	registerEmail string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginUsername == "" || loginPassword == "" || registerEmail == "" {
			return errors.New("--username, --password and --email are required")
		}
		resp, err := api.Auth.Register(cmd.Context(), client.RegisterRequest{
			Username:  loginUsername,
			Password:  loginPassword,
			Email:     registerEmail,
			FirstName: registerFirst,
			LastName:  registerLast,
		})
		if err != nil {
			return err
		}
		fmt.Printf("registered and logged in as %s (%s)\n", resp.Username, resp.RoleName)
		return nil
	},
}

var forgotCmd = &cobra.Command{
	Use:   "forgot-password <email>",
	Short: "Request a password reset token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := api.Auth.ForgotPassword(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(out.Message)
		fmt.Printf("token: %s (expires %s)\n", out.ResetToken, out.ExpiresAt)
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <token> <new-password>",
	Short: "Redeem a reset token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Auth.ResetPassword(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("password updated")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password")

	registerCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username")
	registerCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerFirst, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&registerLast, "last-name", "", "last name")

	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, registerCmd, forgotCmd, resetPasswordCmd)
}
