package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ems-platform/pkg/client"
	"ems-platform/pkg/session"
)

var (
	apiURL string

	sess      *session.Store
	api       *client.Client
	guard     *client.Guard
	navigator = client.NavigatorFunc(func(path string) {
		switch path {
		case "/login":
			fmt.Fprintln(os.Stderr, "session expired or missing; run 'emsctl login'")
		case "/unauthorized":
			fmt.Fprintln(os.Stderr, "your role does not permit this action")
		default:
			fmt.Fprintf(os.Stderr, "redirected to %s\n", path)
		}
	})

	rootCmd = &cobra.Command{
		Use:           "emsctl",
		Short:         "Command-line client for the employee management service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initClient(); err != nil {
				return err
			}
			return checkRoute(cmd)
		},
	}
)

// Execute adds all child commands to the root command and runs it.
func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOrDefault("EMS_API_URL", "http://localhost:8080/api"), "base API URL")
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func sessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "emsctl", "session.json"), nil
}

func initClient() error {
	path, err := sessionPath()
	if err != nil {
		return fmt.Errorf("resolving session path: %w", err)
	}
	storage, err := session.NewFileStorage(path)
	if err != nil {
		return fmt.Errorf("opening session storage: %w", err)
	}
	sess = session.NewStore(storage)
	guard = client.NewGuard(sess, nil)

	api, err = client.New(client.Config{
		BaseURL:   apiURL,
		Session:   sess,
		Navigator: navigator,
	})
	return err
}

// checkRoute runs the command's pseudo-route through the same guard chain a
// browser router would, before any request leaves the process.
func checkRoute(cmd *cobra.Command) error {
	route := commandRoute(cmd)
	if route == "" {
		return nil
	}
	d := guard.Evaluate(route)
	if d.Allowed {
		return nil
	}
	if strings.HasPrefix(d.RedirectTo, "/login") {
		return fmt.Errorf("not logged in; run 'emsctl login' first")
	}
	if d.RedirectTo == "/unauthorized" {
		return fmt.Errorf("your role does not permit %s", route)
	}
	return fmt.Errorf("navigation to %s denied (redirect %s)", route, d.RedirectTo)
}

// commandRoute walks up the command tree for a route annotation so
// subcommands inherit their group's screen.
func commandRoute(cmd *cobra.Command) string {
	for c := cmd; c != nil; c = c.Parent() {
		if r, ok := c.Annotations["route"]; ok {
			return r
		}
	}
	return ""
}
