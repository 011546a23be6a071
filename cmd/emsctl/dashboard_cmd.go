package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:         "dashboard",
	Short:       "Show headcount and leave pipeline summary",
	Annotations: map[string]string{"route": "/dashboard"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := api.Dashboard(cmd.Context())
		if err != nil {
			return err
		}
		raw, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
