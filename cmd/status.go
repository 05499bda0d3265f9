/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:          "status <project-id>",
	Short:        "Check the parsing status of a project",
	SilenceUsage: true,
	Long: `Report the current parsing status of a submitted repository.

With --wait, polls until the project is ready or the configured
readiness timeout elapses.

Examples:
  repowing status 0b9f1e2a
  repowing status 0b9f1e2a --wait`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolP("wait", "w", false, "Poll until the project is ready")
}

func runStatus(cmd *cobra.Command, args []string) error {
	projectID := args[0]

	if wait, _ := cmd.Flags().GetBool("wait"); wait {
		cfg := GetConfig()
		client, err := newPotpieClient()
		if err != nil {
			return err
		}
		status, err := client.WaitForReady(cmd.Context(), projectID,
			time.Duration(cfg.Potpie.ReadyTimeoutSeconds)*time.Second,
			time.Duration(cfg.Potpie.PollIntervalSeconds)*time.Second)
		if err != nil {
			return err
		}
		fmt.Printf("Current parsing status: %s\n", status.Status)
		return nil
	}

	tb, err := newToolbox()
	if err != nil {
		return err
	}
	fmt.Println(tb.CheckRepoParsingStatus(cmd.Context(), projectID))
	return nil
}
