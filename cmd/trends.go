/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trendsCmd = &cobra.Command{
	Use:          "trends <owner/repo>",
	Short:        "Summarize development trends in a repository",
	SilenceUsage: true,
	Long: `Parse a repository and print a summary of its development trends:
recent focus areas, active components, and notable patterns.

Example:
  repowing trends golang/go`,
	Args: cobra.ExactArgs(1),
	RunE: runTrends,
}

func init() {
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	tb, err := newToolbox()
	if err != nil {
		return err
	}
	fmt.Println(tb.GetRepositoryTrends(cmd.Context(), args[0]))
	return nil
}
