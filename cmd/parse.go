/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/RepoWing/tools"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:          "parse <owner/repo>",
	Short:        "Start parsing a GitHub repository",
	SilenceUsage: true,
	Long: `Submit a repository to Potpie for parsing and print the project ID.

The project ID is needed by the status and ask commands.

Examples:
  repowing parse golang/go
  repowing parse golang/go --branch release-branch.go1.24`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("branch", "b", tools.DefaultBranch, "Branch to parse")
}

func runParse(cmd *cobra.Command, args []string) error {
	tb, err := newToolbox()
	if err != nil {
		return err
	}
	branch, _ := cmd.Flags().GetString("branch")

	fmt.Println(tb.StartRepoParsing(cmd.Context(), args[0], branch))
	return nil
}
