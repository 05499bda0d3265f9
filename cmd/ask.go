/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:          "ask <project-id> <question>",
	Short:        "Ask a question about a parsed repository",
	SilenceUsage: true,
	Long: `Ask a natural-language question about an already-parsed repository.

Waits for parsing to finish if it is still in progress, then opens a
conversation with Potpie and prints the answer.

Examples:
  repowing ask 0b9f1e2a "how does the scheduler work"
  repowing ask 0b9f1e2a "list the main entry points"`,
	Args: cobra.ExactArgs(2),
	RunE: runAskRepo,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAskRepo(cmd *cobra.Command, args []string) error {
	tb, err := newToolbox()
	if err != nil {
		return err
	}
	fmt.Println(tb.AskParsedRepo(cmd.Context(), args[0], args[1]))
	return nil
}
