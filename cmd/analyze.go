/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:          "analyze <owner/repo>",
	Short:        "Run a full analysis of a repository",
	SilenceUsage: true,
	Long: `Parse a repository on its main branch and print an analysis of its
structure, components, architecture patterns, and code quality.

This is the one-shot variant of parse + ask with a fixed analytical
prompt. Parsing a large repository can take several minutes.

Example:
  repowing analyze golang/go`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	tb, err := newToolbox()
	if err != nil {
		return err
	}
	fmt.Println(tb.AnalyzeRepository(cmd.Context(), args[0]))
	return nil
}
