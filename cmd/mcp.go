/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"

	repomcp "github.com/josephgoksu/RepoWing/mcp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI assistants like
Claude Code and Cursor can analyze GitHub repositories through Potpie.

The MCP server runs over stdin/stdout and provides tools for:
- Starting repository parsing
- Checking parsing status
- Asking questions about a parsed repository
- Running a full repository analysis
- Summarizing repository trends

Requires POTPIE_API_KEY and GROQ_API_KEY. When either key is missing the
server still starts but registers no tools.

Example usage with Claude Code:
  repowing mcp

The server will run until the client disconnects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	// MCP server inherits verbose flag from root command
}

func runMCPServer(ctx context.Context) error {
	impl := &mcp.Implementation{
		Name:    "repowing",
		Version: version,
	}
	server := mcp.NewServer(impl, &mcp.ServerOptions{})

	// Missing credentials disable the tool set but never crash the server;
	// the client just sees an empty tool list.
	if HasAnalysisCredentials() {
		tb, err := newToolbox()
		if err != nil {
			return fmt.Errorf("failed to build analysis toolbox: %w", err)
		}
		repomcp.RegisterTools(server, tb)
		repomcp.LogInfo("registered repository analysis tools")
	} else {
		repomcp.LogInfo("POTPIE_API_KEY or GROQ_API_KEY missing; starting with no tools")
	}

	// Run the server over stdin/stdout
	if err := server.Run(ctx, mcp.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
