/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// MCP Tool Parameter Types

// StartParsingParams for initiating repository parsing
type StartParsingParams struct {
	RepoName   string `json:"repo_name" mcp:"Repository in 'owner/repo' form (required)"`
	BranchName string `json:"branch_name,omitempty" mcp:"Branch to parse (default: main)"`
}

// ParsingStatusParams for checking the status of a parse job
type ParsingStatusParams struct {
	ProjectID string `json:"project_id" mcp:"Project ID returned by start_repo_parsing (required)"`
}

// AskRepoParams for querying an already-parsed repository
type AskRepoParams struct {
	ProjectID string `json:"project_id" mcp:"Project ID of the parsed repository (required)"`
	Query     string `json:"query" mcp:"Question to ask about the repository (required)"`
}

// RepoParams for tools that run the full parse-and-query chain themselves
type RepoParams struct {
	RepoName string `json:"repo_name" mcp:"Repository in 'owner/repo' form (required)"`
}

// ToolResult carries a tool's human-readable outcome. Tools communicate every
// failure in-band through this text, never as a protocol error.
type ToolResult struct {
	Text string `json:"text"`
}
