/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package mcp

// Repository-analysis MCP tools: parse, status, ask, analyze, trends

import (
	"context"

	"github.com/josephgoksu/RepoWing/tools"
	"github.com/josephgoksu/RepoWing/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools wires the five analysis tools into the MCP server. Each tool
// accepts plain string arguments and returns a single human-readable string;
// failures are part of that string, never a protocol error.
func RegisterTools(server *mcpsdk.Server, tb *tools.Toolbox) {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "start_repo_parsing",
		Description: "Initiate parsing for a repository and branch using Potpie. Returns the initial parsing status, including the project_id needed for follow-up actions. Example repo_name: 'owner/repo'.",
	}, startParsingHandler(tb))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "check_repo_parsing_status",
		Description: "Check the parsing status of a repository using its Potpie project_id. Returns immediately without waiting for readiness.",
	}, parsingStatusHandler(tb))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "ask_parsed_repo",
		Description: "Ask a question about a repository that has already been parsed by Potpie, identified by its project_id. Waits for parsing to complete if not already ready.",
	}, askRepoHandler(tb))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "analyze_repository",
		Description: "Analyze a GitHub repository using Potpie and return quality and activity metrics. Expects repo_name like 'owner/repo'. Handles parsing initiation and querying.",
	}, analyzeRepoHandler(tb))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "get_repository_trends",
		Description: "Get trending metrics for a GitHub repository using Potpie. Expects repo_name like 'owner/repo'. Handles parsing initiation and querying.",
	}, repoTrendsHandler(tb))
}

func startParsingHandler(tb *tools.Toolbox) mcpsdk.ToolHandlerFor[types.StartParsingParams, types.ToolResult] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.StartParsingParams]) (*mcpsdk.CallToolResultFor[types.ToolResult], error) {
		args := params.Arguments
		logToolCall("start_repo_parsing", args)
		return textResult(tb.StartRepoParsing(ctx, args.RepoName, args.BranchName)), nil
	}
}

func parsingStatusHandler(tb *tools.Toolbox) mcpsdk.ToolHandlerFor[types.ParsingStatusParams, types.ToolResult] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.ParsingStatusParams]) (*mcpsdk.CallToolResultFor[types.ToolResult], error) {
		args := params.Arguments
		logToolCall("check_repo_parsing_status", args)
		return textResult(tb.CheckRepoParsingStatus(ctx, args.ProjectID)), nil
	}
}

func askRepoHandler(tb *tools.Toolbox) mcpsdk.ToolHandlerFor[types.AskRepoParams, types.ToolResult] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.AskRepoParams]) (*mcpsdk.CallToolResultFor[types.ToolResult], error) {
		args := params.Arguments
		logToolCall("ask_parsed_repo", args)
		return textResult(tb.AskParsedRepo(ctx, args.ProjectID, args.Query)), nil
	}
}

func analyzeRepoHandler(tb *tools.Toolbox) mcpsdk.ToolHandlerFor[types.RepoParams, types.ToolResult] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.RepoParams]) (*mcpsdk.CallToolResultFor[types.ToolResult], error) {
		args := params.Arguments
		logToolCall("analyze_repository", args)
		return textResult(tb.AnalyzeRepository(ctx, args.RepoName)), nil
	}
}

func repoTrendsHandler(tb *tools.Toolbox) mcpsdk.ToolHandlerFor[types.RepoParams, types.ToolResult] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.RepoParams]) (*mcpsdk.CallToolResultFor[types.ToolResult], error) {
		args := params.Arguments
		logToolCall("get_repository_trends", args)
		return textResult(tb.GetRepositoryTrends(ctx, args.RepoName)), nil
	}
}

func textResult(text string) *mcpsdk.CallToolResultFor[types.ToolResult] {
	return &mcpsdk.CallToolResultFor[types.ToolResult]{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
		StructuredContent: types.ToolResult{Text: text},
	}
}
