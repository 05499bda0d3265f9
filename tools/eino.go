package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

// EinoTools wraps the toolbox as Eino-compatible tools for the interactive
// agent loop. Each wrapper decodes plain JSON arguments and returns the
// toolbox's string verbatim.
func EinoTools(tb *Toolbox) []tool.InvokableTool {
	return []tool.InvokableTool{
		&startParsingTool{tb: tb},
		&parsingStatusTool{tb: tb},
		&askRepoTool{tb: tb},
		&analyzeRepoTool{tb: tb},
		&repoTrendsTool{tb: tb},
	}
}

func decodeArgs(argsJSON string, out any) error {
	if err := json.Unmarshal([]byte(argsJSON), out); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}
	return nil
}

type startParsingTool struct{ tb *Toolbox }

func (t *startParsingTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: "start_repo_parsing",
		Desc: "Initiates parsing for a repository and branch using Potpie. Returns the project_id needed for follow-up actions. Example repo_name: 'owner/repo'.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"repo_name":   {Type: "string", Desc: "Repository in 'owner/repo' form", Required: true},
			"branch_name": {Type: "string", Desc: "Branch to parse (default: main)", Required: false},
		}),
	}, nil
}

func (t *startParsingTool) InvokableRun(ctx context.Context, argsJSON string, opts ...tool.Option) (string, error) {
	var args struct {
		RepoName   string `json:"repo_name"`
		BranchName string `json:"branch_name,omitempty"`
	}
	if err := decodeArgs(argsJSON, &args); err != nil {
		return "", err
	}
	return t.tb.StartRepoParsing(ctx, args.RepoName, args.BranchName), nil
}

var _ tool.InvokableTool = (*startParsingTool)(nil)

type parsingStatusTool struct{ tb *Toolbox }

func (t *parsingStatusTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: "check_repo_parsing_status",
		Desc: "Checks the parsing status of a repository using its Potpie project_id.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"project_id": {Type: "string", Desc: "Project ID returned by start_repo_parsing", Required: true},
		}),
	}, nil
}

func (t *parsingStatusTool) InvokableRun(ctx context.Context, argsJSON string, opts ...tool.Option) (string, error) {
	var args struct {
		ProjectID string `json:"project_id"`
	}
	if err := decodeArgs(argsJSON, &args); err != nil {
		return "", err
	}
	return t.tb.CheckRepoParsingStatus(ctx, args.ProjectID), nil
}

var _ tool.InvokableTool = (*parsingStatusTool)(nil)

type askRepoTool struct{ tb *Toolbox }

func (t *askRepoTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: "ask_parsed_repo",
		Desc: "Asks a question about an already-parsed repository identified by its project_id. Waits for parsing to complete if not already ready.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"project_id": {Type: "string", Desc: "Project ID of the parsed repository", Required: true},
			"query":      {Type: "string", Desc: "Question to ask about the repository", Required: true},
		}),
	}, nil
}

func (t *askRepoTool) InvokableRun(ctx context.Context, argsJSON string, opts ...tool.Option) (string, error) {
	var args struct {
		ProjectID string `json:"project_id"`
		Query     string `json:"query"`
	}
	if err := decodeArgs(argsJSON, &args); err != nil {
		return "", err
	}
	return t.tb.AskParsedRepo(ctx, args.ProjectID, args.Query), nil
}

var _ tool.InvokableTool = (*askRepoTool)(nil)

type analyzeRepoTool struct{ tb *Toolbox }

func (t *analyzeRepoTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: "analyze_repository",
		Desc: "Analyzes a GitHub repository end to end: starts parsing, waits for readiness, and returns quality and activity metrics. Expects repo_name like 'owner/repo'.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"repo_name": {Type: "string", Desc: "Repository in 'owner/repo' form", Required: true},
		}),
	}, nil
}

func (t *analyzeRepoTool) InvokableRun(ctx context.Context, argsJSON string, opts ...tool.Option) (string, error) {
	var args struct {
		RepoName string `json:"repo_name"`
	}
	if err := decodeArgs(argsJSON, &args); err != nil {
		return "", err
	}
	return t.tb.AnalyzeRepository(ctx, args.RepoName), nil
}

var _ tool.InvokableTool = (*analyzeRepoTool)(nil)

type repoTrendsTool struct{ tb *Toolbox }

func (t *repoTrendsTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: "get_repository_trends",
		Desc: "Gets trending metrics for a GitHub repository: star and fork growth, new contributors, commit frequency trend. Expects repo_name like 'owner/repo'.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"repo_name": {Type: "string", Desc: "Repository in 'owner/repo' form", Required: true},
		}),
	}, nil
}

func (t *repoTrendsTool) InvokableRun(ctx context.Context, argsJSON string, opts ...tool.Option) (string, error) {
	var args struct {
		RepoName string `json:"repo_name"`
	}
	if err := decodeArgs(argsJSON, &args); err != nil {
		return "", err
	}
	return t.tb.GetRepositoryTrends(ctx, args.RepoName), nil
}

var _ tool.InvokableTool = (*repoTrendsTool)(nil)
