// Package tools exposes the repository-analysis operations as string-returning
// tool functions. Every failure is absorbed here and rendered as a descriptive
// message; nothing escapes to the caller as an error.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/josephgoksu/RepoWing/potpie"
	"github.com/josephgoksu/RepoWing/prompts"
)

// askReadyTimeout bounds how long ask-style tools wait for a parse job to
// become ready before giving up.
const askReadyTimeout = 10 * time.Minute

// DefaultBranch is used when a tool is invoked without an explicit branch.
const DefaultBranch = "main"

// Client is the surface of the Potpie API the toolbox depends on. It is an
// interface so tests can substitute a scripted double.
type Client interface {
	ParseRepository(ctx context.Context, repoName, branchName string) (potpie.ParseResult, error)
	GetParsingStatus(ctx context.Context, projectID string) (potpie.ParsingStatus, error)
	WaitForReady(ctx context.Context, projectID string, timeout, interval time.Duration) (potpie.ParsingStatus, error)
	CreateConversation(ctx context.Context, projectIDs, agentIDs []string) (potpie.Conversation, error)
	SendMessage(ctx context.Context, conversationID, content, agentID string, nodeIDs []string) (potpie.MessageResponse, error)
}

var _ Client = (*potpie.Client)(nil)

// Toolbox bundles the five analysis tools around one injected client. It holds
// no mutable state, so concurrent invocations need no coordination.
type Toolbox struct {
	client       Client
	verbose      bool
	readyTimeout time.Duration
	pollInterval time.Duration
}

// New builds a Toolbox on top of the given client.
func New(client Client) *Toolbox {
	return &Toolbox{
		client:       client,
		readyTimeout: askReadyTimeout,
		pollInterval: potpie.DefaultPollInterval,
	}
}

// SetVerbose enables step-by-step logging of tool execution.
func (t *Toolbox) SetVerbose(v bool) { t.verbose = v }

// SetPollSettings overrides how long ask-style tools wait for a parse job to
// become ready and how often they check. Non-positive values keep the defaults.
func (t *Toolbox) SetPollSettings(timeout, interval time.Duration) {
	if timeout > 0 {
		t.readyTimeout = timeout
	}
	if interval > 0 {
		t.pollInterval = interval
	}
}

func (t *Toolbox) logf(format string, args ...any) {
	if t.verbose {
		log.Printf("[tools] "+format, args...)
	}
}

// failMessage renders an error behind a stable prefix. Transport failures keep
// the "Network error - " marker so callers can recognize them in-band.
func failMessage(prefix string, err error) string {
	var reqErr *potpie.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("%s: Network error - %v", prefix, err)
	}
	return fmt.Sprintf("%s: %v", prefix, err)
}

// StartRepoParsing initiates parsing for a repository and branch. The success
// message carries the project ID needed for all follow-up tools.
func (t *Toolbox) StartRepoParsing(ctx context.Context, repoName, branchName string) string {
	if repoName == "" || !strings.Contains(repoName, "/") {
		return "Invalid repository name format. Expected format: 'owner/repo'"
	}
	if branchName == "" {
		branchName = DefaultBranch
	}

	t.logf("starting parsing for %s on branch %s", repoName, branchName)
	result, err := t.client.ParseRepository(ctx, repoName, branchName)
	if err != nil {
		return failMessage("Failed to parse repository", err)
	}
	if result.ProjectID == "" {
		return "Failed to parse repository: Invalid API response format"
	}
	return fmt.Sprintf("Successfully started parsing repository %s\nProject ID: %s\nStatus: Parsing initiated",
		repoName, result.ProjectID)
}

// CheckRepoParsingStatus reports the current parsing status of a project
// without waiting for readiness.
func (t *Toolbox) CheckRepoParsingStatus(ctx context.Context, projectID string) string {
	if strings.TrimSpace(projectID) == "" {
		return "Invalid project_id: Project ID cannot be empty"
	}

	t.logf("checking parsing status for project %s", projectID)
	status, err := t.client.GetParsingStatus(ctx, projectID)
	if err != nil {
		return failMessage("Failed to get parsing status", err)
	}
	if status.Status == "" {
		return "Failed to get parsing status: Invalid response format"
	}
	return fmt.Sprintf("Current parsing status: %s", status.Status)
}

// queryOutcome is the tagged result of one ask chain, so composing tools can
// distinguish a usable answer from a raw body or an in-band failure without
// probing strings.
type queryOutcome struct {
	kind outcomeKind
	text string
}

type outcomeKind int

const (
	outcomeAnswer outcomeKind = iota
	outcomeRaw
	outcomeFailure
)

func failure(text string) queryOutcome { return queryOutcome{kind: outcomeFailure, text: text} }

// ask runs the wait -> converse -> message chain against a parsed project.
func (t *Toolbox) ask(ctx context.Context, projectID, query string) queryOutcome {
	t.logf("querying project %s with: %s", projectID, query)
	status, err := t.client.WaitForReady(ctx, projectID, t.readyTimeout, t.pollInterval)
	if err != nil {
		var timeoutErr *potpie.TimeoutError
		if errors.As(err, &timeoutErr) {
			return failure(fmt.Sprintf("Timeout waiting for repository parsing to complete: %v", err))
		}
		return failure(failMessage("Failed to query repository", err))
	}
	if !status.Ready() {
		return failure(fmt.Sprintf("Project %s is not ready for querying. Status: %s", projectID, status.Status))
	}

	conv, err := t.client.CreateConversation(ctx, []string{projectID}, nil)
	if err != nil {
		return failure(failMessage("Failed to query repository", err))
	}
	if conv.ConversationID == "" {
		return failure("Failed to create Potpie conversation.")
	}
	t.logf("created conversation %s for project %s", conv.ConversationID, projectID)

	msg, err := t.client.SendMessage(ctx, conv.ConversationID, query, "", nil)
	if err != nil {
		return failure(failMessage("Failed to query repository", err))
	}
	if msg.Message != "" {
		return queryOutcome{kind: outcomeAnswer, text: msg.Message}
	}
	return queryOutcome{kind: outcomeRaw, text: string(msg.Raw)}
}

// AskParsedRepo asks a question about an already-parsed repository, waiting
// for parsing to complete first if necessary.
func (t *Toolbox) AskParsedRepo(ctx context.Context, projectID, query string) string {
	return t.ask(ctx, projectID, query).text
}

// AnalyzeRepository parses a repository on its default branch and queries it
// with a fixed analytical prompt.
func (t *Toolbox) AnalyzeRepository(ctx context.Context, repoName string) string {
	t.logf("analyze: starting parsing for %s", repoName)
	result, err := t.client.ParseRepository(ctx, repoName, DefaultBranch)
	if err != nil {
		return failMessage("Failed to analyze repository", err)
	}
	if result.ProjectID == "" {
		return fmt.Sprintf("Failed to get project_id when starting parsing for %s.", repoName)
	}

	outcome := t.ask(ctx, result.ProjectID, prompts.RepositoryAnalysis)
	if outcome.kind == outcomeFailure {
		return outcome.text
	}
	return fmt.Sprintf("Analysis of repository %s: %s", repoName, outcome.text)
}

// GetRepositoryTrends parses a repository and queries it with a fixed trends
// prompt, formatting the result by response shape.
func (t *Toolbox) GetRepositoryTrends(ctx context.Context, repoName string) string {
	t.logf("trends: starting parsing for %s", repoName)
	result, err := t.client.ParseRepository(ctx, repoName, DefaultBranch)
	if err != nil {
		return failMessage("Failed to get repository trends", err)
	}
	if result.ProjectID == "" {
		return fmt.Sprintf("Failed to get project_id when starting parsing for %s.", repoName)
	}

	outcome := t.ask(ctx, result.ProjectID, prompts.RepositoryTrends)
	switch outcome.kind {
	case outcomeFailure:
		return fmt.Sprintf("Potpie query failed for trends: %s", outcome.text)
	case outcomeAnswer:
		return fmt.Sprintf("Potpie trends response for %s: %s", repoName, outcome.text)
	default:
		return fmt.Sprintf("Potpie trends raw response for %s: %s", repoName, outcome.text)
	}
}
