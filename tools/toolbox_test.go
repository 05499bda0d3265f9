package tools

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/josephgoksu/RepoWing/potpie"
)

// fakeClient scripts the remote API surface and records every call in order.
type fakeClient struct {
	calls []string

	parseResult potpie.ParseResult
	parseErr    error

	statusResult potpie.ParsingStatus
	statusErr    error

	waitResult   potpie.ParsingStatus
	waitErr      error
	waitTimeout  time.Duration
	waitInterval time.Duration

	convResult potpie.Conversation
	convErr    error

	msgResult potpie.MessageResponse
	msgErr    error
}

func (f *fakeClient) ParseRepository(ctx context.Context, repoName, branchName string) (potpie.ParseResult, error) {
	f.calls = append(f.calls, "parse")
	return f.parseResult, f.parseErr
}

func (f *fakeClient) GetParsingStatus(ctx context.Context, projectID string) (potpie.ParsingStatus, error) {
	f.calls = append(f.calls, "status")
	return f.statusResult, f.statusErr
}

func (f *fakeClient) WaitForReady(ctx context.Context, projectID string, timeout, interval time.Duration) (potpie.ParsingStatus, error) {
	f.calls = append(f.calls, "wait")
	f.waitTimeout = timeout
	f.waitInterval = interval
	return f.waitResult, f.waitErr
}

func (f *fakeClient) CreateConversation(ctx context.Context, projectIDs, agentIDs []string) (potpie.Conversation, error) {
	f.calls = append(f.calls, "conversation")
	return f.convResult, f.convErr
}

func (f *fakeClient) SendMessage(ctx context.Context, conversationID, content, agentID string, nodeIDs []string) (potpie.MessageResponse, error) {
	f.calls = append(f.calls, "message")
	return f.msgResult, f.msgErr
}

func networkErr() error {
	return &potpie.RequestError{Method: "POST", Endpoint: "/parse", Err: errors.New("connection refused")}
}

func TestStartRepoParsing(t *testing.T) {
	tests := []struct {
		name      string
		repo      string
		client    *fakeClient
		want      string
		wantCalls []string
	}{
		{
			name:      "success contains project id",
			repo:      "owner/repo",
			client:    &fakeClient{parseResult: potpie.ParseResult{ProjectID: "proj-42"}},
			want:      "proj-42",
			wantCalls: []string{"parse"},
		},
		{
			name:      "missing separator rejected before any request",
			repo:      "not-a-repo",
			client:    &fakeClient{},
			want:      "Invalid repository name format. Expected format: 'owner/repo'",
			wantCalls: nil,
		},
		{
			name:      "empty name rejected before any request",
			repo:      "",
			client:    &fakeClient{},
			want:      "Invalid repository name format",
			wantCalls: nil,
		},
		{
			name:      "network failure keeps marker",
			repo:      "owner/repo",
			client:    &fakeClient{parseErr: networkErr()},
			want:      "Failed to parse repository: Network error - ",
			wantCalls: []string{"parse"},
		},
		{
			name:      "missing project id in response",
			repo:      "owner/repo",
			client:    &fakeClient{},
			want:      "Failed to parse repository: Invalid API response format",
			wantCalls: []string{"parse"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.client).StartRepoParsing(context.Background(), tt.repo, "")
			if !strings.Contains(got, tt.want) {
				t.Errorf("StartRepoParsing() = %q, want it to contain %q", got, tt.want)
			}
			if len(tt.client.calls) != len(tt.wantCalls) {
				t.Errorf("calls = %v, want %v", tt.client.calls, tt.wantCalls)
			}
		})
	}
}

func TestCheckRepoParsingStatus(t *testing.T) {
	tests := []struct {
		name      string
		projectID string
		client    *fakeClient
		want      string
		wantCalls []string
	}{
		{
			name:      "reports current status",
			projectID: "proj-42",
			client:    &fakeClient{statusResult: potpie.ParsingStatus{Status: "processing"}},
			want:      "Current parsing status: processing",
			wantCalls: []string{"status"},
		},
		{
			name:      "empty project id rejected before any request",
			projectID: "  ",
			client:    &fakeClient{},
			want:      "Invalid project_id: Project ID cannot be empty",
			wantCalls: nil,
		},
		{
			name:      "network failure keeps marker",
			projectID: "proj-42",
			client:    &fakeClient{statusErr: networkErr()},
			want:      "Failed to get parsing status: Network error - ",
			wantCalls: []string{"status"},
		},
		{
			name:      "blank status in response",
			projectID: "proj-42",
			client:    &fakeClient{},
			want:      "Failed to get parsing status: Invalid response format",
			wantCalls: []string{"status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.client).CheckRepoParsingStatus(context.Background(), tt.projectID)
			if !strings.Contains(got, tt.want) {
				t.Errorf("CheckRepoParsingStatus() = %q, want it to contain %q", got, tt.want)
			}
			if len(tt.client.calls) != len(tt.wantCalls) {
				t.Errorf("calls = %v, want %v", tt.client.calls, tt.wantCalls)
			}
		})
	}
}

func TestAskParsedRepoReadyChain(t *testing.T) {
	client := &fakeClient{
		waitResult: potpie.ParsingStatus{Status: potpie.StatusReady},
		convResult: potpie.Conversation{ConversationID: "conv-1"},
		msgResult:  potpie.MessageResponse{Message: "42"},
	}

	got := New(client).AskParsedRepo(context.Background(), "proj-1", "what is the answer?")
	if !strings.Contains(got, "42") {
		t.Errorf("AskParsedRepo() = %q, want it to contain %q", got, "42")
	}
	want := []string{"wait", "conversation", "message"}
	if len(client.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", client.calls, want)
	}
	for i := range want {
		if client.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, client.calls[i], want[i])
		}
	}
}

func TestSetPollSettings(t *testing.T) {
	client := &fakeClient{
		waitResult: potpie.ParsingStatus{Status: potpie.StatusReady},
		convResult: potpie.Conversation{ConversationID: "conv-1"},
		msgResult:  potpie.MessageResponse{Message: "ok"},
	}

	tb := New(client)
	tb.SetPollSettings(30*time.Second, 2*time.Second)
	tb.AskParsedRepo(context.Background(), "proj-1", "ping")

	if client.waitTimeout != 30*time.Second {
		t.Errorf("wait timeout = %v, want 30s", client.waitTimeout)
	}
	if client.waitInterval != 2*time.Second {
		t.Errorf("wait interval = %v, want 2s", client.waitInterval)
	}

	// Non-positive overrides keep the previous settings.
	tb.SetPollSettings(0, -1)
	tb.AskParsedRepo(context.Background(), "proj-1", "ping")
	if client.waitTimeout != 30*time.Second || client.waitInterval != 2*time.Second {
		t.Errorf("settings changed by non-positive overrides: %v/%v", client.waitTimeout, client.waitInterval)
	}
}

func TestAskParsedRepoTimeoutShortCircuits(t *testing.T) {
	client := &fakeClient{
		waitErr: &potpie.TimeoutError{ProjectID: "proj-1", Elapsed: askReadyTimeout, Limit: askReadyTimeout},
	}

	got := New(client).AskParsedRepo(context.Background(), "proj-1", "anything")
	if !strings.HasPrefix(got, "Timeout waiting for repository parsing to complete") {
		t.Errorf("AskParsedRepo() = %q, want a timeout-indicating prefix", got)
	}
	for _, call := range client.calls {
		if call == "conversation" || call == "message" {
			t.Errorf("unexpected %s call after timeout", call)
		}
	}
}

func TestAskParsedRepoMissingConversationID(t *testing.T) {
	client := &fakeClient{
		waitResult: potpie.ParsingStatus{Status: potpie.StatusReady},
	}

	got := New(client).AskParsedRepo(context.Background(), "proj-1", "anything")
	if got != "Failed to create Potpie conversation." {
		t.Errorf("AskParsedRepo() = %q, want conversation-creation failure", got)
	}
	for _, call := range client.calls {
		if call == "message" {
			t.Error("unexpected message call without a conversation id")
		}
	}
}

func TestAskParsedRepoRawFallback(t *testing.T) {
	client := &fakeClient{
		waitResult: potpie.ParsingStatus{Status: potpie.StatusReady},
		convResult: potpie.Conversation{ConversationID: "conv-1"},
		msgResult:  potpie.MessageResponse{Raw: []byte(`{"citations":["a.go"]}`)},
	}

	got := New(client).AskParsedRepo(context.Background(), "proj-1", "anything")
	if !strings.Contains(got, "citations") {
		t.Errorf("AskParsedRepo() = %q, want raw body fallback", got)
	}
}

func TestAnalyzeRepository(t *testing.T) {
	t.Run("parse goes first and success wraps answer", func(t *testing.T) {
		client := &fakeClient{
			parseResult: potpie.ParseResult{ProjectID: "proj-9"},
			waitResult:  potpie.ParsingStatus{Status: potpie.StatusReady},
			convResult:  potpie.Conversation{ConversationID: "conv-9"},
			msgResult:   potpie.MessageResponse{Message: "healthy project"},
		}

		got := New(client).AnalyzeRepository(context.Background(), "owner/repo")
		if !strings.Contains(got, "Analysis of repository owner/repo: healthy project") {
			t.Errorf("AnalyzeRepository() = %q", got)
		}
		if client.calls[0] != "parse" {
			t.Errorf("first call = %q, want parse", client.calls[0])
		}
	})

	t.Run("missing project id stops the chain", func(t *testing.T) {
		client := &fakeClient{}
		got := New(client).AnalyzeRepository(context.Background(), "owner/repo")
		if !strings.Contains(got, "project_id") {
			t.Errorf("AnalyzeRepository() = %q, want a project_id reference", got)
		}
		if len(client.calls) != 1 {
			t.Errorf("calls = %v, want only the parse call", client.calls)
		}
	})

	t.Run("inner failure propagates verbatim", func(t *testing.T) {
		client := &fakeClient{
			parseResult: potpie.ParseResult{ProjectID: "proj-9"},
			waitResult:  potpie.ParsingStatus{Status: potpie.StatusReady},
			convResult:  potpie.Conversation{ConversationID: "conv-9"},
			msgErr:      networkErr(),
		}
		got := New(client).AnalyzeRepository(context.Background(), "owner/repo")
		if !strings.Contains(got, "Network error - ") {
			t.Errorf("AnalyzeRepository() = %q, want the network marker", got)
		}
		if strings.Contains(got, "Analysis of repository") {
			t.Errorf("AnalyzeRepository() = %q, failure must not be wrapped as success", got)
		}
	})
}

func TestGetRepositoryTrends(t *testing.T) {
	t.Run("answer-shaped response", func(t *testing.T) {
		client := &fakeClient{
			parseResult: potpie.ParseResult{ProjectID: "proj-7"},
			waitResult:  potpie.ParsingStatus{Status: potpie.StatusReady},
			convResult:  potpie.Conversation{ConversationID: "conv-7"},
			msgResult:   potpie.MessageResponse{Message: "stars up 12%"},
		}
		got := New(client).GetRepositoryTrends(context.Background(), "owner/repo")
		if !strings.Contains(got, "Potpie trends response for owner/repo: stars up 12%") {
			t.Errorf("GetRepositoryTrends() = %q", got)
		}
	})

	t.Run("raw-shaped response", func(t *testing.T) {
		client := &fakeClient{
			parseResult: potpie.ParseResult{ProjectID: "proj-7"},
			waitResult:  potpie.ParsingStatus{Status: potpie.StatusReady},
			convResult:  potpie.Conversation{ConversationID: "conv-7"},
			msgResult:   potpie.MessageResponse{Raw: []byte(`{"metrics":{}}`)},
		}
		got := New(client).GetRepositoryTrends(context.Background(), "owner/repo")
		if !strings.Contains(got, "Potpie trends raw response for owner/repo:") {
			t.Errorf("GetRepositoryTrends() = %q", got)
		}
	})

	t.Run("query failure", func(t *testing.T) {
		client := &fakeClient{
			parseResult: potpie.ParseResult{ProjectID: "proj-7"},
			waitErr:     networkErr(),
		}
		got := New(client).GetRepositoryTrends(context.Background(), "owner/repo")
		if !strings.Contains(got, "Potpie query failed for trends:") {
			t.Errorf("GetRepositoryTrends() = %q", got)
		}
		if !strings.Contains(got, "Network error - ") {
			t.Errorf("GetRepositoryTrends() = %q, want the network marker preserved", got)
		}
	})

	t.Run("missing project id stops the chain", func(t *testing.T) {
		client := &fakeClient{}
		got := New(client).GetRepositoryTrends(context.Background(), "owner/repo")
		if !strings.Contains(got, "project_id") {
			t.Errorf("GetRepositoryTrends() = %q, want a project_id reference", got)
		}
		if len(client.calls) != 1 {
			t.Errorf("calls = %v, want only the parse call", client.calls)
		}
	})
}

// Every tool that touches the network must surface the client's failure text
// in-band, marker included.
func TestNetworkFailureRoundTrip(t *testing.T) {
	failing := &fakeClient{
		parseErr:  networkErr(),
		statusErr: networkErr(),
		waitErr:   networkErr(),
	}
	tb := New(failing)
	ctx := context.Background()

	outputs := map[string]string{
		"start":   tb.StartRepoParsing(ctx, "owner/repo", "main"),
		"check":   tb.CheckRepoParsingStatus(ctx, "proj-1"),
		"ask":     tb.AskParsedRepo(ctx, "proj-1", "q"),
		"analyze": tb.AnalyzeRepository(ctx, "owner/repo"),
		"trends":  tb.GetRepositoryTrends(ctx, "owner/repo"),
	}
	for name, out := range outputs {
		if !strings.Contains(out, "Network error - ") {
			t.Errorf("%s output = %q, want the network marker", name, out)
		}
		if !strings.Contains(out, "connection refused") {
			t.Errorf("%s output = %q, want the client error text verbatim", name, out)
		}
	}
}
