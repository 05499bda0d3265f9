// Package potpie is a thin client for the Potpie code-analysis API: start a
// repository parse, poll it to readiness, open a conversation, send messages.
package potpie

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production Potpie API endpoint.
const DefaultBaseURL = "https://production-api.potpie.ai/api/v2"

const defaultRequestTimeout = 60 * time.Second

// Config holds the settings needed to construct a Client.
type Config struct {
	// APIKey is sent as the x-api-key header on every request.
	APIKey string
	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string
	// Timeout bounds each individual HTTP request.
	Timeout time.Duration
	// Verbose enables request/response body logging.
	Verbose bool
}

// Client is the single point of outbound communication with the Potpie API.
// Credentials and base URL are fixed at construction; a Client is safe for
// concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	clock   clock
	verbose bool
}

// NewClient builds a Client from cfg, applying defaults for anything unset.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		clock:   realClock{},
		verbose: cfg.Verbose,
	}
}

// request performs one HTTP round trip and decodes the JSON response into out.
// Transport and HTTP-status failures come back as *RequestError, decode
// failures as *ResponseError. Nothing is retried.
func (c *Client) request(ctx context.Context, method, endpoint string, payload, out any) error {
	reqID := uuid.NewString()[:8]
	url := c.baseURL + endpoint

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", endpoint, err)
		}
		body = bytes.NewReader(data)
		if c.verbose {
			log.Printf("[potpie %s] %s %s payload=%s", reqID, method, url, data)
		} else {
			log.Printf("[potpie %s] %s %s", reqID, method, url)
		}
	} else {
		log.Printf("[potpie %s] %s %s", reqID, method, url)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return &RequestError{Method: method, Endpoint: endpoint, Err: err}
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[potpie %s] request failed: %v", reqID, err)
		return &RequestError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[potpie %s] read response failed: %v", reqID, err)
		return &RequestError{Method: method, Endpoint: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	if c.verbose {
		log.Printf("[potpie %s] %s response=%s", reqID, resp.Status, raw)
	} else {
		log.Printf("[potpie %s] %s (%d bytes)", reqID, resp.Status, len(raw))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &RequestError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", strings.TrimSpace(string(raw))),
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &ResponseError{Endpoint: endpoint, Err: err}
		}
		if mr, ok := out.(*MessageResponse); ok {
			mr.Raw = raw
		}
	}
	return nil
}

// ParseRepository initiates parsing for a repository and branch. The returned
// project ID is the key for all follow-up calls.
func (c *Client) ParseRepository(ctx context.Context, repoName, branchName string) (ParseResult, error) {
	payload := map[string]string{
		"repo_name":   repoName,
		"branch_name": branchName,
	}
	var result ParseResult
	if err := c.request(ctx, http.MethodPost, "/parse", payload, &result); err != nil {
		return ParseResult{}, err
	}
	return result, nil
}

// GetParsingStatus fetches the parsing status for a project exactly once,
// regardless of the status value. Use WaitForReady to block until readiness.
func (c *Client) GetParsingStatus(ctx context.Context, projectID string) (ParsingStatus, error) {
	var status ParsingStatus
	if err := c.request(ctx, http.MethodGet, "/parsing-status/"+projectID, nil, &status); err != nil {
		return ParsingStatus{}, err
	}
	return status, nil
}

// CreateConversation opens a new conversation scoped to the given projects.
// Agent IDs are optional and omitted from the payload when empty.
func (c *Client) CreateConversation(ctx context.Context, projectIDs, agentIDs []string) (Conversation, error) {
	payload := map[string]any{
		"project_ids": projectIDs,
	}
	if len(agentIDs) > 0 {
		payload["agent_ids"] = agentIDs
	}
	var conv Conversation
	if err := c.request(ctx, http.MethodPost, "/conversations", payload, &conv); err != nil {
		return Conversation{}, err
	}
	return conv, nil
}

// SendMessage sends content within a conversation and returns the remote
// response. The API requires node_ids to be present, so nil becomes [].
func (c *Client) SendMessage(ctx context.Context, conversationID, content, agentID string, nodeIDs []string) (MessageResponse, error) {
	if nodeIDs == nil {
		nodeIDs = []string{}
	}
	payload := map[string]any{
		"content":  content,
		"node_ids": nodeIDs,
	}
	if agentID != "" {
		payload["agent_id"] = agentID
	}
	var msg MessageResponse
	if err := c.request(ctx, http.MethodPost, "/conversations/"+conversationID+"/message", payload, &msg); err != nil {
		return MessageResponse{}, err
	}
	return msg, nil
}
