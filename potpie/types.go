package potpie

import "encoding/json"

// StatusReady is the only terminal-success parsing status. Every other
// value means the remote job is still in progress.
const StatusReady = "ready"

// ParseResult identifies a unit of remote analysis work. The project ID is
// the only key for all follow-up status and conversation calls.
type ParseResult struct {
	ProjectID string `json:"project_id"`
}

// ParsingStatus is the remote job's current state. It is re-fetched on every
// poll and never cached locally.
type ParsingStatus struct {
	Status string `json:"status"`
}

// Ready reports whether the parsing job reached its terminal-success state.
func (s ParsingStatus) Ready() bool {
	return s.Status == StatusReady
}

// Conversation scopes follow-up messages against one or more parsed projects.
// Its lifetime is managed entirely by the remote service.
type Conversation struct {
	ConversationID string `json:"conversation_id"`
}

// MessageResponse is the remote answer to a message. The service returns an
// open-ended JSON object; Message carries the usual answer field and Raw
// keeps the full body for callers that need the rest.
type MessageResponse struct {
	Message string          `json:"message"`
	Raw     json.RawMessage `json:"-"`
}
