// Package llm creates the chat model behind the interactive agent. Groq is
// reached through its OpenAI-compatible endpoint via the Eino openai binding.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/josephgoksu/RepoWing/types"
)

const (
	// DefaultGroqBaseURL is Groq's OpenAI-compatible API endpoint.
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	// DefaultGroqModel is used when no model is configured.
	DefaultGroqModel = "llama-3.3-70b-versatile"

	defaultRequestTimeout = 60 * time.Second
)

// NewChatModel creates a tool-capable chat model from the LLM configuration.
func NewChatModel(ctx context.Context, cfg types.LLMConfig) (model.BaseChatModel, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	switch provider {
	case "groq", "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("groq provider selected but API key is missing")
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DefaultGroqBaseURL
		}
		modelName := cfg.ModelName
		if modelName == "" {
			modelName = DefaultGroqModel
		}
		timeout := defaultRequestTimeout
		if cfg.RequestTimeoutSeconds > 0 {
			timeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second
		}
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL: baseURL,
			APIKey:  cfg.APIKey,
			Model:   modelName,
			Timeout: timeout,
		})
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
