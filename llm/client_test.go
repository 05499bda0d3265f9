package llm

import (
	"context"
	"testing"

	"github.com/josephgoksu/RepoWing/types"
)

func TestNewChatModel(t *testing.T) {
	tests := []struct {
		name      string
		config    types.LLMConfig
		wantError bool
	}{
		{
			name:      "groq provider",
			config:    types.LLMConfig{Provider: "groq", APIKey: "test-key"},
			wantError: false,
		},
		{
			name:      "empty provider defaults to groq",
			config:    types.LLMConfig{APIKey: "test-key", ModelName: "llama-3.1-8b-instant"},
			wantError: false,
		},
		{
			name:      "missing API key",
			config:    types.LLMConfig{Provider: "groq"},
			wantError: true,
		},
		{
			name:      "unsupported provider",
			config:    types.LLMConfig{Provider: "unsupported", APIKey: "test-key"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chatModel, err := NewChatModel(context.Background(), tt.config)
			if (err != nil) != tt.wantError {
				t.Errorf("NewChatModel() error = %v, wantError %v", err, tt.wantError)
				return
			}
			if !tt.wantError && chatModel == nil {
				t.Error("NewChatModel() returned nil model")
			}
		})
	}
}
