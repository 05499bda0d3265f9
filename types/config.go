/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool         `mapstructure:"verbose"`
	Config  string       `mapstructure:"config"`
	Potpie  PotpieConfig `mapstructure:"potpie" validate:"required"`
	LLM     LLMConfig    `mapstructure:"llm" validate:"omitempty"`
}

// PotpieConfig holds settings for the Potpie analysis API client
type PotpieConfig struct {
	// APIKey is read from POTPIE_API_KEY when not set in the config file.
	APIKey  string `mapstructure:"apiKey" validate:"omitempty,min=1"`
	BaseURL string `mapstructure:"baseUrl" validate:"omitempty,url"`
	// RequestTimeoutSeconds bounds each individual HTTP request.
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
	// ReadyTimeoutSeconds bounds how long status polling waits for readiness.
	ReadyTimeoutSeconds int `mapstructure:"readyTimeoutSeconds" validate:"omitempty,min=1,max=3600"`
	// PollIntervalSeconds is the fixed delay between status polls.
	PollIntervalSeconds int `mapstructure:"pollIntervalSeconds" validate:"omitempty,min=1,max=300"`
}

// LLMConfig holds configuration for the interactive agent's model backend
type LLMConfig struct {
	Provider  string `mapstructure:"provider" validate:"omitempty,oneof=groq"`
	ModelName string `mapstructure:"modelName" validate:"omitempty,min=1"`
	// APIKey is read from GROQ_API_KEY when not set in the config file.
	APIKey  string `mapstructure:"apiKey" validate:"omitempty,min=1"`
	BaseURL string `mapstructure:"baseUrl" validate:"omitempty,url"`
	// MaxIterations caps the agent's tool-use loop.
	MaxIterations         int `mapstructure:"maxIterations" validate:"omitempty,min=1,max=20"`
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=5,max=600"`
}
