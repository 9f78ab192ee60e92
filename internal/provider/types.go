// Package provider implements the chat-completion clients for the
// upstream model APIs and the retry/fallback router that the pipeline
// calls through. Each provider is a thin JSON-over-HTTP client with its
// own request and response shapes; the router normalizes them behind a
// single Client interface.
package provider

import (
	"context"
	"time"
)

// Name identifies a provider family.
type Name string

const (
	Gemini    Name = "gemini"
	Anthropic Name = "anthropic"
	DeepSeek  Name = "deepseek"
)

// Request is a single completion request. Model is the provider-side
// model identifier; Temperature is passed through unchanged.
type Request struct {
	Prompt      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Client is the interface every provider client implements.
type Client interface {
	// Complete sends the request and returns the completion text.
	Complete(ctx context.Context, req Request) (string, error)
	// Name returns the provider family this client talks to.
	Name() Name
}

// GeminiConfig holds configuration for the Gemini client.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// DefaultGeminiConfig returns sensible defaults.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		BaseURL: "https://generativelanguage.googleapis.com/v1beta",
		Timeout: 120 * time.Second,
	}
}

// AnthropicConfig holds configuration for the Anthropic client.
type AnthropicConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// DefaultAnthropicConfig returns sensible defaults.
func DefaultAnthropicConfig(apiKey string) AnthropicConfig {
	return AnthropicConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.anthropic.com/v1",
		Timeout: 120 * time.Second,
	}
}

// DeepSeekConfig holds configuration for the DeepSeek client. The API
// is OpenAI-compatible, so BaseURL can point at any compatible gateway.
type DeepSeekConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// DefaultDeepSeekConfig returns sensible defaults.
func DefaultDeepSeekConfig(apiKey string) DeepSeekConfig {
	return DeepSeekConfig{
		APIKey:  apiKey,
		BaseURL: "https://api.deepseek.com",
		Timeout: 120 * time.Second,
	}
}
