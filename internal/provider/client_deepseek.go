package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"counsel/internal/logging"
)

// DeepSeekClient implements Client for the DeepSeek chat API. The wire
// format is OpenAI-compatible.
type DeepSeekClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewDeepSeekClient creates a new DeepSeek client.
func NewDeepSeekClient(config DeepSeekConfig) *DeepSeekClient {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultDeepSeekConfig("").BaseURL
	}
	return &DeepSeekClient{
		apiKey:  config.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Name returns the provider family.
func (c *DeepSeekClient) Name() Name { return DeepSeek }

type deepseekRequest struct {
	Model       string            `json:"model"`
	Messages    []deepseekMessage `json:"messages"`
	MaxTokens   int               `json:"max_tokens,omitempty"`
	Temperature float64           `json:"temperature,omitempty"`
}

type deepseekMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type deepseekResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt through the chat completions endpoint.
func (c *DeepSeekClient) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", authError(DeepSeek, "API key not configured")
	}

	body := deepseekRequest{
		Model: req.Model,
		Messages: []deepseekMessage{
			{Role: "user", Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("deepseek request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", authError(DeepSeek, fmt.Sprintf("status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		logging.ProviderWarn("deepseek %s returned %d: %s", req.Model, resp.StatusCode, truncateBody(respBody))
		return "", fmt.Errorf("deepseek API error (status %d): %s", resp.StatusCode, truncateBody(respBody))
	}

	var parsed deepseekResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse deepseek response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("deepseek API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("deepseek returned no choices")
	}

	text := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("deepseek returned empty completion")
	}
	return text, nil
}
