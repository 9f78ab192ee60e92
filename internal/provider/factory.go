package provider

import (
	"fmt"

	"counsel/internal/config"
	"counsel/internal/logging"
)

// NewRouter builds the provider clients from configuration and wires
// them into a Router. Availability is decided here, once: a provider is
// available exactly when its API key is set. The default provider
// (Gemini) must be available because every fallback chain ends there;
// missing secondary credentials only log a warning.
func NewRouter(cfg *config.Config) (*Router, error) {
	clients := make(map[Name]Client)

	if cfg.Gemini.APIKey != "" {
		gc := DefaultGeminiConfig(cfg.Gemini.APIKey)
		gc.BaseURL = cfg.Gemini.BaseURL
		gc.Timeout = cfg.APITimeout
		clients[Gemini] = NewGeminiClient(gc)
	}
	if cfg.Anthropic.APIKey != "" {
		ac := DefaultAnthropicConfig(cfg.Anthropic.APIKey)
		ac.BaseURL = cfg.Anthropic.BaseURL
		ac.Timeout = cfg.APITimeout
		clients[Anthropic] = NewAnthropicClient(ac)
	}
	if cfg.DeepSeek.APIKey != "" {
		dc := DefaultDeepSeekConfig(cfg.DeepSeek.APIKey)
		dc.BaseURL = cfg.DeepSeek.BaseURL
		dc.Timeout = cfg.APITimeout
		clients[DeepSeek] = NewDeepSeekClient(dc)
	}

	if len(clients) == 0 {
		return nil, ErrNoProviders
	}
	if _, ok := clients[Gemini]; !ok {
		return nil, fmt.Errorf("%w: default provider %s requires a credential", ErrNoProviders, Gemini)
	}

	for _, name := range []Name{Anthropic, DeepSeek} {
		if _, ok := clients[name]; !ok {
			logging.ProviderWarn("%s credential not set, requests will fall back to %s", name, Gemini)
		}
	}

	defaultModel := map[Name]string{
		Gemini:    cfg.Models.Align,
		Anthropic: cfg.Models.Decision,
		DeepSeek:  cfg.Models.ContextEast,
	}

	return NewRouterWithClients(clients, Gemini, defaultModel, cfg.MaxRetries), nil
}
