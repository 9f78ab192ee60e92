// Package config loads and validates counsel configuration from a YAML
// file with environment-variable overrides. API keys are only ever read
// from the environment or the config file, never hardcoded.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ProviderConfig holds the settings for one upstream provider family.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// StageModels maps each pipeline stage to the model identifier it calls.
// ContextEast is the second-perspective model used only when the context
// stage switches to dual-perspective mode.
type StageModels struct {
	Align       string `yaml:"align"`
	Insight     string `yaml:"insight"`
	Context     string `yaml:"context"`
	ContextEast string `yaml:"context_east"`
	Opportunity string `yaml:"opportunity"`
	Risk        string `yaml:"risk"`
	Balance     string `yaml:"balance"`
	Strategy    string `yaml:"strategy"`
	Outreach    string `yaml:"outreach"`
	Coherence   string `yaml:"coherence"`
	Decision    string `yaml:"decision"`
}

// DivergenceConfig tunes the dual-perspective activation heuristic.
// The threshold and keyword count are empirically tuned, not semantic
// invariants; keep them configurable.
type DivergenceConfig struct {
	ActivationThreshold float64 `yaml:"activation_threshold"`
	MinKeywords         int     `yaml:"min_keywords"`
}

// ScenarioConfig bounds accepted scenario text.
type ScenarioConfig struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
}

// ServiceConfig configures the HTTP service layer.
type ServiceConfig struct {
	Listen string `yaml:"listen"`
}

// Config is the root configuration.
type Config struct {
	Gemini    ProviderConfig `yaml:"gemini"`
	Anthropic ProviderConfig `yaml:"anthropic"`
	DeepSeek  ProviderConfig `yaml:"deepseek"`

	Models StageModels `yaml:"models"`

	APITimeout time.Duration `yaml:"api_timeout"`
	MaxRetries int           `yaml:"max_retries"`

	Divergence DivergenceConfig `yaml:"divergence"`
	Scenario   ScenarioConfig   `yaml:"scenario"`
	Service    ServiceConfig    `yaml:"service"`

	OutputDir string `yaml:"output_dir"`
}

// Default returns the configuration defaults. Model identifiers follow
// the split used in production: fast Gemini models for breadth stages,
// Claude for the deep-reasoning stages, DeepSeek for the second
// perspective.
func Default() *Config {
	return &Config{
		Gemini:    ProviderConfig{BaseURL: "https://generativelanguage.googleapis.com/v1beta"},
		Anthropic: ProviderConfig{BaseURL: "https://api.anthropic.com/v1"},
		DeepSeek:  ProviderConfig{BaseURL: "https://api.deepseek.com"},
		Models: StageModels{
			Align:       "gemini-2.0-flash-exp",
			Insight:     "claude-3-5-sonnet-20241022",
			Context:     "gemini-2.0-flash-exp",
			ContextEast: "deepseek-chat",
			Opportunity: "gemini-2.0-flash-exp",
			Risk:        "gemini-2.0-flash-exp",
			Balance:     "claude-3-5-sonnet-20241022",
			Strategy:    "gemini-2.0-flash-exp",
			Outreach:    "gemini-2.0-flash-exp",
			Coherence:   "claude-3-5-sonnet-20241022",
			Decision:    "claude-3-5-sonnet-20241022",
		},
		APITimeout: 120 * time.Second,
		MaxRetries: 3,
		Divergence: DivergenceConfig{
			ActivationThreshold: 0.15,
			MinKeywords:         3,
		},
		Scenario: ScenarioConfig{
			MinLength: 50,
			MaxLength: 50000,
		},
		Service:   ServiceConfig{Listen: "127.0.0.1:8080"},
		OutputDir: "results",
	}
}

// Load reads the config file at path (if it exists), then applies
// environment overrides on top. A missing file is not an error; the
// defaults plus environment are a complete configuration.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables on the loaded values.
// Environment always wins over the file.
func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.Anthropic.APIKey = v
	}
	if v := os.Getenv("DEEPSEEK_API_KEY"); v != "" {
		c.DeepSeek.APIKey = v
	}
	if v := os.Getenv("COUNSEL_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("COUNSEL_LISTEN"); v != "" {
		c.Service.Listen = v
	}
	if v := os.Getenv("COUNSEL_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.APITimeout = d
		}
	}
	if v := os.Getenv("COUNSEL_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
	if v := os.Getenv("COUNSEL_DIVERGENCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Divergence.ActivationThreshold = f
		}
	}
}

// Validate checks bounds on the tunable values. Missing provider keys
// are deliberately not an error here: availability is resolved when the
// provider clients are constructed, and a missing secondary credential
// only degrades that provider to fallback.
func (c *Config) Validate() error {
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("max_retries must be in [0,10], got %d", c.MaxRetries)
	}
	if c.APITimeout < 10*time.Second || c.APITimeout > 10*time.Minute {
		return fmt.Errorf("api_timeout must be between 10s and 10m, got %s", c.APITimeout)
	}
	if c.Divergence.ActivationThreshold < 0 || c.Divergence.ActivationThreshold > 1 {
		return fmt.Errorf("divergence activation_threshold must be in [0,1], got %g", c.Divergence.ActivationThreshold)
	}
	if c.Divergence.MinKeywords < 1 {
		return fmt.Errorf("divergence min_keywords must be >= 1, got %d", c.Divergence.MinKeywords)
	}
	if c.Scenario.MinLength < 1 || c.Scenario.MaxLength < c.Scenario.MinLength {
		return fmt.Errorf("invalid scenario length bounds [%d,%d]", c.Scenario.MinLength, c.Scenario.MaxLength)
	}
	return nil
}

// ModelFor returns the configured model for a stage name, falling back
// to the align model for unknown names.
func (c *Config) ModelFor(stage string) string {
	switch stage {
	case "align":
		return c.Models.Align
	case "insight":
		return c.Models.Insight
	case "context":
		return c.Models.Context
	case "context_east":
		return c.Models.ContextEast
	case "opportunity":
		return c.Models.Opportunity
	case "risk":
		return c.Models.Risk
	case "balance":
		return c.Models.Balance
	case "strategy":
		return c.Models.Strategy
	case "outreach":
		return c.Models.Outreach
	case "coherence":
		return c.Models.Coherence
	case "decision":
		return c.Models.Decision
	default:
		return c.Models.Align
	}
}
