package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config selects and parameterizes the LLM backend.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter"
	// or "mock".
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single request including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the endpoint for OpenAI-compatible APIs.
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig shapes the exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheap fast model for each provider and a
// modest retry budget.
func DefaultConfig() Config {
	return Config{
		Provider:   "anthropic",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv overlays STUDYLOOP_* environment variables on the
// defaults. Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overlay := func(name string, dst *string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	overlay("STUDYLOOP_LLM_PROVIDER", &cfg.Provider)
	overlay("STUDYLOOP_ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey)
	overlay("STUDYLOOP_ANTHROPIC_MODEL", &cfg.Anthropic.Model)
	overlay("STUDYLOOP_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	overlay("STUDYLOOP_OPENAI_MODEL", &cfg.OpenAI.Model)
	overlay("STUDYLOOP_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	overlay("STUDYLOOP_GEMINI_API_KEY", &cfg.Gemini.APIKey)
	overlay("STUDYLOOP_GEMINI_MODEL", &cfg.Gemini.Model)
	overlay("STUDYLOOP_OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey)
	overlay("STUDYLOOP_OPENROUTER_MODEL", &cfg.OpenRouter.Model)

	return cfg
}

// DiscoverConfig probes the conventional provider key variables and
// builds a Config for the first one present. Probe order is Gemini,
// OpenAI, Anthropic, then OpenRouter. The second return is false when
// no key is set anywhere.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		envVar   string
		provider string
		keyDst   func(*Config) *string
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
		{"OPENROUTER_API_KEY", "openrouter", func(c *Config) *string { return &c.OpenRouter.APIKey }},
	}

	for _, p := range probes {
		key := os.Getenv(p.envVar)
		if key == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = p.provider
		*p.keyDst(&cfg) = key
		return cfg, true
	}
	return Config{}, false
}

// Validate checks that the selected provider has the credentials it
// needs. The mock provider never needs a key.
func (c Config) Validate() error {
	keys := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}

	if c.Provider == "mock" {
		return nil
	}
	key, known := keys[c.Provider]
	if !known {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("STUDYLOOP_%s_API_KEY is required for the %s provider",
			strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
