package llm

import (
	"context"
	"testing"
)

// clearKeyEnv blanks every env var the discovery probe reads so tests
// are deterministic regardless of the host environment.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"STUDYLOOP_LLM_PROVIDER",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	// OpenAI outranks Anthropic in the probe order.
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-openai" {
		t.Errorf("discovered %s/%s", cfg.Provider, cfg.OpenAI.APIKey)
	}
}

func TestDiscoverConfigNoKeys(t *testing.T) {
	clearKeyEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("discovery should fail with no keys set")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "cohere"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewProviderFromEnvExplicitProvider(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("STUDYLOOP_LLM_PROVIDER", "mock")

	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if p == nil {
		t.Fatal("expected a provider")
	}
}

func TestNewProviderFromEnvExplicitMissingKey(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("STUDYLOOP_LLM_PROVIDER", "anthropic")
	t.Setenv("STUDYLOOP_ANTHROPIC_API_KEY", "")

	if _, err := NewProviderFromEnv(context.Background(), nil); err == nil {
		t.Fatal("expected a validation error without an API key")
	}
}

func TestNewProviderFromEnvNoConfiguration(t *testing.T) {
	clearKeyEnv(t)
	if _, err := NewProviderFromEnv(context.Background(), nil); err == nil {
		t.Fatal("expected an error with nothing configured")
	}
}
