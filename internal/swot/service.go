package swot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abhinav-rk/studyloop/internal/insight"
	"github.com/abhinav-rk/studyloop/internal/llm"
)

// ServiceConfig holds generation settings.
type ServiceConfig struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultServiceConfig returns sensible defaults.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		MaxTokens:   1024,
		Temperature: 0.5,
		Timeout:     30 * time.Second,
	}
}

// Service generates SWOT narratives.
type Service struct {
	provider llm.Provider
	cfg      ServiceConfig
}

// NewService creates a SWOT service.
func NewService(provider llm.Provider, cfg ServiceConfig) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate expands insights into a SWOT narrative. evolution may be ""
// on the first pass. The second return value reports whether the
// document came from the live service; on any failure the static
// fallback is returned with false, never an error.
func (s *Service) Generate(ctx context.Context, insights []insight.Insight, evolution string) (*Document, bool) {
	doc, err := s.generate(ctx, insights, evolution)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: SWOT narrative unavailable, using fallback: %v\n", err)
		return Fallback(), false
	}
	return doc, true
}

func (s *Service) generate(ctx context.Context, insights []insight.Insight, evolution string) (*Document, error) {
	purpose := "swot"
	if evolution != "" {
		purpose = "swot-evolution"
	}
	ctx = llm.WithPurpose(ctx, purpose)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	userMsg, err := buildUserMessage(insights, evolution)
	if err != nil {
		return nil, fmt.Errorf("build SWOT prompt: %w", err)
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		Schema:      ReportSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("SWOT generation failed: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(resp.Content, &doc); err != nil {
		return nil, fmt.Errorf("parse SWOT response: %w", err)
	}

	// The schema validates on the provider side too, but this boundary
	// is untrusted: check the shape before accepting it.
	if !doc.wellFormed() {
		return nil, fmt.Errorf("SWOT response missing required entries")
	}

	return &doc, nil
}
