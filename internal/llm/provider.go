package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a single LLM backend. Callers build a Request,
// optionally with a Schema for structured output, and get back validated
// JSON. Decorators (retry, logging) wrap this same interface.
type Provider interface {
	// Generate runs one completion. With a Schema set the provider uses
	// its native structured-output mechanism and the response Content is
	// JSON matching the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a provider-neutral prompt.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Generation here is single turn in
	// practice, so this usually holds one user message.
	Messages []Message

	// Schema, when non-nil, is the JSON Schema the output must satisfy.
	// Nil means free text, returned as a JSON string.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]. Zero value means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the structured output contract.
type Schema struct {
	// Name labels the schema in kebab-case, e.g. "swot-report". It
	// doubles as the tool name for Anthropic and the schema name for
	// OpenAI.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema body.
	Definition map[string]any
}

// Response is the normalized provider output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text wrapped as a JSON string.
	Content json.RawMessage

	// Usage is the token accounting for this single call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage counts tokens consumed by one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
