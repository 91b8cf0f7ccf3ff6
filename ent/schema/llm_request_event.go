package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one row per LLM API call. The table backs the
// `llm list`, `llm view` and `llm stats` commands.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Backend that served the call: anthropic, openai, gemini, openrouter"),
		field.String("model").
			Comment("Model that actually answered"),
		field.String("purpose").
			Comment("Caller-supplied label such as swot or swot-evolution"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock duration of the call"),
		field.Bool("success"),
		field.String("error_message").
			Default("").
			Comment("Set only when success is false"),
		field.Text("request_body").
			Default("").
			Comment("Human-readable rendering of the full prompt"),
		field.Text("response_body").
			Default("").
			Comment("Raw content returned by the model"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
