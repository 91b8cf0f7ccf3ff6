package llm

import "testing"

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, geminiAliases); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	// Exercise the shape the SWOT report schema actually uses: an
	// object of arrays of objects with required string fields.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strengths": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"insight":     map[string]any{"type": "string"},
						"explanation": map[string]any{"type": "string"},
					},
					"required": []any{"insight", "explanation"},
				},
			},
			"signal": map[string]any{"type": "string", "enum": []any{"success", "fail", "neutral"}},
		},
		"required": []any{"strengths"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("root type = %s, want OBJECT", schema.Type)
	}
	strengths := schema.Properties["strengths"]
	if strengths == nil || strengths.Type != "ARRAY" {
		t.Fatalf("strengths = %+v, want ARRAY", strengths)
	}
	entry := strengths.Items
	if entry == nil || entry.Type != "OBJECT" {
		t.Fatalf("strengths items = %+v, want OBJECT", entry)
	}
	if entry.Properties["insight"].Type != "STRING" {
		t.Errorf("insight type = %s, want STRING", entry.Properties["insight"].Type)
	}
	if len(entry.Required) != 2 {
		t.Errorf("entry required = %v, want 2 fields", entry.Required)
	}
	if len(schema.Properties["signal"].Enum) != 3 {
		t.Errorf("enum = %v, want 3 values", schema.Properties["signal"].Enum)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "strengths" {
		t.Errorf("root required = %v", schema.Required)
	}
}
