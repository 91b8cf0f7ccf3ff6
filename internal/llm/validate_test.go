package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func entryListSchema() *Schema {
	return &Schema{
		Name:        "entry-list",
		Description: "A list of narrative entries",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"entries": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"insight":     map[string]any{"type": "string"},
							"explanation": map[string]any{"type": "string"},
							"weight":      map[string]any{"type": "integer", "minimum": 0},
							"kind":        map[string]any{"type": "string", "enum": []any{"strength", "weakness"}},
						},
						"required": []any{"insight", "explanation"},
					},
					"minItems": 1,
				},
			},
			"required": []any{"entries"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"entries":[{"insight":"a","explanation":"b","weight":2,"kind":"strength"}]}`, false},
		{"optional fields omitted", `{"entries":[{"insight":"a","explanation":"b"}]}`, false},
		{"missing required field", `{"entries":[{"insight":"a"}]}`, true},
		{"wrong type", `{"entries":[{"insight":"a","explanation":"b","weight":"two"}]}`, true},
		{"bad enum value", `{"entries":[{"insight":"a","explanation":"b","kind":"risk"}]}`, true},
		{"minItems violated", `{"entries":[]}`, true},
		{"missing top-level key", `{}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty payload", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(entryListSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("error type = %T, want *ErrInvalidResponse", err)
				}
				if string(inv.Content) != tt.raw {
					t.Errorf("offending content not attached: %q", inv.Content)
				}
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponseCachesCompilation(t *testing.T) {
	schema := entryListSchema()
	raw := json.RawMessage(`{"entries":[{"insight":"a","explanation":"b"}]}`)

	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := compiledSchemas.Load(schema.Name); !ok {
		t.Fatal("compiled schema not cached")
	}
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
