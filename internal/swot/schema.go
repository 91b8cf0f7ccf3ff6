package swot

import "github.com/abhinav-rk/studyloop/internal/llm"

// entrySchema is the JSON Schema for one SWOT entry.
var entrySchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"insight":     map[string]any{"type": "string", "minLength": 1},
		"explanation": map[string]any{"type": "string", "minLength": 1},
	},
	"required": []any{"insight", "explanation"},
}

func categorySchema() map[string]any {
	return map[string]any{
		"type":     "array",
		"items":    entrySchema,
		"minItems": MinEntriesPerCategory,
	}
}

// ReportSchema constrains the LLM response to the SWOT document shape.
var ReportSchema = &llm.Schema{
	Name:        "swot-report",
	Description: "A SWOT analysis of a learner's study behavior",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strengths":     categorySchema(),
			"weaknesses":    categorySchema(),
			"opportunities": categorySchema(),
			"threats":       categorySchema(),
		},
		"required": []any{"strengths", "weaknesses", "opportunities", "threats"},
	},
}
