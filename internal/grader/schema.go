package grader

import "github.com/jiahui/grampoint/internal/llm"

// correctionSchema constrains the correction reply to a verdict plus a
// short explanation.
func correctionSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "answer-correction",
		Description: "Judgment of a learner's free-response answer to a grammar exercise",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"is_correct": map[string]any{
					"type":        "boolean",
					"description": "Whether the learner's answer demonstrates the grammar point acceptably",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "One or two sentences: what was wrong, or what was done well",
				},
			},
			"required":             []any{"is_correct", "explanation"},
			"additionalProperties": false,
		},
	}
}
