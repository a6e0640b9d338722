package exercisegen

import "github.com/jiahui/grampoint/internal/llm"

// batchSchema constrains the generation reply to a list of exercises.
func batchSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "exercise-batch",
		Description: "A batch of grammar practice exercises",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"exercises": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"kind": map[string]any{
								"type": "string",
								"enum": []any{"multiple_choice", "fill_blank", "free_response"},
							},
							"prompt": map[string]any{
								"type":        "string",
								"description": "The question text shown to the learner",
							},
							"answer": map[string]any{
								"type":        "string",
								"description": "The reference answer; for fill_blank with several blanks, segments separated by ';'",
							},
							"options": map[string]any{
								"type":        "array",
								"items":       map[string]any{"type": "string"},
								"description": "Lettered choices like 'A. has gone'; only for multiple_choice",
							},
						},
						"required":             []any{"kind", "prompt", "answer"},
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"exercises"},
			"additionalProperties": false,
		},
	}
}
