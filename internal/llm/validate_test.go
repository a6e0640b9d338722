package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func verdictSchema() *Schema {
	return &Schema{
		Name: "test-verdict",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"is_correct":  map[string]any{"type": "boolean"},
				"explanation": map[string]any{"type": "string"},
			},
			"required":             []any{"is_correct", "explanation"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"is_correct": true, "explanation": "fine"}`)
	if err := validateResponse(verdictSchema(), raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	raw := json.RawMessage(`{"is_correct": true}`)
	err := validateResponse(verdictSchema(), raw)

	var ir *ErrInvalidResponse
	if !errors.As(err, &ir) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"is_correct": tru`)
	err := validateResponse(verdictSchema(), raw)

	var ir *ErrInvalidResponse
	if !errors.As(err, &ir) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}
