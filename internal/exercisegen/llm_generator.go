package exercisegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jiahui/grampoint/internal/exercise"
	"github.com/jiahui/grampoint/internal/llm"
)

const (
	generationMaxTokens   = 4096
	generationTemperature = 0.8

	// maxAttempts bounds regeneration after a retryable validation
	// failure.
	maxAttempts = 2
)

// LLMGenerator implements Generator on top of an LLM provider.
type LLMGenerator struct {
	provider   llm.Provider
	validators []Validator
}

// NewLLMGenerator creates a generator with the default validator chain.
func NewLLMGenerator(provider llm.Provider) *LLMGenerator {
	return &LLMGenerator{
		provider:   provider,
		validators: defaultValidators(),
	}
}

// Generate requests a batch, decodes it, and runs the validator chain.
// A retryable validation failure triggers one regeneration; anything else
// fails the call.
func (g *LLMGenerator) Generate(ctx context.Context, in GenerateInput) ([]*exercise.Exercise, error) {
	ctx = llm.WithPurpose(ctx, "exercise-gen")

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		batch, err := g.generateOnce(ctx, in)
		if err == nil {
			return batch, nil
		}
		lastErr = err

		var vErr *ValidationError
		if !errors.As(err, &vErr) || !vErr.Retryable {
			return nil, err
		}
		if attempt < maxAttempts {
			fmt.Fprintf(os.Stderr, "warning: regenerating batch after validation failure: %v\n", vErr)
		}
	}
	return nil, fmt.Errorf("generation failed after %d attempts: %w", maxAttempts, lastErr)
}

func (g *LLMGenerator) generateOnce(ctx context.Context, in GenerateInput) ([]*exercise.Exercise, error) {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: generationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: generationUserMessage(in)},
		},
		Schema:      batchSchema(),
		MaxTokens:   generationMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generation request: %w", err)
	}

	batch, err := decodeBatch(resp.Content)
	if err != nil {
		return nil, err
	}

	if vErr := runValidators(g.validators, batch, in); vErr != nil {
		return nil, vErr
	}
	return batch, nil
}

// decodeBatch maps the response JSON onto exercises. Decoding failures are
// retryable validation errors: the schema guarantees shape, not substance.
func decodeBatch(content json.RawMessage) ([]*exercise.Exercise, error) {
	var payload struct {
		Exercises []struct {
			Kind    string   `json:"kind"`
			Prompt  string   `json:"prompt"`
			Answer  string   `json:"answer"`
			Options []string `json:"options"`
		} `json:"exercises"`
	}
	if err := json.Unmarshal(content, &payload); err != nil {
		return nil, &ValidationError{
			Validator: "decode",
			Message:   fmt.Sprintf("unmarshal batch: %v", err),
			Retryable: true,
		}
	}

	batch := make([]*exercise.Exercise, 0, len(payload.Exercises))
	for _, item := range payload.Exercises {
		batch = append(batch, &exercise.Exercise{
			Kind:    exercise.Kind(item.Kind),
			Prompt:  item.Prompt,
			Answer:  item.Answer,
			Options: item.Options,
		})
	}
	return batch, nil
}
