// Package exercisegen produces practice exercises for a grammar point by
// asking an LLM for a structured batch and validating it before use.
package exercisegen

import (
	"context"

	"github.com/jiahui/grampoint/internal/exercise"
)

const (
	// MinCount and MaxCount bound how many exercises one request may ask
	// for. Input outside the range is clamped, not rejected.
	MinCount = 1
	MaxCount = 10

	// DefaultCount is used when the caller does not specify a count.
	DefaultCount = 5
)

// GenerateInput describes one batch request.
type GenerateInput struct {
	// GrammarPoint is the grammar point every exercise must practice.
	GrammarPoint string

	// Count is the requested batch size, clamped to [MinCount, MaxCount].
	// Zero means DefaultCount.
	Count int
}

// ClampedCount returns the effective batch size.
func (in GenerateInput) ClampedCount() int {
	switch {
	case in.Count == 0:
		return DefaultCount
	case in.Count < MinCount:
		return MinCount
	case in.Count > MaxCount:
		return MaxCount
	default:
		return in.Count
	}
}

// Generator produces a validated batch of exercises.
type Generator interface {
	Generate(ctx context.Context, in GenerateInput) ([]*exercise.Exercise, error)
}
