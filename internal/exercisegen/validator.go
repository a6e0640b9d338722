package exercisegen

import (
	"fmt"

	"github.com/jiahui/grampoint/internal/exercise"
)

// ValidationError describes why a generated batch was rejected.
type ValidationError struct {
	// Validator names the check that failed.
	Validator string

	// Message is a human-readable description.
	Message string

	// Retryable indicates a fresh generation attempt may succeed.
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Validator, e.Message)
}

// Validator checks one property of a generated batch. A nil return means
// the batch passed this check.
type Validator interface {
	Name() string
	Validate(batch []*exercise.Exercise, in GenerateInput) *ValidationError
}

// defaultValidators is the chain every generated batch must pass.
func defaultValidators() []Validator {
	return []Validator{
		batchSizeValidator{},
		structuralValidator{},
	}
}

// runValidators applies the chain in order and returns the first failure.
func runValidators(validators []Validator, batch []*exercise.Exercise, in GenerateInput) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(batch, in); err != nil {
			return err
		}
	}
	return nil
}
