package exercisegen

import (
	"fmt"
	"strings"

	"github.com/jiahui/grampoint/internal/exercise"
)

// batchSizeValidator rejects empty batches. A short batch is tolerated;
// an empty one means the model produced nothing usable.
type batchSizeValidator struct{}

func (batchSizeValidator) Name() string { return "batch-size" }

func (batchSizeValidator) Validate(batch []*exercise.Exercise, _ GenerateInput) *ValidationError {
	if len(batch) == 0 {
		return &ValidationError{
			Validator: "batch-size",
			Message:   "batch is empty",
			Retryable: true,
		}
	}
	return nil
}

// structuralValidator checks each exercise is internally consistent:
// non-blank prompt and answer, options present exactly for multiple
// choice, and a multiple-choice answer that names one of the options.
type structuralValidator struct{}

func (structuralValidator) Name() string { return "structural" }

func (structuralValidator) Validate(batch []*exercise.Exercise, _ GenerateInput) *ValidationError {
	for i, ex := range batch {
		if err := checkExercise(ex); err != nil {
			return &ValidationError{
				Validator: "structural",
				Message:   fmt.Sprintf("exercise %d: %v", i+1, err),
				Retryable: true,
			}
		}
	}
	return nil
}

func checkExercise(ex *exercise.Exercise) error {
	if strings.TrimSpace(ex.Prompt) == "" {
		return fmt.Errorf("prompt is blank")
	}
	if strings.TrimSpace(ex.Answer) == "" {
		return fmt.Errorf("answer is blank")
	}

	switch ex.Kind {
	case exercise.MultipleChoice:
		if len(ex.Options) < 2 {
			return fmt.Errorf("multiple choice needs at least 2 options, got %d", len(ex.Options))
		}
		if !answerMatchesOption(ex.Answer, ex.Options) {
			return fmt.Errorf("answer %q does not name an option", ex.Answer)
		}
	case exercise.FillBlank, exercise.FreeResponse:
		if len(ex.Options) != 0 {
			return fmt.Errorf("%s exercise carries options", ex.Kind)
		}
	default:
		return fmt.Errorf("unknown kind %q", ex.Kind)
	}
	return nil
}

// answerMatchesOption accepts either the option letter ("B") or the full
// option text ("B. has gone") as the reference answer.
func answerMatchesOption(answer string, options []string) bool {
	answer = strings.TrimSpace(answer)
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if strings.EqualFold(answer, opt) {
			return true
		}
		if letter, _, found := strings.Cut(opt, "."); found {
			if strings.EqualFold(answer, strings.TrimSpace(letter)) {
				return true
			}
		}
	}
	return false
}
