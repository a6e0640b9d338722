package grader

import (
	"context"
)

// Fallback strings substituted when the collaborator cannot produce a
// usable result. Grading never blocks on the model being available.
const (
	// FallbackCorrectionExplanation accompanies a free-response item the
	// collaborator failed to judge.
	FallbackCorrectionExplanation = "Automatic review was unavailable for this answer. Compare it with the reference answer above."

	// FallbackExplanation stands in for a missing explanation on an
	// incorrect item.
	FallbackExplanation = "No explanation is available right now. Review the reference answer and the grammar point it illustrates."
)

// CorrectionRequest asks the collaborator to judge a free-response answer.
type CorrectionRequest struct {
	// GrammarPoint is the point the exercise practices.
	GrammarPoint string

	// Prompt is the exercise text the learner answered.
	Prompt string

	// Answer is the reference answer.
	Answer string

	// UserAnswer is what the learner wrote.
	UserAnswer string
}

// CorrectionResult is the collaborator's judgment of a free-response answer.
type CorrectionResult struct {
	// IsCorrect reports whether the learner's answer demonstrates the
	// grammar point acceptably. Phrasing differences from the reference
	// answer are tolerated.
	IsCorrect bool

	// Explanation says what was wrong, or confirms what was right.
	Explanation string
}

// ExplainRequest asks the collaborator why an answer was wrong.
type ExplainRequest struct {
	// GrammarPoint is the point the exercise practices.
	GrammarPoint string

	// Prompt is the exercise text.
	Prompt string

	// Answer is the reference answer.
	Answer string

	// UserAnswer is the learner's (incorrect) answer. Empty when the item
	// was left blank.
	UserAnswer string
}

// Grader is the grading collaborator: it judges free-response answers and
// explains mistakes. Implementations may call a remote model; callers must
// treat every error as survivable and fall back to the fixed strings above.
type Grader interface {
	// Correct judges a free-response answer.
	Correct(ctx context.Context, req CorrectionRequest) (*CorrectionResult, error)

	// Explain produces a short explanation of why the answer was wrong.
	Explain(ctx context.Context, req ExplainRequest) (string, error)
}
