package exercise

import (
	"fmt"
	"strings"
)

// Kind identifies how a learner answers an exercise.
type Kind string

const (
	// MultipleChoice presents lettered options; the learner picks one.
	MultipleChoice Kind = "multiple_choice"

	// FillBlank asks the learner to type the missing words. Multiple
	// blanks are encoded in the answer as ";"-separated segments, one per
	// blank, order-significant.
	FillBlank Kind = "fill_blank"

	// FreeResponse is an open-ended item. It cannot be graded locally;
	// judgment is delegated to the grading collaborator.
	FreeResponse Kind = "free_response"
)

// Verdict is the grading outcome for a single exercise.
// The zero value is VerdictUnknown, so an ungraded item can never read as
// a failure by accident.
type Verdict int

const (
	VerdictUnknown Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

// String returns a short label for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Decided reports whether the verdict has been determined.
func (v Verdict) Decided() bool {
	return v != VerdictUnknown
}

// Exercise is a single practice question.
type Exercise struct {
	// Kind determines the answer format and grading rule.
	Kind Kind

	// Prompt is the question text shown to the learner.
	Prompt string

	// Answer is the reference answer. For FillBlank it may hold several
	// ";"-separated segments, one per blank.
	Answer string

	// Options holds the lettered choices. Non-empty iff Kind is
	// MultipleChoice. Each option's first character is its selectable
	// token (e.g. "A. has gone").
	Options []string

	// UserAnswer is the learner's current answer. nil means unanswered;
	// an empty string means answered-but-empty, which still fails the
	// submission gate.
	UserAnswer *string

	// Verdict is the grading outcome. Stays VerdictUnknown for
	// FreeResponse items until the collaborator decides.
	Verdict Verdict

	// Explanation is filled lazily for items graded incorrect.
	Explanation string
}

// New constructs an Exercise, rejecting payloads that cannot be practiced:
// empty prompt or answer, or an options list inconsistent with the kind.
func New(kind Kind, prompt, answer string, options []string) (*Exercise, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("exercise prompt is empty")
	}
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("exercise answer is empty")
	}
	switch kind {
	case MultipleChoice:
		if len(options) == 0 {
			return nil, fmt.Errorf("multiple-choice exercise has no options")
		}
	case FillBlank, FreeResponse:
		if len(options) != 0 {
			return nil, fmt.Errorf("%s exercise must not carry options", kind)
		}
	default:
		return nil, fmt.Errorf("unknown exercise kind %q", kind)
	}

	return &Exercise{
		Kind:    kind,
		Prompt:  prompt,
		Answer:  answer,
		Options: options,
	}, nil
}

// SetAnswer records the learner's answer. No validation: the submission
// gate (Session.AllAnswered) decides whether the session may be graded.
func (e *Exercise) SetAnswer(text string) {
	e.UserAnswer = &text
}

// Answered reports whether the item carries a non-nil, non-empty answer.
func (e *Exercise) Answered() bool {
	return e.UserAnswer != nil && strings.TrimSpace(*e.UserAnswer) != ""
}

// Grade grades the exercise locally and returns the resulting verdict.
//
// MultipleChoice compares the trimmed, case-folded answer tokens.
// FillBlank splits both answers on ";" and requires every trimmed segment
// to match case-insensitively; a segment-count mismatch is incorrect.
// FreeResponse is left undecided; the grading collaborator owns it.
// A nil UserAnswer grades incorrect for the objective kinds.
func (e *Exercise) Grade() Verdict {
	if e.Kind == FreeResponse {
		return e.Verdict
	}

	if e.UserAnswer == nil {
		e.Verdict = VerdictIncorrect
		return e.Verdict
	}

	switch e.Kind {
	case MultipleChoice:
		if tokensEqual(*e.UserAnswer, e.Answer) {
			e.Verdict = VerdictCorrect
		} else {
			e.Verdict = VerdictIncorrect
		}
	case FillBlank:
		if blanksEqual(*e.UserAnswer, e.Answer) {
			e.Verdict = VerdictCorrect
		} else {
			e.Verdict = VerdictIncorrect
		}
	}
	return e.Verdict
}

// tokensEqual compares two answer tokens ignoring surrounding whitespace
// and case.
func tokensEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// blanksEqual compares ";"-delimited blank answers segment by segment.
func blanksEqual(user, reference string) bool {
	userSegs := strings.Split(user, ";")
	refSegs := strings.Split(reference, ";")
	if len(userSegs) != len(refSegs) {
		return false
	}
	for i := range refSegs {
		if !tokensEqual(userSegs[i], refSegs[i]) {
			return false
		}
	}
	return true
}
