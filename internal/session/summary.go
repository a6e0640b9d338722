package session

import "github.com/jiahui/grampoint/internal/exercise"

// Summary is the outcome of a graded session.
type Summary struct {
	// CorrectCount is the number of items graded correct.
	CorrectCount int

	// TotalCount is the number of items in the session.
	TotalCount int

	// Incorrect holds the items graded incorrect, in presentation order.
	Incorrect []*exercise.Exercise
}

// AllCorrect reports a clean pass: every item correct, and at least one
// item present.
func (s *Summary) AllCorrect() bool {
	return s.TotalCount > 0 && s.CorrectCount == s.TotalCount
}

func buildSummary(items []*exercise.Exercise) *Summary {
	summary := &Summary{TotalCount: len(items)}
	for _, item := range items {
		switch item.Verdict {
		case exercise.VerdictCorrect:
			summary.CorrectCount++
		case exercise.VerdictIncorrect:
			summary.Incorrect = append(summary.Incorrect, item)
		}
	}
	return summary
}
