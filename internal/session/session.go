// Package session drives one practice round: a batch of exercises for a
// grammar point, answered item by item and graded as a whole.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/jiahui/grampoint/internal/exercise"
	"github.com/jiahui/grampoint/internal/grader"
)

// ErrGradingInProgress is returned by Grade when a grading pass is already
// running on this session.
var ErrGradingInProgress = errors.New("grading already in progress")

// ErrNotAllAnswered is returned by Grade when at least one item has no
// answer or an empty one.
var ErrNotAllAnswered = errors.New("not all exercises are answered")

// ErrEmptyBatch is returned by New for an empty exercise list.
var ErrEmptyBatch = errors.New("session needs at least one exercise")

// Status is the session lifecycle state.
type Status int

const (
	// StatusNotStarted means no answer has been recorded yet.
	StatusNotStarted Status = iota

	// StatusInProgress means at least one answer has been recorded.
	StatusInProgress

	// StatusGrading means a grading pass is running.
	StatusGrading

	// StatusCompleted means grading finished and the summary is available.
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusGrading:
		return "grading"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Session holds one practice round. Navigation is cursor-based; grading is
// a single pass over all items that resolves every verdict and attaches an
// explanation to every incorrect item before returning.
type Session struct {
	mu sync.Mutex

	id           string
	grammarPoint string
	items        []*exercise.Exercise
	cursor       int
	status       Status
	grader       grader.Grader
	summary      *Summary
}

// New creates a session over the given exercises. The batch must be
// non-empty.
func New(grammarPoint string, items []*exercise.Exercise, g grader.Grader) (*Session, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}
	return &Session{
		id:           uuid.NewString(),
		grammarPoint: grammarPoint,
		items:        items,
		grader:       g,
	}, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// GrammarPoint returns the point this session practices.
func (s *Session) GrammarPoint() string { return s.grammarPoint }

// Len returns the number of exercises.
func (s *Session) Len() int { return len(s.items) }

// Status returns the lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Current returns the exercise under the cursor and its zero-based index.
func (s *Session) Current() (*exercise.Exercise, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[s.cursor], s.cursor
}

// Item returns the exercise at index i.
func (s *Session) Item(i int) *exercise.Exercise {
	return s.items[i]
}

// Items returns the exercises in order.
func (s *Session) Items() []*exercise.Exercise {
	return s.items
}

// Advance moves the cursor forward one item. It reports whether the cursor
// moved; at the last item it stays put.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor >= len(s.items)-1 {
		return false
	}
	s.cursor++
	return true
}

// Retreat moves the cursor back one item. It reports whether the cursor
// moved; at the first item it stays put.
func (s *Session) Retreat() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// SetCurrentAnswer records the learner's answer on the item under the
// cursor and moves the session into StatusInProgress.
func (s *Session) SetCurrentAnswer(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[s.cursor].SetAnswer(text)
	if s.status == StatusNotStarted {
		s.status = StatusInProgress
	}
}

// AllAnswered reports whether every item carries a non-empty answer. This
// is the submission gate: Grade refuses until it holds.
func (s *Session) AllAnswered() bool {
	for _, item := range s.items {
		if !item.Answered() {
			return false
		}
	}
	return true
}

// Summary returns the grading summary, or nil before grading completes.
func (s *Session) Summary() *Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// Grade runs the grading pass:
//
//  1. Objective items (multiple choice, fill blank) grade locally.
//  2. Free-response items go to the grading collaborator. A collaborator
//     failure marks the item incorrect with the fixed fallback explanation
//     rather than failing the pass.
//  3. Every incorrect item without an explanation gets one fetched
//     concurrently; failures fall back to the fixed string. All fetches
//     resolve before Grade returns.
//
// Grading is idempotent: items with a decided verdict are not re-judged
// and existing explanations are kept. A second Grade call while one is
// running returns ErrGradingInProgress.
func (s *Session) Grade(ctx context.Context) (*Summary, error) {
	s.mu.Lock()
	if s.status == StatusGrading {
		s.mu.Unlock()
		return nil, ErrGradingInProgress
	}
	if !s.allAnsweredLocked() {
		s.mu.Unlock()
		return nil, ErrNotAllAnswered
	}
	s.status = StatusGrading
	s.mu.Unlock()

	for _, item := range s.items {
		s.gradeItem(ctx, item)
	}
	s.fetchExplanations(ctx)

	summary := buildSummary(s.items)

	s.mu.Lock()
	s.status = StatusCompleted
	s.summary = summary
	s.mu.Unlock()

	return summary, nil
}

func (s *Session) allAnsweredLocked() bool {
	for _, item := range s.items {
		if !item.Answered() {
			return false
		}
	}
	return true
}

// gradeItem resolves one item's verdict. Decided items are left alone.
func (s *Session) gradeItem(ctx context.Context, item *exercise.Exercise) {
	if item.Verdict.Decided() {
		return
	}

	if item.Kind != exercise.FreeResponse {
		item.Grade()
		return
	}

	result, err := s.grader.Correct(ctx, grader.CorrectionRequest{
		GrammarPoint: s.grammarPoint,
		Prompt:       item.Prompt,
		Answer:       item.Answer,
		UserAnswer:   userAnswer(item),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: correction failed, marking incorrect: %v\n", err)
		item.Verdict = exercise.VerdictIncorrect
		item.Explanation = grader.FallbackCorrectionExplanation
		return
	}

	if result.IsCorrect {
		item.Verdict = exercise.VerdictCorrect
	} else {
		item.Verdict = exercise.VerdictIncorrect
		item.Explanation = result.Explanation
	}
}

// fetchExplanations fills in missing explanations for incorrect items,
// one goroutine per item. Each item is written by exactly one goroutine.
func (s *Session) fetchExplanations(ctx context.Context) {
	var wg sync.WaitGroup
	for _, item := range s.items {
		if item.Verdict != exercise.VerdictIncorrect || item.Explanation != "" {
			continue
		}
		wg.Add(1)
		go func(item *exercise.Exercise) {
			defer wg.Done()

			text, err := s.grader.Explain(ctx, grader.ExplainRequest{
				GrammarPoint: s.grammarPoint,
				Prompt:       item.Prompt,
				Answer:       item.Answer,
				UserAnswer:   userAnswer(item),
			})
			if err != nil || text == "" {
				if err != nil {
					fmt.Fprintf(os.Stderr, "warning: explanation failed: %v\n", err)
				}
				item.Explanation = grader.FallbackExplanation
				return
			}
			item.Explanation = text
		}(item)
	}
	wg.Wait()
}

func userAnswer(item *exercise.Exercise) string {
	if item.UserAnswer == nil {
		return ""
	}
	return *item.UserAnswer
}
