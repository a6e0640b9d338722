// Package app wires the generator, session, grader, and weak-point store
// into the interactive practice flow the CLI runs.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jiahui/grampoint/internal/exercise"
	"github.com/jiahui/grampoint/internal/exercisegen"
	"github.com/jiahui/grampoint/internal/grader"
	"github.com/jiahui/grampoint/internal/session"
	"github.com/jiahui/grampoint/internal/weakpoints"
)

// App runs practice rounds.
type App struct {
	Generator  exercisegen.Generator
	Grader     grader.Grader
	WeakPoints *weakpoints.Store

	// In and Out carry the interactive dialog. Tests inject buffers.
	In  io.Reader
	Out io.Writer
}

// PracticeOptions configures one practice round.
type PracticeOptions struct {
	GrammarPoint string
	Count        int
}

// Practice generates a batch, walks the learner through it, grades it, and
// applies the outcome to the weak-point store. It returns the summary.
func (a *App) Practice(ctx context.Context, opts PracticeOptions) (*session.Summary, error) {
	batch, err := a.Generator.Generate(ctx, exercisegen.GenerateInput{
		GrammarPoint: opts.GrammarPoint,
		Count:        opts.Count,
	})
	if err != nil {
		return nil, fmt.Errorf("generate exercises: %w", err)
	}

	s, err := session.New(opts.GrammarPoint, batch, a.Grader)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.Out, "Practicing %q — %d exercise(s). Type your answer, or 'back' to revisit the previous one.\n\n", opts.GrammarPoint, s.Len())

	if err := a.collectAnswers(s); err != nil {
		return nil, err
	}

	fmt.Fprintln(a.Out, "\nGrading...")
	summary, err := s.Grade(ctx)
	if err != nil {
		return nil, fmt.Errorf("grade session: %w", err)
	}

	a.printSummary(summary)
	ApplyResults(a.WeakPoints, opts.GrammarPoint, summary)
	return summary, nil
}

// collectAnswers loops until every item has a non-empty answer. "back"
// moves the cursor to the previous item; an answered item shows its
// current answer when revisited.
func (a *App) collectAnswers(s *session.Session) error {
	scanner := bufio.NewScanner(a.In)

	// revisit keeps an already-answered item on screen after "back" so the
	// learner can replace its answer.
	revisit := false

	for {
		if !revisit && s.AllAnswered() {
			return nil
		}

		item, i := s.Current()
		if item.Answered() && !revisit {
			// Already answered; move on to the next open item.
			s.Advance()
			continue
		}
		revisit = false

		a.printExercise(item, i, s.Len())
		fmt.Fprint(a.Out, "> ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			return fmt.Errorf("input closed before all exercises were answered")
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.EqualFold(line, "back"):
			if s.Retreat() {
				revisit = true
			} else {
				fmt.Fprintln(a.Out, "Already at the first exercise.")
			}
		case line == "":
			fmt.Fprintln(a.Out, "An empty answer cannot be submitted.")
		default:
			s.SetCurrentAnswer(line)
			s.Advance()
		}
	}
}

func (a *App) printExercise(item *exercise.Exercise, i, total int) {
	fmt.Fprintf(a.Out, "[%d/%d] %s\n", i+1, total, item.Prompt)
	for _, opt := range item.Options {
		fmt.Fprintf(a.Out, "  %s\n", opt)
	}
	if item.UserAnswer != nil {
		fmt.Fprintf(a.Out, "(current answer: %s)\n", *item.UserAnswer)
	}
}

func (a *App) printSummary(summary *session.Summary) {
	fmt.Fprintf(a.Out, "\nScore: %d/%d\n", summary.CorrectCount, summary.TotalCount)
	if summary.AllCorrect() {
		fmt.Fprintln(a.Out, "Clean pass — well done.")
		return
	}
	for _, item := range summary.Incorrect {
		fmt.Fprintf(a.Out, "\n✗ %s\n", item.Prompt)
		if item.UserAnswer != nil {
			fmt.Fprintf(a.Out, "  Your answer:    %s\n", *item.UserAnswer)
		}
		fmt.Fprintf(a.Out, "  Correct answer: %s\n", item.Answer)
		if item.Explanation != "" {
			fmt.Fprintf(a.Out, "  %s\n", item.Explanation)
		}
	}
}

// ApplyResults feeds a graded summary into the weak-point store: one miss
// per incorrect item, and a clear of the grammar point on a clean pass.
func ApplyResults(store *weakpoints.Store, grammarPoint string, summary *session.Summary) {
	if store == nil || summary == nil {
		return
	}

	if summary.AllCorrect() {
		store.Clear(grammarPoint)
		return
	}
	for range summary.Incorrect {
		store.RecordMiss(grammarPoint)
	}
}
