package session

import (
	"context"
	"errors"
	"testing"

	"github.com/jiahui/grampoint/internal/exercise"
	"github.com/jiahui/grampoint/internal/grader"
)

func mustExercise(t *testing.T, kind exercise.Kind, prompt, answer string, options []string) *exercise.Exercise {
	t.Helper()
	ex, err := exercise.New(kind, prompt, answer, options)
	if err != nil {
		t.Fatalf("exercise.New: %v", err)
	}
	return ex
}

func mixedBatch(t *testing.T) []*exercise.Exercise {
	t.Helper()
	return []*exercise.Exercise{
		mustExercise(t, exercise.MultipleChoice, "She ____ to Paris twice.", "B", []string{"A. went", "B. has been"}),
		mustExercise(t, exercise.FillBlank, "By then the film ____.", "had started", nil),
		mustExercise(t, exercise.FreeResponse, "Write a sentence with the present perfect.", "I have seen it.", nil),
	}
}

func TestNewRejectsEmptyBatch(t *testing.T) {
	if _, err := New("present perfect", nil, grader.NewMockGrader()); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("New = %v, want ErrEmptyBatch", err)
	}
}

func TestNavigationClamps(t *testing.T) {
	s, err := New("present perfect", mixedBatch(t), grader.NewMockGrader())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Retreat() {
		t.Error("Retreat at first item should not move")
	}
	if !s.Advance() || !s.Advance() {
		t.Fatal("Advance should move through the batch")
	}
	if s.Advance() {
		t.Error("Advance at last item should not move")
	}
	if _, i := s.Current(); i != 2 {
		t.Errorf("cursor = %d, want 2", i)
	}
	if !s.Retreat() {
		t.Error("Retreat from last item should move")
	}
	if _, i := s.Current(); i != 1 {
		t.Errorf("cursor = %d, want 1", i)
	}
}

func TestStatusTransitions(t *testing.T) {
	s, err := New("present perfect", mixedBatch(t), grader.NewMockGrader())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Status() != StatusNotStarted {
		t.Errorf("initial status = %v, want not_started", s.Status())
	}
	s.SetCurrentAnswer("B")
	if s.Status() != StatusInProgress {
		t.Errorf("status after answer = %v, want in_progress", s.Status())
	}
}

func TestGradeRefusesUnansweredItems(t *testing.T) {
	s, err := New("present perfect", mixedBatch(t), grader.NewMockGrader())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.SetCurrentAnswer("B")

	if _, err := s.Grade(context.Background()); !errors.Is(err, ErrNotAllAnswered) {
		t.Fatalf("Grade = %v, want ErrNotAllAnswered", err)
	}
	if s.Status() != StatusInProgress {
		t.Errorf("status = %v, want in_progress after refused grade", s.Status())
	}
}

func TestGradeBlankAnswerFailsGate(t *testing.T) {
	s, err := New("present perfect", mixedBatch(t), grader.NewMockGrader())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.SetCurrentAnswer("B")
	s.Advance()
	s.SetCurrentAnswer("   ")
	s.Advance()
	s.SetCurrentAnswer("I have seen it.")

	if _, err := s.Grade(context.Background()); !errors.Is(err, ErrNotAllAnswered) {
		t.Fatalf("Grade = %v, want ErrNotAllAnswered for blank answer", err)
	}
}

func answerAll(s *Session, answers ...string) {
	for i, a := range answers {
		s.SetCurrentAnswer(a)
		if i < len(answers)-1 {
			s.Advance()
		}
	}
}

func TestGradeMixedBatch(t *testing.T) {
	g := grader.NewMockGrader().
		AddCorrection(true, "Good use of the tense.")
	s, err := New("present perfect", mixedBatch(t), g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	answerAll(s, "B", "has started", "I have visited Rome twice.")

	summary, err := s.Grade(context.Background())
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	if summary.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", summary.TotalCount)
	}
	// MC correct, fill-blank wrong ("has started" vs "had started"),
	// free response judged correct by the collaborator.
	if summary.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", summary.CorrectCount)
	}
	if len(summary.Incorrect) != 1 || summary.Incorrect[0].Kind != exercise.FillBlank {
		t.Errorf("Incorrect = %+v, want the fill-blank item", summary.Incorrect)
	}
	if s.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed", s.Status())
	}
	if got := s.Summary(); got != summary {
		t.Error("Summary() should return the grading result")
	}
}

func TestGradeIncorrectItemsGetExplanations(t *testing.T) {
	g := grader.NewMockGrader().
		AddExplanation("The past perfect marks the earlier of two past events.")
	s, err := New("past perfect", []*exercise.Exercise{
		mustExercise(t, exercise.FillBlank, "By then the film ____.", "had started", nil),
	}, g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	answerAll(s, "started")

	summary, err := s.Grade(context.Background())
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}

	if len(summary.Incorrect) != 1 {
		t.Fatalf("expected 1 incorrect item, got %d", len(summary.Incorrect))
	}
	if summary.Incorrect[0].Explanation != "The past perfect marks the earlier of two past events." {
		t.Errorf("explanation = %q", summary.Incorrect[0].Explanation)
	}
	if len(g.ExplainCalls) != 1 {
		t.Errorf("ExplainCalls = %d, want 1", len(g.ExplainCalls))
	}
}

func TestGradeCorrectionFailureFallsBack(t *testing.T) {
	g := grader.NewMockGrader().
		AddCorrectionError(errors.New("model unreachable"))
	s, err := New("conditionals", []*exercise.Exercise{
		mustExercise(t, exercise.FreeResponse, "Write a first conditional.", "If it rains, we will stay home.", nil),
	}, g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	answerAll(s, "If it rains we stay home.")

	summary, err := s.Grade(context.Background())
	if err != nil {
		t.Fatalf("Grade should not fail on collaborator error: %v", err)
	}

	if len(summary.Incorrect) != 1 {
		t.Fatalf("expected 1 incorrect item, got %d", len(summary.Incorrect))
	}
	if summary.Incorrect[0].Explanation != grader.FallbackCorrectionExplanation {
		t.Errorf("explanation = %q, want correction fallback", summary.Incorrect[0].Explanation)
	}
	// The fallback explanation is already attached, so no Explain call.
	if len(g.ExplainCalls) != 0 {
		t.Errorf("ExplainCalls = %d, want 0", len(g.ExplainCalls))
	}
}

func TestGradeExplanationFailureFallsBack(t *testing.T) {
	g := grader.NewMockGrader().
		AddExplanationError(errors.New("model unreachable"))
	s, err := New("articles", []*exercise.Exercise{
		mustExercise(t, exercise.FillBlank, "I saw ____ owl.", "an", nil),
	}, g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	answerAll(s, "a")

	summary, err := s.Grade(context.Background())
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if summary.Incorrect[0].Explanation != grader.FallbackExplanation {
		t.Errorf("explanation = %q, want fallback", summary.Incorrect[0].Explanation)
	}
}

func TestGradeEmptyExplanationFallsBack(t *testing.T) {
	g := grader.NewMockGrader().AddExplanation("")
	s, err := New("articles", []*exercise.Exercise{
		mustExercise(t, exercise.FillBlank, "I saw ____ owl.", "an", nil),
	}, g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	answerAll(s, "a")

	summary, err := s.Grade(context.Background())
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if summary.Incorrect[0].Explanation != grader.FallbackExplanation {
		t.Errorf("explanation = %q, want fallback", summary.Incorrect[0].Explanation)
	}
}

func TestGradeIsIdempotent(t *testing.T) {
	g := grader.NewMockGrader().
		AddCorrection(false, "Missing auxiliary verb.")
	s, err := New("questions", []*exercise.Exercise{
		mustExercise(t, exercise.FreeResponse, "Turn this into a question.", "Does she like tea?", nil),
	}, g)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	answerAll(s, "She likes tea?")

	first, err := s.Grade(context.Background())
	if err != nil {
		t.Fatalf("first Grade: %v", err)
	}
	second, err := s.Grade(context.Background())
	if err != nil {
		t.Fatalf("second Grade: %v", err)
	}

	if len(g.CorrectCalls) != 1 {
		t.Errorf("CorrectCalls = %d, want 1 (verdicts are not re-judged)", len(g.CorrectCalls))
	}
	if second.CorrectCount != first.CorrectCount || second.TotalCount != first.TotalCount {
		t.Errorf("second summary %+v differs from first %+v", second, first)
	}
	if second.Incorrect[0].Explanation != "Missing auxiliary verb." {
		t.Errorf("explanation changed on re-grade: %q", second.Incorrect[0].Explanation)
	}
}

// blockingGrader parks Correct until released, so a test can observe the
// session mid-grading.
type blockingGrader struct {
	entered  chan struct{}
	release  chan struct{}
	delegate grader.Grader
}

func (b *blockingGrader) Correct(ctx context.Context, req grader.CorrectionRequest) (*grader.CorrectionResult, error) {
	b.entered <- struct{}{}
	<-b.release
	return b.delegate.Correct(ctx, req)
}

func (b *blockingGrader) Explain(ctx context.Context, req grader.ExplainRequest) (string, error) {
	return b.delegate.Explain(ctx, req)
}

func TestGradeWhileGradingReturnsBusy(t *testing.T) {
	bg := &blockingGrader{
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
		delegate: grader.NewMockGrader().AddCorrection(true, ""),
	}
	s, err := New("passives", []*exercise.Exercise{
		mustExercise(t, exercise.FreeResponse, "Rewrite in the passive.", "The cake was eaten.", nil),
	}, bg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	answerAll(s, "The cake was eaten by them.")

	done := make(chan error, 1)
	go func() {
		_, err := s.Grade(context.Background())
		done <- err
	}()

	<-bg.entered
	if s.Status() != StatusGrading {
		t.Errorf("status = %v, want grading", s.Status())
	}
	if _, err := s.Grade(context.Background()); !errors.Is(err, ErrGradingInProgress) {
		t.Errorf("concurrent Grade = %v, want ErrGradingInProgress", err)
	}
	close(bg.release)

	if err := <-done; err != nil {
		t.Fatalf("first Grade: %v", err)
	}
	if s.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed", s.Status())
	}
}

func TestSummaryAllCorrect(t *testing.T) {
	s := &Summary{CorrectCount: 3, TotalCount: 3}
	if !s.AllCorrect() {
		t.Error("3/3 should be a clean pass")
	}
	if (&Summary{}).AllCorrect() {
		t.Error("empty summary is not a clean pass")
	}
	if (&Summary{CorrectCount: 2, TotalCount: 3}).AllCorrect() {
		t.Error("2/3 is not a clean pass")
	}
}
