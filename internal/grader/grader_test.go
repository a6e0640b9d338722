package grader

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jiahui/grampoint/internal/llm"
)

func TestCorrectParsesVerdict(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct": false, "explanation": "The past perfect is required here."}`),
	})
	g := NewLLMGrader(provider)

	result, err := g.Correct(context.Background(), CorrectionRequest{
		GrammarPoint: "past perfect",
		Prompt:       "Rewrite the sentence using the past perfect.",
		Answer:       "She had already left when I arrived.",
		UserAnswer:   "She already left when I arrived.",
	})
	if err != nil {
		t.Fatalf("Correct failed: %v", err)
	}
	if result.IsCorrect {
		t.Error("expected incorrect verdict")
	}
	if result.Explanation != "The past perfect is required here." {
		t.Errorf("unexpected explanation: %q", result.Explanation)
	}
}

func TestCorrectRequestCarriesSchema(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct": true, "explanation": "Well done."}`),
	})
	g := NewLLMGrader(provider)

	if _, err := g.Correct(context.Background(), CorrectionRequest{
		GrammarPoint: "present perfect",
		Prompt:       "prompt",
		Answer:       "answer",
		UserAnswer:   "user answer",
	}); err != nil {
		t.Fatalf("Correct failed: %v", err)
	}

	if len(provider.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(provider.Calls))
	}
	req := provider.Calls[0]
	if req.Schema == nil || req.Schema.Name != "answer-correction" {
		t.Errorf("expected answer-correction schema, got %+v", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "present perfect") {
		t.Error("user message missing grammar point")
	}
	if !strings.Contains(req.Messages[0].Content, "user answer") {
		t.Error("user message missing learner answer")
	}
}

func TestCorrectPropagatesProviderError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	g := NewLLMGrader(provider)

	_, err := g.Correct(context.Background(), CorrectionRequest{
		GrammarPoint: "articles",
		Prompt:       "p",
		Answer:       "a",
		UserAnswer:   "u",
	})
	if err == nil {
		t.Fatal("expected error from unavailable provider")
	}
}

func TestExplainAccumulatesFragments(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Fragments: []string{"You used the simple past, ", "but the action continues ", "into the present."},
	})
	g := NewLLMGrader(provider)

	var streamed strings.Builder
	g.OnExplanationFragment = func(f string) { streamed.WriteString(f) }

	text, err := g.Explain(context.Background(), ExplainRequest{
		GrammarPoint: "present perfect",
		Prompt:       "p",
		Answer:       "a",
		UserAnswer:   "u",
	})
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	want := "You used the simple past, but the action continues into the present."
	if text != want {
		t.Errorf("got %q, want %q", text, want)
	}
	if streamed.String() != want {
		t.Errorf("streamed %q, want %q", streamed.String(), want)
	}
}

func TestExplainEmptyReplyIsError(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Fragments: []string{"   ", "\n"},
	})
	g := NewLLMGrader(provider)

	if _, err := g.Explain(context.Background(), ExplainRequest{
		GrammarPoint: "gerunds",
		Prompt:       "p",
		Answer:       "a",
	}); err == nil {
		t.Fatal("expected error for empty explanation")
	}
}

func TestExplainUserMessageMentionsBlankAnswer(t *testing.T) {
	msg := explainUserMessage(ExplainRequest{
		GrammarPoint: "conditionals",
		Prompt:       "Complete the sentence.",
		Answer:       "If it rains, we will stay home.",
		UserAnswer:   "  ",
	})
	if !strings.Contains(msg, "left this blank") {
		t.Errorf("blank answer not flagged in message: %q", msg)
	}
}
