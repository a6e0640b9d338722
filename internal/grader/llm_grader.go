package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jiahui/grampoint/internal/llm"
)

const (
	correctionMaxTokens  = 512
	explanationMaxTokens = 1024
)

// LLMGrader implements Grader on top of an LLM provider.
type LLMGrader struct {
	provider llm.Provider

	// OnExplanationFragment, when set, receives explanation text
	// incrementally as the model streams it. The full text is still
	// returned from Explain.
	OnExplanationFragment func(fragment string)
}

// NewLLMGrader creates a grader backed by the given provider.
func NewLLMGrader(provider llm.Provider) *LLMGrader {
	return &LLMGrader{provider: provider}
}

// Correct judges a free-response answer with a structured-output call.
func (g *LLMGrader) Correct(ctx context.Context, req CorrectionRequest) (*CorrectionResult, error) {
	ctx = llm.WithPurpose(ctx, "correction")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: correctionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: correctionUserMessage(req)},
		},
		Schema:    correctionSchema(),
		MaxTokens: correctionMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("correction request: %w", err)
	}

	var parsed struct {
		IsCorrect   bool   `json:"is_correct"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("parse correction response: %w", err)
	}

	return &CorrectionResult{
		IsCorrect:   parsed.IsCorrect,
		Explanation: strings.TrimSpace(parsed.Explanation),
	}, nil
}

// Explain asks the model why the answer was wrong. When the provider can
// stream, fragments are forwarded to OnExplanationFragment as they arrive.
// An empty reply is an error so callers fall back to the fixed string.
func (g *LLMGrader) Explain(ctx context.Context, req ExplainRequest) (string, error) {
	ctx = llm.WithPurpose(ctx, "explanation")

	var b strings.Builder
	err := llm.StreamOrGenerate(ctx, g.provider, llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: explainUserMessage(req)},
		},
		MaxTokens: explanationMaxTokens,
	}, func(fragment string) {
		b.WriteString(fragment)
		if g.OnExplanationFragment != nil {
			g.OnExplanationFragment(fragment)
		}
	})
	if err != nil {
		return "", fmt.Errorf("explanation request: %w", err)
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("explanation response was empty")
	}
	return text, nil
}
