package grader

import (
	"context"
	"sync"
)

// MockGrader is a canned-response Grader for tests. Responses are consumed
// in FIFO order per method; running out of canned responses returns the
// configured default (correct, empty explanation) rather than failing, so
// tests only stage what they assert on.
type MockGrader struct {
	mu sync.Mutex

	corrections  []mockCorrection
	explanations []mockExplanation

	// CorrectCalls and ExplainCalls record every request received.
	CorrectCalls []CorrectionRequest
	ExplainCalls []ExplainRequest
}

type mockCorrection struct {
	result *CorrectionResult
	err    error
}

type mockExplanation struct {
	text string
	err  error
}

// NewMockGrader creates an empty mock.
func NewMockGrader() *MockGrader {
	return &MockGrader{}
}

// AddCorrection queues a correction result.
func (m *MockGrader) AddCorrection(isCorrect bool, explanation string) *MockGrader {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.corrections = append(m.corrections, mockCorrection{
		result: &CorrectionResult{IsCorrect: isCorrect, Explanation: explanation},
	})
	return m
}

// AddCorrectionError queues a correction failure.
func (m *MockGrader) AddCorrectionError(err error) *MockGrader {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.corrections = append(m.corrections, mockCorrection{err: err})
	return m
}

// AddExplanation queues an explanation.
func (m *MockGrader) AddExplanation(text string) *MockGrader {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.explanations = append(m.explanations, mockExplanation{text: text})
	return m
}

// AddExplanationError queues an explanation failure.
func (m *MockGrader) AddExplanationError(err error) *MockGrader {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.explanations = append(m.explanations, mockExplanation{err: err})
	return m
}

func (m *MockGrader) Correct(_ context.Context, req CorrectionRequest) (*CorrectionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CorrectCalls = append(m.CorrectCalls, req)
	if len(m.corrections) == 0 {
		return &CorrectionResult{IsCorrect: true}, nil
	}
	next := m.corrections[0]
	m.corrections = m.corrections[1:]
	return next.result, next.err
}

func (m *MockGrader) Explain(_ context.Context, req ExplainRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ExplainCalls = append(m.ExplainCalls, req)
	if len(m.explanations) == 0 {
		return "", nil
	}
	next := m.explanations[0]
	m.explanations = m.explanations[1:]
	return next.text, next.err
}
