package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestStreamOrGenerateUsesStreamer(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Fragments: []string{"one ", "two ", "three"},
	})

	var b strings.Builder
	err := StreamOrGenerate(context.Background(), mock, Request{}, func(f string) {
		b.WriteString(f)
	})
	if err != nil {
		t.Fatalf("StreamOrGenerate: %v", err)
	}
	if b.String() != "one two three" {
		t.Errorf("got %q", b.String())
	}
}

// plainProvider has no StreamText, forcing the Generate fallback.
type plainProvider struct {
	resp *Response
	err  error
}

func (p *plainProvider) Generate(context.Context, Request) (*Response, error) {
	return p.resp, p.err
}

func (p *plainProvider) ModelID() string { return "plain" }

func TestStreamOrGenerateFallsBackToGenerate(t *testing.T) {
	p := &plainProvider{resp: &Response{Content: json.RawMessage(`"full reply"`)}}

	var got string
	err := StreamOrGenerate(context.Background(), p, Request{}, func(f string) {
		got += f
	})
	if err != nil {
		t.Fatalf("StreamOrGenerate: %v", err)
	}
	if got != "full reply" {
		t.Errorf("got %q, want unquoted reply text", got)
	}
}

func TestStreamOrGenerateUnquotedContent(t *testing.T) {
	p := &plainProvider{resp: &Response{Content: json.RawMessage(`plain text, not JSON`)}}

	var got string
	if err := StreamOrGenerate(context.Background(), p, Request{}, func(f string) {
		got += f
	}); err != nil {
		t.Fatalf("StreamOrGenerate: %v", err)
	}
	if got != "plain text, not JSON" {
		t.Errorf("got %q", got)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(context.Background(), "correction")
	if got := PurposeFrom(ctx); got != "correction" {
		t.Errorf("PurposeFrom = %q, want correction", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("PurposeFrom on empty context = %q, want unknown", got)
	}
}
