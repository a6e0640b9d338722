package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over a remote LLM service.
// Callers build a Request and receive structured JSON back.
type Provider interface {
	// Generate sends the request and returns the model's response.
	// When the request carries a Schema, the provider asks the model for
	// JSON conforming to it and validates the result before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the identifier of the configured model.
	ModelID() string
}

// TextStreamer is implemented by providers that can stream a plain-text
// response incrementally. Fragments are delivered in order through emit;
// the call returns once the stream ends or fails. Callers that need the
// full text accumulate the fragments themselves.
type TextStreamer interface {
	StreamText(ctx context.Context, req Request, emit func(fragment string)) error
}

// Request describes a single call to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Single-turn requests (the common case
	// here) carry exactly one user message.
	Messages []Message

	// Schema, when non-nil, is the JSON Schema the response must satisfy.
	// The provider uses its native structured-output mechanism and the
	// response Content is the validated JSON. When nil, Content is the raw
	// text of the reply.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the model output must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "exercise-batch".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output: validated JSON when the request had
	// a Schema, otherwise the raw reply text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// StreamOrGenerate streams the response text through emit when the provider
// supports it, and otherwise falls back to a single Generate call delivered
// as one fragment.
func StreamOrGenerate(ctx context.Context, p Provider, req Request, emit func(fragment string)) error {
	if s, ok := p.(TextStreamer); ok {
		return s.StreamText(ctx, req, emit)
	}

	resp, err := p.Generate(ctx, req)
	if err != nil {
		return err
	}

	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		// Raw text replies are not always JSON-quoted.
		text = string(resp.Content)
	}
	if text != "" {
		emit(text)
	}
	return nil
}
