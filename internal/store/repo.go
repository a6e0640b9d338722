package store

import (
	"context"
	"time"
)

// LLMEventData captures a single LLM request for the event log.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a logged LLM request as read back from the store.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// LLMUsage aggregates token consumption per purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results, newest first (0 = default 20)
	Purpose string // filter by purpose label when non-empty
}

// EventRepo provides access to the LLM request event log.
type EventRepo interface {
	// AppendLLMEvent records an LLM API call.
	AppendLLMEvent(ctx context.Context, data LLMEventData) error

	// QueryLLMEvents returns logged events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
