package weakpoints

import "time"

// Record tracks repeated misses on a single grammar point.
type Record struct {
	// GrammarPoint is the unique text key.
	GrammarPoint string `json:"grammar_point"`

	// ErrorCount is the number of missed exercises, incremented per miss
	// and reset only by an explicit clear.
	ErrorCount int `json:"error_count"`

	// LastPracticeDate is the timestamp of the most recent miss.
	// Serialized as RFC 3339 so the persisted form round-trips.
	LastPracticeDate time.Time `json:"last_practice_date"`
}
