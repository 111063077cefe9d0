package models

import "time"

// Lookup outcome constants
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
)

// Lookup operations
const (
	OperationRemedy     = "remedy"
	OperationConditions = "conditions"
	OperationChat       = "chat"
	OperationTreatment  = "treatment"
)

// LookupStat is a per-key hit count by operation and outcome.
// Fallback lookups carry an empty Key.
type LookupStat struct {
	Operation  string    `json:"operation"`
	Key        string    `json:"key"`
	Outcome    string    `json:"outcome"`
	Count      int64     `json:"count"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// LookupKey identifies a counter.
type LookupKey struct {
	Operation string
	Key       string
	Outcome   string
}

// OutcomeFor maps a match flag to its outcome label.
func OutcomeFor(matched bool) string {
	if matched {
		return OutcomeMatched
	}
	return OutcomeFallback
}
