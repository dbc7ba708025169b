package analyzer

import (
	"time"

	"github.com/kbukum/convodyn/metrics"
)

// Record is the flat per-conversation analysis result: one record per
// conversation, holding every metric's output plus conversation-level
// context.
type Record struct {
	// ConversationID identifies the conversation within a batch.
	ConversationID string `json:"conversation_id"`
	// Speakers lists speaker labels in order of first appearance.
	Speakers []string `json:"speakers"`
	// TurnCount is the number of merged turns.
	TurnCount int `json:"turn_count"`
	// WallClock is the conversation span in seconds.
	WallClock float64 `json:"wall_clock"`
	// TalkTime is the summed turn duration in seconds.
	TalkTime float64 `json:"talk_time"`
	// Features maps metric name to its result.
	Features map[string]*metrics.Result `json:"features"`
	// AnalyzedAt is when the analysis ran.
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// Feature returns the named metric result, or nil if the metric did not run.
func (r *Record) Feature(name string) *metrics.Result {
	return r.Features[name]
}
