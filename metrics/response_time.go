package metrics

import (
	"github.com/kbukum/convodyn/conversation"
)

// ResponseTimeName is the registry name for the response-time metric.
const ResponseTimeName = "response_time"

// ResponseTime computes, per speaker, the mean latency in seconds between
// another speaker's turn ending and this speaker's turn starting. Negative
// latencies (the response starts during the previous turn) are floored to 0.
// Speakers who never follow another speaker get NaN.
type ResponseTime struct{}

// NewResponseTime creates the response-time metric.
func NewResponseTime() *ResponseTime { return &ResponseTime{} }

// Name returns the metric name.
func (r *ResponseTime) Name() string { return ResponseTimeName }

// Extract computes per-speaker mean response latency.
func (r *ResponseTime) Extract(conv *conversation.Conversation) (*Result, error) {
	result := NewResult(ResponseTimeName)

	latencies := make(map[string][]float64)
	for i := 1; i < len(conv.Turns); i++ {
		prev, next := conv.Turns[i-1], conv.Turns[i]
		if prev.Speaker == next.Speaker {
			continue
		}
		gap := next.Start - prev.End
		if gap < 0 {
			gap = 0
		}
		latencies[next.Speaker] = append(latencies[next.Speaker], gap)
	}

	for _, speaker := range conv.Speakers() {
		result.SetSpeaker(speaker, "", mean(latencies[speaker]))
	}
	return result, nil
}
