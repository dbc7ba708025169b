package metrics

import (
	"github.com/kbukum/convodyn/conversation"
)

// PausesName is the registry name for the pauses metric.
const PausesName = "pauses"

// Pauses computes the fraction of the conversation spent in silence between
// turns of different speakers.
//
// For each consecutive pair of turns by different speakers, the gap is
// next.start - previous.end, floored at 0 (overlap earns no negative pause
// credit). The sum of gaps is divided by the wall-clock span
// (PausesDenominator): pauses are measured against calendar time, unlike
// speaking time. The result is a single conversation-wide value in [0, 1].
type Pauses struct{}

// NewPauses creates the pauses metric.
func NewPauses() *Pauses { return &Pauses{} }

// Name returns the metric name.
func (p *Pauses) Name() string { return PausesName }

// Extract computes the conversation-wide pause fraction.
func (p *Pauses) Extract(conv *conversation.Conversation) (*Result, error) {
	result := NewResult(PausesName)
	span := conv.WallClock()
	if span <= 0 {
		result.SetGlobal("", nan())
		return result, nil
	}

	var total float64
	for i := 1; i < len(conv.Turns); i++ {
		prev, next := conv.Turns[i-1], conv.Turns[i]
		if prev.Speaker == next.Speaker {
			continue
		}
		if gap := next.Start - prev.End; gap > 0 {
			total += gap
		}
	}
	result.SetGlobal("", clip01(total/span))
	return result, nil
}
