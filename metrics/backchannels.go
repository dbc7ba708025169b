package metrics

import (
	"github.com/kbukum/convodyn/conversation"
)

// BackchannelsName is the registry name for the backchannels metric.
const BackchannelsName = "backchannels"

// DefaultBackchannelMaxDuration is the longest turn, in seconds, still
// counted as a backchannel ("mm-hm", "right", ...).
const DefaultBackchannelMaxDuration = 1.0

// Backchannels computes, per speaker, the rate of short acknowledgement turns
// produced while another speaker holds the floor.
//
// A turn is a backchannel when it lasts at most MaxDuration seconds and lies
// entirely within another speaker's turn. Each speaker's backchannel count is
// normalized by the number of turns taken by the other speakers, so the value
// reads as "backchannels per other-speaker turn". Requires the turn builder's
// overlap policy (cross-talk turns survive as separate turns). NaN when there
// are no other-speaker turns.
type Backchannels struct {
	// MaxDuration overrides DefaultBackchannelMaxDuration when positive.
	MaxDuration float64
}

// NewBackchannels creates the backchannels metric with the default threshold.
func NewBackchannels() *Backchannels { return &Backchannels{} }

// Name returns the metric name.
func (b *Backchannels) Name() string { return BackchannelsName }

// Extract computes per-speaker backchannel rates.
func (b *Backchannels) Extract(conv *conversation.Conversation) (*Result, error) {
	maxDur := b.MaxDuration
	if maxDur <= 0 {
		maxDur = DefaultBackchannelMaxDuration
	}

	counts := make(map[string]float64)
	turnsBy := make(map[string]float64)
	for _, turn := range conv.Turns {
		turnsBy[turn.Speaker]++
		if turn.Duration <= maxDur && b.isContained(turn, conv) {
			counts[turn.Speaker]++
		}
	}

	result := NewResult(BackchannelsName)
	total := float64(len(conv.Turns))
	for _, speaker := range conv.Speakers() {
		others := total - turnsBy[speaker]
		if others <= 0 {
			result.SetSpeaker(speaker, "", nan())
			continue
		}
		result.SetSpeaker(speaker, "", counts[speaker]/others)
	}
	return result, nil
}

// isContained reports whether turn lies entirely within some other speaker's
// turn.
func (b *Backchannels) isContained(turn conversation.Turn, conv *conversation.Conversation) bool {
	for _, other := range conv.Turns {
		if other.Speaker == turn.Speaker {
			continue
		}
		if other.Start <= turn.Start && other.End >= turn.End {
			return true
		}
	}
	return false
}
