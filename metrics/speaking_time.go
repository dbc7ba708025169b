package metrics

import (
	"github.com/kbukum/convodyn/conversation"
)

// SpeakingTimeName is the registry name for the speaking-time metric.
const SpeakingTimeName = "speaking_time"

// SpeakingTime computes each speaker's fraction of total talking time.
//
// The denominator is the sum of all turn durations (SpeakingTimeDenominator),
// not the wall-clock span, so leading and trailing silence never dilute the
// shares. Fractions across speakers sum to 1.
type SpeakingTime struct{}

// NewSpeakingTime creates the speaking-time metric.
func NewSpeakingTime() *SpeakingTime { return &SpeakingTime{} }

// Name returns the metric name.
func (s *SpeakingTime) Name() string { return SpeakingTimeName }

// Extract computes per-speaker speaking-time fractions.
func (s *SpeakingTime) Extract(conv *conversation.Conversation) (*Result, error) {
	result := NewResult(SpeakingTimeName)
	talkTime := conv.TalkTime()
	if talkTime <= 0 {
		for _, speaker := range conv.Speakers() {
			result.SetSpeaker(speaker, "", nan())
		}
		return result, nil
	}

	totals := make(map[string]float64)
	for _, turn := range conv.Turns {
		totals[turn.Speaker] += turn.Duration
	}
	for _, speaker := range conv.Speakers() {
		result.SetSpeaker(speaker, "", totals[speaker]/talkTime)
	}
	return result, nil
}
