package metrics

import (
	"github.com/kbukum/convodyn/conversation"
)

// SpeakerRateName is the registry name for the speaker-rate metric.
const SpeakerRateName = "speaker_rate"

// SpeakerRate computes per-speaker speech rate in words per minute, with the
// same statistics as turn length: median, mean, coefficient of variation, and
// predictability.
//
// Word counts come from the optional transcript text on the raw intervals;
// turns without any words are skipped. When a speaker has no turns with
// transcript text, every submetric is NaN; the metric degrades quietly on
// timing-only input.
type SpeakerRate struct{}

// NewSpeakerRate creates the speaker-rate metric.
func NewSpeakerRate() *SpeakerRate { return &SpeakerRate{} }

// Name returns the metric name.
func (s *SpeakerRate) Name() string { return SpeakerRateName }

// Extract computes per-speaker words-per-minute statistics.
func (s *SpeakerRate) Extract(conv *conversation.Conversation) (*Result, error) {
	result := NewResult(SpeakerRateName)
	for _, speaker := range conv.Speakers() {
		var rates []float64
		for _, turn := range conv.SpeakerTurns(speaker) {
			if turn.Words == 0 || turn.Duration <= 0 {
				continue
			}
			rates = append(rates, float64(turn.Words)*60/turn.Duration)
		}
		if len(rates) == 0 {
			result.SetSpeaker(speaker, SubMedian, nan())
			result.SetSpeaker(speaker, SubMean, nan())
			result.SetSpeaker(speaker, SubCV, nan())
			result.SetSpeaker(speaker, SubPredictability, nan())
			continue
		}
		result.SetSpeaker(speaker, SubMedian, median(rates))
		result.SetSpeaker(speaker, SubMean, mean(rates))
		result.SetSpeaker(speaker, SubCV, coefficientOfVariation(rates))
		result.SetSpeaker(speaker, SubPredictability, predictabilityScore(rates))
	}
	return result, nil
}
