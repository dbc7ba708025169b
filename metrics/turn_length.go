package metrics

import (
	"github.com/kbukum/convodyn/conversation"
)

// TurnLengthName is the registry name for the turn-length metric.
const TurnLengthName = "turn_length"

// Turn-length submetric keys.
const (
	SubMedian         = "median"
	SubMean           = "mean"
	SubCV             = "cv"
	SubPredictability = "predictability"
)

// TurnLength computes per-speaker turn-duration statistics: median, mean,
// coefficient of variation (sample stddev / mean), and predictability.
//
// Predictability measures how well a turn's duration is predicted by the
// speaker's immediately preceding turn: 1 - mean(|d_i - d_{i-1}|)/mean(d),
// clipped to [0, 1]. Speakers with fewer than two turns get NaN.
type TurnLength struct{}

// NewTurnLength creates the turn-length metric.
func NewTurnLength() *TurnLength { return &TurnLength{} }

// Name returns the metric name.
func (t *TurnLength) Name() string { return TurnLengthName }

// Extract computes per-speaker turn-length statistics.
func (t *TurnLength) Extract(conv *conversation.Conversation) (*Result, error) {
	result := NewResult(TurnLengthName)
	for _, speaker := range conv.Speakers() {
		turns := conv.SpeakerTurns(speaker)
		durations := make([]float64, len(turns))
		for i, turn := range turns {
			durations[i] = turn.Duration
		}
		result.SetSpeaker(speaker, SubMedian, median(durations))
		result.SetSpeaker(speaker, SubMean, mean(durations))
		result.SetSpeaker(speaker, SubCV, coefficientOfVariation(durations))
		result.SetSpeaker(speaker, SubPredictability, predictabilityScore(durations))
	}
	return result, nil
}
