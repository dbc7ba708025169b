package metrics

import (
	"math"

	"github.com/kbukum/convodyn/conversation"
)

// AdaptabilityName is the registry name for the adaptability metric.
const AdaptabilityName = "adaptability"

// MinAdaptabilityTransitions is the minimum number of qualifying
// responder-after-trigger transitions required to score an ordered pair.
const MinAdaptabilityTransitions = 2

// Adaptability scores how much one speaker's turn duration converges toward
// the turn duration of the speaker they respond to.
//
// For an ordered pair (responder, trigger), every responder turn that
// immediately follows a trigger turn yields one (trigger duration, response
// duration) sample. The score is 1 - mean(|response - trigger|)/mean(trigger)
// clipped to [0, 1], the same normalized-difference transform as turn-length
// predictability, applied across speakers instead of within one. Pairs with
// fewer than MinAdaptabilityTransitions samples are reported as NaN.
type Adaptability struct{}

// NewAdaptability creates the adaptability metric.
func NewAdaptability() *Adaptability { return &Adaptability{} }

// Name returns the metric name.
func (a *Adaptability) Name() string { return AdaptabilityName }

// Extract scores every ordered pair of distinct speakers in the conversation.
func (a *Adaptability) Extract(conv *conversation.Conversation) (*Result, error) {
	result := NewResult(AdaptabilityName)

	type sample struct {
		triggers []float64
		diffs    []float64
	}
	samples := make(map[Transition]*sample)
	for i := 1; i < len(conv.Turns); i++ {
		prev, next := conv.Turns[i-1], conv.Turns[i]
		if prev.Speaker == next.Speaker {
			continue
		}
		key := Transition{Responder: next.Speaker, Trigger: prev.Speaker}
		s := samples[key]
		if s == nil {
			s = &sample{}
			samples[key] = s
		}
		s.triggers = append(s.triggers, prev.Duration)
		s.diffs = append(s.diffs, math.Abs(next.Duration-prev.Duration))
	}

	speakers := conv.Speakers()
	for _, responder := range speakers {
		for _, trigger := range speakers {
			if responder == trigger {
				continue
			}
			s := samples[Transition{Responder: responder, Trigger: trigger}]
			if s == nil || len(s.diffs) < MinAdaptabilityTransitions {
				result.SetPair(responder, trigger, nan())
				continue
			}
			result.SetPair(responder, trigger, convergenceScore(s.diffs, mean(s.triggers)))
		}
	}
	return result, nil
}
