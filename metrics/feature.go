package metrics

import (
	"github.com/kbukum/convodyn/conversation"
)

// Feature is the contract every metric implements: a pure, stateless
// transform of an immutable conversation into a result. Features carry no
// state across calls, so a single instance is safe for concurrent use.
type Feature interface {
	// Name returns the metric's unique registry name.
	Name() string
	// Extract computes the metric over the conversation's turn sequence.
	// Missing per-key values (insufficient data) are reported as NaN in the
	// result, never as errors.
	Extract(conv *conversation.Conversation) (*Result, error)
}

// Transition identifies an ordered speaker pair: Responder speaks
// immediately after Trigger.
type Transition struct {
	Responder string `json:"responder"`
	Trigger   string `json:"trigger"`
}

// Result holds one metric's output. A metric fills whichever shapes apply:
// per-speaker values, per-ordered-pair values, or conversation-global values.
// The empty submetric key "" denotes the metric's single unnamed value and
// flattens to the bare metric name.
type Result struct {
	// Name is the metric name the result belongs to.
	Name string `json:"name"`
	// PerSpeaker maps speaker -> submetric -> value.
	PerSpeaker map[string]map[string]float64 `json:"per_speaker,omitempty"`
	// PerPair maps ordered speaker pairs to a score.
	PerPair map[Transition]float64 `json:"per_pair,omitempty"`
	// Global holds conversation-level values keyed by submetric.
	Global map[string]float64 `json:"global,omitempty"`
}

// NewResult creates an empty result for the named metric.
func NewResult(name string) *Result {
	return &Result{Name: name}
}

// SetSpeaker records a per-speaker submetric value.
func (r *Result) SetSpeaker(speaker, submetric string, value float64) {
	if r.PerSpeaker == nil {
		r.PerSpeaker = make(map[string]map[string]float64)
	}
	if r.PerSpeaker[speaker] == nil {
		r.PerSpeaker[speaker] = make(map[string]float64)
	}
	r.PerSpeaker[speaker][submetric] = value
}

// SetPair records a score for an ordered speaker pair.
func (r *Result) SetPair(responder, trigger string, value float64) {
	if r.PerPair == nil {
		r.PerPair = make(map[Transition]float64)
	}
	r.PerPair[Transition{Responder: responder, Trigger: trigger}] = value
}

// SetGlobal records a conversation-level value.
func (r *Result) SetGlobal(submetric string, value float64) {
	if r.Global == nil {
		r.Global = make(map[string]float64)
	}
	r.Global[submetric] = value
}

// Speaker returns the submetric value for a speaker, or NaN if absent.
func (r *Result) Speaker(speaker, submetric string) float64 {
	if vals, ok := r.PerSpeaker[speaker]; ok {
		if v, ok := vals[submetric]; ok {
			return v
		}
	}
	return nan()
}

// Pair returns the score for an ordered pair, or NaN if absent.
func (r *Result) Pair(responder, trigger string) float64 {
	if v, ok := r.PerPair[Transition{Responder: responder, Trigger: trigger}]; ok {
		return v
	}
	return nan()
}

// Denominator conventions. Fixed per metric (not user configurable), named
// here so tests can assert which convention a metric uses.
const (
	// DenominatorTalkTime is the sum of all turn durations, excluding
	// leading/trailing silence.
	DenominatorTalkTime = "talk_time"
	// DenominatorWallClock is the full span: max turn end - min turn start.
	DenominatorWallClock = "wall_clock"
)

// Per-metric denominator conventions.
const (
	SpeakingTimeDenominator = DenominatorTalkTime
	PausesDenominator       = DenominatorWallClock
)
