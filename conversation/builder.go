package conversation

import (
	"fmt"
	"sort"

	"github.com/kbukum/convodyn/errors"
	"github.com/kbukum/convodyn/util"
)

// DefaultMergeGapTolerance merges only truly adjacent or overlapping
// same-speaker intervals.
const DefaultMergeGapTolerance = 0.0

// Builder collapses a raw diarization stream into an ordered sequence of
// speaker turns.
type Builder struct {
	// mergeGapTolerance is the maximum silence in seconds between two
	// same-speaker intervals that still merges them into one turn.
	mergeGapTolerance float64
}

// NewBuilder creates a Builder with the given same-speaker merge gap
// tolerance in seconds. Negative tolerances are treated as zero.
func NewBuilder(mergeGapTolerance float64) *Builder {
	if mergeGapTolerance < 0 {
		mergeGapTolerance = DefaultMergeGapTolerance
	}
	return &Builder{mergeGapTolerance: mergeGapTolerance}
}

// Build converts raw diarization intervals into an ordered turn sequence.
//
// Intervals are stably sorted by start time (ties keep input order) and
// scanned once: an interval extends the current turn when it has the same
// speaker and starts no later than the current turn's end plus the merge gap
// tolerance; otherwise it opens a new turn. Overlapping intervals from a
// different speaker simply become new turns; cross-talk is not resolved at
// this layer.
//
// Build fails with INVALID_INPUT when the interval list is empty, an interval
// has end <= start, or a speaker label is missing.
func (b *Builder) Build(intervals []Interval) (*Conversation, error) {
	if len(intervals) == 0 {
		return nil, errors.EmptyConversation()
	}
	for i, iv := range intervals {
		if iv.Speaker == "" {
			return nil, errors.MissingField("speaker").WithDetail("interval", i)
		}
		if iv.End <= iv.Start {
			return nil, errors.InvalidInput("end",
				fmt.Sprintf("end_time (%g) must be greater than start_time (%g)", iv.End, iv.Start)).
				WithDetail("interval", i)
		}
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	turns := make([]Turn, 0, len(sorted))
	current := newTurn(sorted[0])
	for _, iv := range sorted[1:] {
		if iv.Speaker == current.Speaker && iv.Start <= current.End+b.mergeGapTolerance {
			if iv.End > current.End {
				current.End = iv.End
			}
			current.Words += util.WordCount(iv.Text)
			continue
		}
		turns = append(turns, sealTurn(current))
		current = newTurn(iv)
	}
	turns = append(turns, sealTurn(current))

	return &Conversation{Turns: turns}, nil
}

func newTurn(iv Interval) Turn {
	return Turn{
		Speaker: iv.Speaker,
		Start:   iv.Start,
		End:     iv.End,
		Words:   util.WordCount(iv.Text),
	}
}

func sealTurn(t Turn) Turn {
	t.Duration = t.End - t.Start
	return t
}
