package conversation

// Interval is one detected utterance from a speaker-diarization backend.
// It is input only and never modified.
type Interval struct {
	// Speaker is the diarization speaker label (e.g. "SPEAKER_00").
	Speaker string `json:"speaker"`
	// Start is the utterance start time in seconds.
	Start float64 `json:"start"`
	// End is the utterance end time in seconds.
	End float64 `json:"end"`
	// Text is the transcribed text for this interval, if available.
	Text string `json:"text,omitempty"`
}

// Duration returns the interval length in seconds.
func (i Interval) Duration() float64 { return i.End - i.Start }

// Turn is one contiguous speaking turn after merging adjacent same-speaker
// intervals.
type Turn struct {
	// Speaker is the speaker label for this turn.
	Speaker string `json:"speaker"`
	// Start is the turn start time in seconds.
	Start float64 `json:"start"`
	// End is the turn end time in seconds.
	End float64 `json:"end"`
	// Duration is End - Start.
	Duration float64 `json:"duration"`
	// Words is the transcript word count across the merged intervals.
	// Zero when no transcript text was supplied.
	Words int `json:"words,omitempty"`
}

// Conversation is the unit of analysis: the ordered turn sequence of one
// complete conversation. It is built once and immutable thereafter; all
// metrics read from the same Conversation without synchronization.
type Conversation struct {
	// ID identifies the conversation within a batch.
	ID string `json:"id,omitempty"`
	// Turns is ordered by start time. Consecutive same-speaker turns occur
	// when a same-speaker gap exceeds the builder's merge tolerance.
	Turns []Turn `json:"turns"`
}

// WallClock returns the full span of the conversation in seconds
// (max turn end - min turn start). Used as the pause denominator.
func (c *Conversation) WallClock() float64 {
	if len(c.Turns) == 0 {
		return 0
	}
	minStart := c.Turns[0].Start
	maxEnd := c.Turns[0].End
	for _, t := range c.Turns[1:] {
		if t.Start < minStart {
			minStart = t.Start
		}
		if t.End > maxEnd {
			maxEnd = t.End
		}
	}
	return maxEnd - minStart
}

// TalkTime returns the sum of all turn durations in seconds. Used as the
// speaking-time denominator, excluding leading/trailing silence.
func (c *Conversation) TalkTime() float64 {
	var total float64
	for _, t := range c.Turns {
		total += t.Duration
	}
	return total
}

// Speakers returns the distinct speaker labels in order of first appearance.
func (c *Conversation) Speakers() []string {
	seen := make(map[string]struct{}, 4)
	speakers := make([]string, 0, 4)
	for _, t := range c.Turns {
		if _, ok := seen[t.Speaker]; !ok {
			seen[t.Speaker] = struct{}{}
			speakers = append(speakers, t.Speaker)
		}
	}
	return speakers
}

// SpeakerTurns returns the given speaker's turns in chronological order.
func (c *Conversation) SpeakerTurns(speaker string) []Turn {
	var turns []Turn
	for _, t := range c.Turns {
		if t.Speaker == speaker {
			turns = append(turns, t)
		}
	}
	return turns
}
