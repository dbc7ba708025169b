package ingest

import (
	"encoding/json"
	"io"

	"github.com/kbukum/convodyn/conversation"
	"github.com/kbukum/convodyn/errors"
)

// Segment is the wire shape of one diarization segment. It matches the
// output most diarization backends emit: speaker label, start and end in
// seconds, and optionally the transcribed text.
type Segment struct {
	// Speaker is the identified speaker label.
	Speaker string `json:"speaker"`
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
	// Text is the transcribed text for this segment, if available.
	Text string `json:"text,omitempty"`
}

// Document is a full conversation payload: an optional id plus segments.
// Both the bare-array form and the wrapped form are accepted by ReadJSON.
type Document struct {
	ConversationID string    `json:"conversation_id,omitempty"`
	Segments       []Segment `json:"segments"`
}

// Intervals converts decoded segments to builder input.
func (d *Document) Intervals() []conversation.Interval {
	intervals := make([]conversation.Interval, len(d.Segments))
	for i, s := range d.Segments {
		intervals[i] = conversation.Interval{
			Speaker: s.Speaker,
			Start:   s.Start,
			End:     s.End,
			Text:    s.Text,
		}
	}
	return intervals
}

// ReadJSON decodes a diarization document from r. It accepts either a bare
// JSON array of segments or an object with a "segments" field.
func ReadJSON(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Internal(err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil && doc.Segments != nil {
		return &doc, nil
	}

	var segments []Segment
	if err := json.Unmarshal(data, &segments); err != nil {
		return nil, errors.InvalidFormat("segments", "JSON array of segments or {conversation_id, segments}")
	}
	return &Document{Segments: segments}, nil
}
