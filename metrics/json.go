package metrics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// pairSeparator joins responder and trigger in the wire form of a pair key.
const pairSeparator = "->"

// resultJSON is the wire shape of Result: pair keys become
// "responder->trigger" strings and NaN values become null.
type resultJSON struct {
	Name       string                         `json:"name"`
	PerSpeaker map[string]map[string]*float64 `json:"per_speaker,omitempty"`
	PerPair    map[string]*float64            `json:"per_pair,omitempty"`
	Global     map[string]*float64            `json:"global,omitempty"`
}

// MarshalJSON encodes the result with NaN rendered as null, since JSON has
// no NaN literal and a null score reads naturally as "missing".
func (r *Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Name: r.Name}

	if len(r.PerSpeaker) > 0 {
		out.PerSpeaker = make(map[string]map[string]*float64, len(r.PerSpeaker))
		for speaker, subs := range r.PerSpeaker {
			m := make(map[string]*float64, len(subs))
			for sub, v := range subs {
				m[sub] = nullable(v)
			}
			out.PerSpeaker[speaker] = m
		}
	}
	if len(r.PerPair) > 0 {
		out.PerPair = make(map[string]*float64, len(r.PerPair))
		for pair, v := range r.PerPair {
			out.PerPair[pair.Responder+pairSeparator+pair.Trigger] = nullable(v)
		}
	}
	if len(r.Global) > 0 {
		out.Global = make(map[string]*float64, len(r.Global))
		for sub, v := range r.Global {
			out.Global[sub] = nullable(v)
		}
	}

	// json.Marshal HTML-escapes ">", mangling pair keys into "A-\u003eB";
	// encode without escaping so the wire form stays readable.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes the wire shape back into the in-memory result, with
// null scores restored as NaN.
func (r *Result) UnmarshalJSON(data []byte) error {
	var in resultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	r.Name = in.Name
	r.PerSpeaker = nil
	r.PerPair = nil
	r.Global = nil

	for speaker, subs := range in.PerSpeaker {
		for sub, v := range subs {
			r.SetSpeaker(speaker, sub, denull(v))
		}
	}
	for key, v := range in.PerPair {
		responder, trigger, ok := strings.Cut(key, pairSeparator)
		if !ok {
			return fmt.Errorf("malformed pair key %q", key)
		}
		r.SetPair(responder, trigger, denull(v))
	}
	for sub, v := range in.Global {
		r.SetGlobal(sub, denull(v))
	}
	return nil
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func denull(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
