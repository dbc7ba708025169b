package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/kbukum/convodyn/analyzer"
	"github.com/kbukum/convodyn/metrics"
)

func sampleRecord(id string) *analyzer.Record {
	st := metrics.NewResult(metrics.SpeakingTimeName)
	st.SetSpeaker("SPEAKER_00", "", 0.6)
	st.SetSpeaker("SPEAKER_01", "", 0.4)

	tl := metrics.NewResult(metrics.TurnLengthName)
	tl.SetSpeaker("SPEAKER_00", metrics.SubMedian, 2.5)
	tl.SetSpeaker("SPEAKER_00", metrics.SubPredictability, math.NaN())

	pauses := metrics.NewResult(metrics.PausesName)
	pauses.SetGlobal("", 0.12)

	adapt := metrics.NewResult(metrics.AdaptabilityName)
	adapt.SetPair("SPEAKER_01", "SPEAKER_00", 0.8)
	adapt.SetPair("SPEAKER_00", "SPEAKER_01", math.NaN())

	return &analyzer.Record{
		ConversationID: id,
		Speakers:       []string{"SPEAKER_00", "SPEAKER_01"},
		Features: map[string]*metrics.Result{
			metrics.SpeakingTimeName: st,
			metrics.TurnLengthName:   tl,
			metrics.PausesName:       pauses,
			metrics.AdaptabilityName: adapt,
		},
	}
}

func TestFlattenKeys(t *testing.T) {
	row := Flatten(sampleRecord("conv-1"))

	if row.ConversationID != "conv-1" {
		t.Errorf("id = %q", row.ConversationID)
	}
	if got := row.Values["speaker_00_speaking_time"]; got != 0.6 {
		t.Errorf("speaker_00_speaking_time = %g", got)
	}
	if got := row.Values["speaker_00_turn_length_median"]; got != 2.5 {
		t.Errorf("speaker_00_turn_length_median = %g", got)
	}
	if got := row.Values["pauses"]; got != 0.12 {
		t.Errorf("pauses = %g", got)
	}
	if got := row.Values["speaker_01_after_speaker_00_adaptability"]; got != 0.8 {
		t.Errorf("pair key = %g", got)
	}
}

func TestFlattenOmitsNaN(t *testing.T) {
	row := Flatten(sampleRecord("conv-1"))

	if _, ok := row.Values["speaker_00_turn_length_predictability"]; ok {
		t.Error("NaN submetric must be omitted")
	}
	if _, ok := row.Values["speaker_00_after_speaker_01_adaptability"]; ok {
		t.Error("NaN pair score must be omitted")
	}
}

func TestColumnsUnion(t *testing.T) {
	a := Row{ConversationID: "a", Values: map[string]float64{"pauses": 0.1}}
	b := Row{ConversationID: "b", Values: map[string]float64{"speaker_00_speaking_time": 0.5}}

	columns := Columns([]Row{a, b})
	if len(columns) != 2 {
		t.Fatalf("columns = %v", columns)
	}
	if columns[0] != "pauses" || columns[1] != "speaker_00_speaking_time" {
		t.Errorf("columns not sorted: %v", columns)
	}
}

func TestWriteJSONL(t *testing.T) {
	rows := FlattenAll([]*analyzer.Record{sampleRecord("conv-1"), sampleRecord("conv-2")})

	var buf bytes.Buffer
	if err := WriteJSONL(&buf, rows); err != nil {
		t.Fatalf("WriteJSONL failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d", len(lines))
	}

	var decoded Row
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("line 0 is not valid JSON: %v", err)
	}
	if decoded.ConversationID != "conv-1" {
		t.Errorf("id = %q", decoded.ConversationID)
	}
	if decoded.Values["pauses"] != 0.12 {
		t.Errorf("pauses = %g", decoded.Values["pauses"])
	}
}

func TestWriteCSV(t *testing.T) {
	full := Flatten(sampleRecord("conv-1"))
	sparse := Row{ConversationID: "conv-2", Values: map[string]float64{"pauses": 0.3}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, []Row{full, sparse}); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d", len(lines))
	}

	header := strings.Split(lines[0], ",")
	if header[0] != "conversation_id" {
		t.Errorf("first column = %q", header[0])
	}

	// The sparse row only has pauses; every other cell is empty.
	cells := strings.Split(lines[2], ",")
	if cells[0] != "conv-2" {
		t.Errorf("sparse id = %q", cells[0])
	}
	filled := 0
	for _, cell := range cells[1:] {
		if cell != "" {
			filled++
		}
	}
	if filled != 1 {
		t.Errorf("sparse row should have exactly one value, got %d", filled)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "conversation_id" {
		t.Errorf("empty table header = %q", got)
	}
}
