package metrics

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestResultJSONNaNBecomesNull(t *testing.T) {
	r := NewResult(AdaptabilityName)
	r.SetPair("B", "A", 0.75)
	r.SetPair("A", "B", math.NaN())
	r.SetSpeaker("A", SubPredictability, math.NaN())

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"A->B":null`) {
		t.Errorf("NaN pair should encode as null: %s", data)
	}
	if !strings.Contains(string(data), `"B->A":0.75`) {
		t.Errorf("pair key should be responder->trigger: %s", data)
	}
	if strings.Contains(string(data), `\u003e`) {
		t.Errorf("pair keys must not be HTML-escaped: %s", data)
	}

	var back Result
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got := back.Pair("B", "A"); got != 0.75 {
		t.Errorf("pair = %g", got)
	}
	if got := back.Pair("A", "B"); !math.IsNaN(got) {
		t.Errorf("null should decode to NaN, got %g", got)
	}
	if got := back.Speaker("A", SubPredictability); !math.IsNaN(got) {
		t.Errorf("null submetric should decode to NaN, got %g", got)
	}
}
