package metrics

import (
	"math"
	"testing"

	"github.com/kbukum/convodyn/conversation"
)

// alternatingConversation builds a two-speaker conversation where A and B
// alternate perfectly: turnsEach turns per speaker, each turnDur seconds
// long, separated by gap seconds of silence.
func alternatingConversation(turnsEach int, turnDur, gap float64) *conversation.Conversation {
	conv := &conversation.Conversation{}
	start := 0.0
	for i := 0; i < turnsEach*2; i++ {
		speaker := "A"
		if i%2 == 1 {
			speaker = "B"
		}
		conv.Turns = append(conv.Turns, conversation.Turn{
			Speaker:  speaker,
			Start:    start,
			End:      start + turnDur,
			Duration: turnDur,
		})
		start += turnDur + gap
	}
	return conv
}

func singleTurnConversation() *conversation.Conversation {
	return &conversation.Conversation{
		Turns: []conversation.Turn{
			{Speaker: "A", Start: 0, End: 3, Duration: 3},
		},
	}
}

// Two speakers alternate perfectly every 2 seconds with 0.5s gaps, 10 turns
// each: shares are 0.5/0.5, cv is 0, predictability is 1.
func TestPerfectAlternationScenario(t *testing.T) {
	conv := alternatingConversation(10, 2, 0.5)

	st, err := NewSpeakingTime().Extract(conv)
	if err != nil {
		t.Fatalf("SpeakingTime failed: %v", err)
	}
	for _, speaker := range []string{"A", "B"} {
		if got := st.Speaker(speaker, ""); math.Abs(got-0.5) > 1e-9 {
			t.Errorf("speaking time for %s = %g, want 0.5", speaker, got)
		}
	}

	tl, err := NewTurnLength().Extract(conv)
	if err != nil {
		t.Fatalf("TurnLength failed: %v", err)
	}
	for _, speaker := range []string{"A", "B"} {
		if got := tl.Speaker(speaker, SubCV); got != 0 {
			t.Errorf("cv for %s = %g, want 0", speaker, got)
		}
		if got := tl.Speaker(speaker, SubPredictability); got != 1 {
			t.Errorf("predictability for %s = %g, want 1", speaker, got)
		}
		if got := tl.Speaker(speaker, SubMean); math.Abs(got-2) > 1e-9 {
			t.Errorf("mean for %s = %g, want 2", speaker, got)
		}
		if got := tl.Speaker(speaker, SubMedian); math.Abs(got-2) > 1e-9 {
			t.Errorf("median for %s = %g, want 2", speaker, got)
		}
	}
}

func TestSpeakingTimeSumsToOne(t *testing.T) {
	conversations := []*conversation.Conversation{
		alternatingConversation(5, 2, 0.5),
		alternatingConversation(3, 1.7, 0),
		{Turns: []conversation.Turn{
			{Speaker: "A", Start: 0, End: 4, Duration: 4},
			{Speaker: "B", Start: 4, End: 5, Duration: 1},
			{Speaker: "C", Start: 5, End: 7.5, Duration: 2.5},
			{Speaker: "A", Start: 8, End: 9, Duration: 1},
		}},
	}
	for _, conv := range conversations {
		result, err := NewSpeakingTime().Extract(conv)
		if err != nil {
			t.Fatalf("SpeakingTime failed: %v", err)
		}
		var sum float64
		for _, vals := range result.PerSpeaker {
			sum += vals[""]
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("shares sum to %g, want 1", sum)
		}
	}
}

func TestSpeakingTimeExcludesTrailingSilence(t *testing.T) {
	// Talk time is 3s even though the wall clock spans 100s.
	conv := &conversation.Conversation{
		Turns: []conversation.Turn{
			{Speaker: "A", Start: 0, End: 2, Duration: 2},
			{Speaker: "B", Start: 99, End: 100, Duration: 1},
		},
	}
	result, err := NewSpeakingTime().Extract(conv)
	if err != nil {
		t.Fatalf("SpeakingTime failed: %v", err)
	}
	if got := result.Speaker("A", ""); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("share for A = %g, want 2/3", got)
	}
}

func TestTurnLengthInsufficientData(t *testing.T) {
	// A conversation with one turn: predictability missing, other stats fine.
	conv := singleTurnConversation()
	result, err := NewTurnLength().Extract(conv)
	if err != nil {
		t.Fatalf("TurnLength failed: %v", err)
	}
	if !math.IsNaN(result.Speaker("A", SubPredictability)) {
		t.Error("predictability with 1 turn should be NaN")
	}
	if got := result.Speaker("A", SubMean); got != 3 {
		t.Errorf("mean = %g, want 3", got)
	}
	if got := result.Speaker("A", SubCV); got != 0 {
		t.Errorf("cv with 1 turn = %g, want 0", got)
	}
}

func TestPausesFraction(t *testing.T) {
	// 10 turns each of 2s, 0.5s gaps: 19 transitions * 0.5s = 9.5s pause
	// over a 49.5s span.
	conv := alternatingConversation(10, 2, 0.5)
	result, err := NewPauses().Extract(conv)
	if err != nil {
		t.Fatalf("Pauses failed: %v", err)
	}
	want := 9.5 / 49.5
	if got := result.Global[""]; math.Abs(got-want) > 1e-9 {
		t.Errorf("pause fraction = %g, want %g", got, want)
	}
}

func TestPausesOverlapFloorsToZero(t *testing.T) {
	// B interrupts before A finishes: the negative gap earns no credit.
	conv := &conversation.Conversation{
		Turns: []conversation.Turn{
			{Speaker: "A", Start: 0, End: 5, Duration: 5},
			{Speaker: "B", Start: 4, End: 8, Duration: 4},
		},
	}
	result, err := NewPauses().Extract(conv)
	if err != nil {
		t.Fatalf("Pauses failed: %v", err)
	}
	if got := result.Global[""]; got != 0 {
		t.Errorf("pause fraction = %g, want 0", got)
	}
}

func TestPausesAlwaysInUnitRange(t *testing.T) {
	conversations := []*conversation.Conversation{
		alternatingConversation(4, 1, 3),
		alternatingConversation(4, 3, 0),
		singleTurnConversation(),
	}
	for _, conv := range conversations {
		result, err := NewPauses().Extract(conv)
		if err != nil {
			t.Fatalf("Pauses failed: %v", err)
		}
		got := result.Global[""]
		if got < 0 || got > 1 {
			t.Errorf("pause fraction %g outside [0,1]", got)
		}
	}
}

func TestPausesIgnoresSameSpeakerGaps(t *testing.T) {
	// The same speaker pausing between their own turns is not an inter-turn
	// pause.
	conv := &conversation.Conversation{
		Turns: []conversation.Turn{
			{Speaker: "A", Start: 0, End: 2, Duration: 2},
			{Speaker: "B", Start: 2, End: 4, Duration: 2},
			{Speaker: "A", Start: 4, End: 6, Duration: 2},
			{Speaker: "B", Start: 9, End: 10, Duration: 1},
		},
	}
	result, err := NewPauses().Extract(conv)
	if err != nil {
		t.Fatalf("Pauses failed: %v", err)
	}
	want := 3.0 / 10.0
	if got := result.Global[""]; math.Abs(got-want) > 1e-9 {
		t.Errorf("pause fraction = %g, want %g", got, want)
	}
}

func TestAdaptabilityPerfectMirroring(t *testing.T) {
	// Every response matches the trigger duration exactly: score 1 both ways.
	conv := alternatingConversation(5, 2, 0.5)
	result, err := NewAdaptability().Extract(conv)
	if err != nil {
		t.Fatalf("Adaptability failed: %v", err)
	}
	if got := result.Pair("B", "A"); got != 1 {
		t.Errorf("adaptability B after A = %g, want 1", got)
	}
	if got := result.Pair("A", "B"); got != 1 {
		t.Errorf("adaptability A after B = %g, want 1", got)
	}
}

func TestAdaptabilityInsufficientTransitions(t *testing.T) {
	// One transition only: both ordered pairs are missing.
	conv := &conversation.Conversation{
		Turns: []conversation.Turn{
			{Speaker: "A", Start: 0, End: 2, Duration: 2},
			{Speaker: "B", Start: 2, End: 4, Duration: 2},
		},
	}
	result, err := NewAdaptability().Extract(conv)
	if err != nil {
		t.Fatalf("Adaptability failed: %v", err)
	}
	if !math.IsNaN(result.Pair("B", "A")) {
		t.Error("1 transition should be NaN")
	}
	if !math.IsNaN(result.Pair("A", "B")) {
		t.Error("0 transitions should be NaN")
	}
}

func TestAdaptabilityRange(t *testing.T) {
	conv := &conversation.Conversation{
		Turns: []conversation.Turn{
			{Speaker: "A", Start: 0, End: 1, Duration: 1},
			{Speaker: "B", Start: 1, End: 9, Duration: 8},
			{Speaker: "A", Start: 9, End: 9.5, Duration: 0.5},
			{Speaker: "B", Start: 9.5, End: 16, Duration: 6.5},
			{Speaker: "A", Start: 16, End: 22, Duration: 6},
		},
	}
	result, err := NewAdaptability().Extract(conv)
	if err != nil {
		t.Fatalf("Adaptability failed: %v", err)
	}
	for pair, score := range result.PerPair {
		if math.IsNaN(score) {
			continue
		}
		if score < 0 || score > 1 {
			t.Errorf("adaptability %v = %g outside [0,1]", pair, score)
		}
	}
}

func TestSingleTurnConversationScenario(t *testing.T) {
	// One turn total: speaking time valid, predictability and adaptability
	// missing, no errors anywhere.
	conv := singleTurnConversation()

	st, err := NewSpeakingTime().Extract(conv)
	if err != nil {
		t.Fatalf("SpeakingTime failed: %v", err)
	}
	if got := st.Speaker("A", ""); got != 1 {
		t.Errorf("speaking time = %g, want 1", got)
	}

	tl, err := NewTurnLength().Extract(conv)
	if err != nil {
		t.Fatalf("TurnLength failed: %v", err)
	}
	if !math.IsNaN(tl.Speaker("A", SubPredictability)) {
		t.Error("predictability should be missing")
	}

	ad, err := NewAdaptability().Extract(conv)
	if err != nil {
		t.Fatalf("Adaptability failed: %v", err)
	}
	if len(ad.PerPair) != 0 {
		t.Errorf("expected no pairs for single speaker, got %v", ad.PerPair)
	}
}

func TestResponseTime(t *testing.T) {
	conv := &conversation.Conversation{
		Turns: []conversation.Turn{
			{Speaker: "A", Start: 0, End: 2, Duration: 2},
			{Speaker: "B", Start: 3, End: 5, Duration: 2},   // 1s latency
			{Speaker: "A", Start: 5.5, End: 7, Duration: 1.5}, // 0.5s latency
			{Speaker: "B", Start: 6.5, End: 8, Duration: 1.5}, // overlap -> 0
		},
	}
	result, err := NewResponseTime().Extract(conv)
	if err != nil {
		t.Fatalf("ResponseTime failed: %v", err)
	}
	if got := result.Speaker("B", ""); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("response time for B = %g, want 0.5", got)
	}
	if got := result.Speaker("A", ""); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("response time for A = %g, want 0.5", got)
	}
}

func TestResponseTimeMissingForOpener(t *testing.T) {
	conv := singleTurnConversation()
	result, err := NewResponseTime().Extract(conv)
	if err != nil {
		t.Fatalf("ResponseTime failed: %v", err)
	}
	if !math.IsNaN(result.Speaker("A", "")) {
		t.Error("speaker who never responds should be NaN")
	}
}

func TestBackchannels(t *testing.T) {
	// B emits one short contained turn during A's long turn.
	conv := &conversation.Conversation{
		Turns: []conversation.Turn{
			{Speaker: "A", Start: 0, End: 10, Duration: 10},
			{Speaker: "B", Start: 4, End: 4.5, Duration: 0.5},
			{Speaker: "A", Start: 10, End: 12, Duration: 2},
			{Speaker: "B", Start: 12, End: 15, Duration: 3},
		},
	}
	result, err := NewBackchannels().Extract(conv)
	if err != nil {
		t.Fatalf("Backchannels failed: %v", err)
	}
	// B: 1 backchannel over A's 2 turns.
	if got := result.Speaker("B", ""); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("backchannel rate for B = %g, want 0.5", got)
	}
	if got := result.Speaker("A", ""); got != 0 {
		t.Errorf("backchannel rate for A = %g, want 0", got)
	}
}

func TestBackchannelsSingleSpeakerMissing(t *testing.T) {
	result, err := NewBackchannels().Extract(singleTurnConversation())
	if err != nil {
		t.Fatalf("Backchannels failed: %v", err)
	}
	if !math.IsNaN(result.Speaker("A", "")) {
		t.Error("no other speakers should yield NaN")
	}
}

func TestSpeakerRate(t *testing.T) {
	conv := &conversation.Conversation{
		Turns: []conversation.Turn{
			{Speaker: "A", Start: 0, End: 60, Duration: 60, Words: 120},  // 120 wpm
			{Speaker: "B", Start: 60, End: 90, Duration: 30, Words: 90},  // 180 wpm
			{Speaker: "A", Start: 90, End: 120, Duration: 30, Words: 60}, // 120 wpm
		},
	}
	result, err := NewSpeakerRate().Extract(conv)
	if err != nil {
		t.Fatalf("SpeakerRate failed: %v", err)
	}
	if got := result.Speaker("A", SubMean); math.Abs(got-120) > 1e-9 {
		t.Errorf("mean rate for A = %g, want 120", got)
	}
	if got := result.Speaker("A", SubPredictability); got != 1 {
		t.Errorf("rate predictability for A = %g, want 1", got)
	}
	if got := result.Speaker("B", SubMean); math.Abs(got-180) > 1e-9 {
		t.Errorf("mean rate for B = %g, want 180", got)
	}
}

func TestSpeakerRateWithoutTranscript(t *testing.T) {
	conv := alternatingConversation(3, 2, 0.5) // no Words anywhere
	result, err := NewSpeakerRate().Extract(conv)
	if err != nil {
		t.Fatalf("SpeakerRate failed: %v", err)
	}
	for _, speaker := range []string{"A", "B"} {
		if !math.IsNaN(result.Speaker(speaker, SubMean)) {
			t.Errorf("rate without transcript for %s should be NaN", speaker)
		}
	}
}
