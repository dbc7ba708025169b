package conversation

import (
	"testing"

	"github.com/kbukum/convodyn/errors"
)

func TestBuildMergesAdjacentSameSpeaker(t *testing.T) {
	// Three adjacent same-speaker intervals collapse into one turn.
	intervals := []Interval{
		{Speaker: "SPEAKER_00", Start: 0, End: 2},
		{Speaker: "SPEAKER_00", Start: 2, End: 5},
		{Speaker: "SPEAKER_00", Start: 5, End: 9},
	}
	conv, err := NewBuilder(0).Build(intervals)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(conv.Turns) != 1 {
		t.Fatalf("expected 1 merged turn, got %d", len(conv.Turns))
	}
	turn := conv.Turns[0]
	if turn.Start != 0 || turn.End != 9 || turn.Duration != 9 {
		t.Errorf("unexpected merged turn: %+v", turn)
	}
}

func TestBuildSplitsOnSpeakerChange(t *testing.T) {
	intervals := []Interval{
		{Speaker: "A", Start: 0, End: 2},
		{Speaker: "B", Start: 2.5, End: 4},
		{Speaker: "A", Start: 4.5, End: 6},
	}
	conv, err := NewBuilder(0).Build(intervals)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(conv.Turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(conv.Turns))
	}
	want := []string{"A", "B", "A"}
	for i, turn := range conv.Turns {
		if turn.Speaker != want[i] {
			t.Errorf("turn %d speaker = %q, want %q", i, turn.Speaker, want[i])
		}
	}
}

func TestBuildGapToleranceMergesAcrossSilence(t *testing.T) {
	intervals := []Interval{
		{Speaker: "A", Start: 0, End: 2},
		{Speaker: "A", Start: 2.4, End: 4},
	}

	// Tolerance 0: the 0.4s silence splits the turns.
	conv, err := NewBuilder(0).Build(intervals)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(conv.Turns) != 2 {
		t.Errorf("tolerance 0: expected 2 turns, got %d", len(conv.Turns))
	}

	// Tolerance 0.5: the same intervals merge.
	conv, err = NewBuilder(0.5).Build(intervals)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(conv.Turns) != 1 {
		t.Errorf("tolerance 0.5: expected 1 turn, got %d", len(conv.Turns))
	}
}

func TestBuildSortsByStartTime(t *testing.T) {
	intervals := []Interval{
		{Speaker: "B", Start: 5, End: 7},
		{Speaker: "A", Start: 0, End: 2},
		{Speaker: "A", Start: 2, End: 4},
	}
	conv, err := NewBuilder(0).Build(intervals)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(conv.Turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(conv.Turns))
	}
	if conv.Turns[0].Speaker != "A" || conv.Turns[1].Speaker != "B" {
		t.Errorf("turns out of order: %+v", conv.Turns)
	}
}

func TestBuildOverlappingSpeakersBecomeSeparateTurns(t *testing.T) {
	// Cross-talk: B starts while A is still speaking. Both turns survive.
	intervals := []Interval{
		{Speaker: "A", Start: 0, End: 5},
		{Speaker: "B", Start: 3, End: 4},
	}
	conv, err := NewBuilder(0).Build(intervals)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(conv.Turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(conv.Turns))
	}
}

func TestBuildIdempotent(t *testing.T) {
	// Re-running Build on its own output (turns as intervals) is a no-op at
	// tolerance 0.
	intervals := []Interval{
		{Speaker: "A", Start: 0, End: 2},
		{Speaker: "A", Start: 2, End: 3},
		{Speaker: "B", Start: 3.5, End: 5},
		{Speaker: "A", Start: 6, End: 8},
	}
	builder := NewBuilder(0)
	first, err := builder.Build(intervals)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	again := make([]Interval, len(first.Turns))
	for i, turn := range first.Turns {
		again[i] = Interval{Speaker: turn.Speaker, Start: turn.Start, End: turn.End}
	}
	second, err := builder.Build(again)
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}
	if len(second.Turns) != len(first.Turns) {
		t.Fatalf("idempotency broken: %d turns became %d", len(first.Turns), len(second.Turns))
	}
	for i := range first.Turns {
		if first.Turns[i] != second.Turns[i] {
			t.Errorf("turn %d changed: %+v -> %+v", i, first.Turns[i], second.Turns[i])
		}
	}
}

func TestBuildWordCounts(t *testing.T) {
	intervals := []Interval{
		{Speaker: "A", Start: 0, End: 2, Text: "hello there"},
		{Speaker: "A", Start: 2, End: 4, Text: "how are you"},
	}
	conv, err := NewBuilder(0).Build(intervals)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(conv.Turns) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(conv.Turns))
	}
	if conv.Turns[0].Words != 5 {
		t.Errorf("expected 5 words, got %d", conv.Turns[0].Words)
	}
}

func TestBuildInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		intervals []Interval
	}{
		{"empty", nil},
		{"zero duration", []Interval{{Speaker: "A", Start: 1, End: 1}}},
		{"negative duration", []Interval{{Speaker: "A", Start: 2, End: 1}}},
		{"missing speaker", []Interval{{Speaker: "", Start: 0, End: 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBuilder(0).Build(tc.intervals)
			if err == nil {
				t.Fatal("expected error")
			}
			appErr, ok := errors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != errors.ErrCodeInvalidInput && appErr.Code != errors.ErrCodeMissingField {
				t.Errorf("unexpected code %s", appErr.Code)
			}
		})
	}
}

func TestNegativeToleranceTreatedAsZero(t *testing.T) {
	intervals := []Interval{
		{Speaker: "A", Start: 0, End: 2},
		{Speaker: "A", Start: 2, End: 4},
	}
	conv, err := NewBuilder(-1).Build(intervals)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(conv.Turns) != 1 {
		t.Errorf("expected adjacency merge, got %d turns", len(conv.Turns))
	}
}
