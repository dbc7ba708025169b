package conversation

import (
	"math"
	"testing"
)

func sampleConversation() *Conversation {
	return &Conversation{
		Turns: []Turn{
			{Speaker: "A", Start: 1, End: 3, Duration: 2},
			{Speaker: "B", Start: 3.5, End: 5.5, Duration: 2},
			{Speaker: "A", Start: 6, End: 7, Duration: 1},
		},
	}
}

func TestWallClock(t *testing.T) {
	conv := sampleConversation()
	if got := conv.WallClock(); math.Abs(got-6) > 1e-9 {
		t.Errorf("WallClock = %g, want 6", got)
	}
}

func TestTalkTime(t *testing.T) {
	conv := sampleConversation()
	if got := conv.TalkTime(); math.Abs(got-5) > 1e-9 {
		t.Errorf("TalkTime = %g, want 5", got)
	}
}

func TestSpeakersOrderOfFirstAppearance(t *testing.T) {
	conv := sampleConversation()
	speakers := conv.Speakers()
	if len(speakers) != 2 || speakers[0] != "A" || speakers[1] != "B" {
		t.Errorf("Speakers = %v", speakers)
	}
}

func TestSpeakerTurns(t *testing.T) {
	conv := sampleConversation()
	turns := conv.SpeakerTurns("A")
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns for A, got %d", len(turns))
	}
	if turns[0].Start != 1 || turns[1].Start != 6 {
		t.Errorf("turns not chronological: %+v", turns)
	}
}

func TestEmptyConversationDurations(t *testing.T) {
	conv := &Conversation{}
	if conv.WallClock() != 0 || conv.TalkTime() != 0 {
		t.Error("empty conversation should have zero durations")
	}
}
