package util

import "testing"

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SPEAKER_00", "speaker_00"},
		{"  Speaker 01  ", "speaker_01"},
		{"alice", "alice"},
		{"Bob  Smith", "bob_smith"},
		{"", ""},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := SanitizeKey(tc.input); got != tc.want {
				t.Errorf("SanitizeKey(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello world", 2},
		{"  spaced   out   words ", 3},
		{"", 0},
		{"one", 1},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := WordCount(tc.input); got != tc.want {
				t.Errorf("WordCount(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hi\x00there  "); got != "hithere" {
		t.Errorf("SanitizeString = %q", got)
	}
}
