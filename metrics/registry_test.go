package metrics

import (
	"testing"

	"github.com/kbukum/convodyn/errors"
)

func TestDefaultRegistryHasAllMetrics(t *testing.T) {
	reg := Default()
	names := reg.List()
	want := []string{
		AdaptabilityName, BackchannelsName, PausesName, ResponseTimeName,
		SpeakerRateName, SpeakingTimeName, TurnLengthName,
	}
	if len(names) != len(want) {
		t.Fatalf("registry has %d metrics, want %d: %v", len(names), len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestCreateTolerantLookup(t *testing.T) {
	reg := Default()
	tests := []string{"speaking_time", "Speaking Time", "  SPEAKING_TIME  "}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := reg.Create(name)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", name, err)
			}
			if f.Name() != SpeakingTimeName {
				t.Errorf("created %q, want %q", f.Name(), SpeakingTimeName)
			}
		})
	}
}

func TestCreateUnknownMetric(t *testing.T) {
	_, err := Default().Create("sentiment")
	if err == nil {
		t.Fatal("expected error for unknown metric")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
	if appErr.Details["available"] == "" {
		t.Error("expected available metrics in details")
	}
}

func TestCreateAll(t *testing.T) {
	features, err := Default().CreateAll(DefaultNames)
	if err != nil {
		t.Fatalf("CreateAll failed: %v", err)
	}
	if len(features) != len(DefaultNames) {
		t.Fatalf("created %d features, want %d", len(features), len(DefaultNames))
	}
	for i, f := range features {
		if f.Name() != DefaultNames[i] {
			t.Errorf("feature %d = %q, want %q", i, f.Name(), DefaultNames[i])
		}
	}
}

func TestCreateAllFailsFast(t *testing.T) {
	_, err := Default().CreateAll([]string{"speaking_time", "bogus"})
	if err == nil {
		t.Fatal("expected error for unknown metric in list")
	}
}
