package version

import (
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version == "" {
		t.Error("version should never be empty")
	}
	if info.BuildDate.IsZero() {
		t.Error("build date should be set")
	}
	if info.BuildTime == "" {
		t.Error("build time should be set")
	}
}

func TestDevIsNotRelease(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "dev"
	if GetVersionInfo().IsRelease {
		t.Error("dev build must not be a release")
	}

	Version = "1.2.0"
	if !GetVersionInfo().IsRelease {
		t.Error("tagged build should be a release")
	}

	Version = "1.2.0-dirty"
	if GetVersionInfo().IsRelease {
		t.Error("dirty build must not be a release")
	}
}

func TestGetShortVersion(t *testing.T) {
	short := GetShortVersion()
	if short == "" {
		t.Fatal("short version is empty")
	}
	if !strings.HasPrefix(short, Version) {
		t.Errorf("short version %q should start with %q", short, Version)
	}
}

func TestGetFullVersion(t *testing.T) {
	full := GetFullVersion()
	if !strings.Contains(full, "built") {
		t.Errorf("full version %q should include the build date", full)
	}
}

func TestLdflagsOverride(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version = "2.0.0"
	GitCommit = "abc1234"

	info := GetVersionInfo()
	if info.Version != "2.0.0" {
		t.Errorf("version = %q", info.Version)
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("commit = %q", info.GitCommit)
	}
	if got := GetShortVersion(); !strings.HasPrefix(got, "2.0.0-abc1234") {
		t.Errorf("short = %q", got)
	}
}
