package version

import (
	"strings"
	"testing"
)

func TestVersionDefaults(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.HasSuffix(Version, "-dev") {
		t.Errorf("unreleased builds should carry the -dev suffix, got %q", Version)
	}
	if Tool != "beautifhy" {
		t.Errorf("Tool = %q, want %q", Tool, "beautifhy")
	}
	if Tagline == "" {
		t.Error("Tagline should not be empty")
	}
}

func TestVersionCanBeOverridden(t *testing.T) {
	origVersion := Version
	origGitCommit := GitCommit
	origBuildDate := BuildDate
	defer func() {
		Version = origVersion
		GitCommit = origGitCommit
		BuildDate = origBuildDate
	}()

	// Simulate build-time ldflags.
	Version = "1.2.3"
	GitCommit = "abc123def456"
	BuildDate = "2026-01-15T10:30:00Z"

	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q, want %q", GitCommit, "abc123def456")
	}
	if BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q, want %q", BuildDate, "2026-01-15T10:30:00Z")
	}
}
