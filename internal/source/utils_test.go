package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "file.hy")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}

	target := filepath.Join(baseDir, "nested", "file.hy")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(filepath.Join("nested", "file.hy"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\n" -> newlines at 2 and 5.
	lineIdx := []uint32{2, 5}

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline itself
		{3, LineCol{Line: 2, Col: 1}},
		{5, LineCol{Line: 2, Col: 3}},
		{6, LineCol{Line: 3, Col: 1}},
	}
	for _, tt := range tests {
		if got := toLineCol(lineIdx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}
