package source

import (
	"os"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.hy", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.hy")
	if !exists {
		t.Error("Expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("Expected latest ID to be %d, got %d", id1, latestID)
	}

	// Re-adding the same path must mint a fresh ID.
	id2 := fs.Add("test.hy", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists = fs.GetLatest("test.hy")
	if !exists {
		t.Error("Expected file to exist after second Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	// The old version stays reachable by its ID.
	file1 := fs.Get(id1)
	if string(file1.Content) != "hello world" {
		t.Errorf("Expected first file content to be 'hello world', got '%s'", string(file1.Content))
	}

	file2 := fs.Get(id2)
	if string(file2.Content) != "hello universe" {
		t.Errorf("Expected second file content to be 'hello universe', got '%s'", string(file2.Content))
	}

	if file1.Path != "test.hy" || file2.Path != "test.hy" {
		t.Error("Expected both files to have the same path")
	}
}

// TestAddVirtualLineIdx checks LineIdx construction through AddVirtual.
func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	// "a\nb\n" puts newlines at offsets 1 and 3.
	id := fs.AddVirtual("a.hy", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Errorf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}

	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestCRLFNormalization(t *testing.T) {
	fs := NewFileSet()

	original := []byte("a\r\nb\r\n")
	normalized, changed := normalizeCRLF(original)

	if !changed {
		t.Error("Expected CRLF normalization to be detected")
	}

	expected := []byte("a\nb\n")
	if string(normalized) != string(expected) {
		t.Errorf("Expected normalized content %q, got %q", string(expected), string(normalized))
	}

	if len(normalized) != len(original)-2 {
		t.Errorf("Expected length %d, got %d", len(original)-2, len(normalized))
	}

	id := fs.Add("test.hy", normalized, FileNormalizedCRLF)
	file := fs.Get(id)

	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("Expected FileNormalizedCRLF flag to be set")
	}
}

func TestBOMRemoval(t *testing.T) {
	fs := NewFileSet()

	bomContent := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	withoutBOM, hadBOM := removeBOM(bomContent)

	if !hadBOM {
		t.Error("Expected BOM to be detected")
	}

	expected := []byte{'x', '\n'}
	if string(withoutBOM) != string(expected) {
		t.Errorf("Expected content without BOM %q, got %q", string(expected), string(withoutBOM))
	}

	id := fs.Add("test.hy", withoutBOM, FileHadBOM)
	file := fs.Get(id)

	if file.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag to be set")
	}
}

// TestResolveUTF8 checks that columns count bytes, not runes.
func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()

	content := []byte("α\n") // α is 2 bytes
	id := fs.AddVirtual("test.hy", content)

	span := Span{File: id, Start: 0, End: 1}
	start, end := fs.Resolve(span)

	expectedStart := LineCol{Line: 1, Col: 1}
	expectedEnd := LineCol{Line: 1, Col: 2}

	if start != expectedStart {
		t.Errorf("Expected start %+v, got %+v", expectedStart, start)
	}

	if end != expectedEnd {
		t.Errorf("Expected end %+v, got %+v", expectedEnd, end)
	}
}

func TestResolveMultiline(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("test.hy", []byte("(a)\n(bb)\n"))

	// "(bb)" starts at offset 4, line 2 col 1.
	span := Span{File: id, Start: 4, End: 8}
	start, end := fs.Resolve(span)

	if want := (LineCol{Line: 2, Col: 1}); start != want {
		t.Errorf("Expected start %+v, got %+v", want, start)
	}
	if want := (LineCol{Line: 2, Col: 5}); end != want {
		t.Errorf("Expected end %+v, got %+v", want, end)
	}
}

func TestEdgeCases(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.AddVirtual("empty.hy", []byte{})
	file1 := fs.Get(id1)
	if len(file1.LineIdx) != 0 {
		t.Errorf("Expected empty LineIdx for empty file, got length %d", len(file1.LineIdx))
	}

	id2 := fs.AddVirtual("no_newlines.hy", []byte("hello"))
	file2 := fs.Get(id2)
	if len(file2.LineIdx) != 0 {
		t.Errorf("Expected empty LineIdx for file without newlines, got length %d", len(file2.LineIdx))
	}

	id3 := fs.AddVirtual("only_newline.hy", []byte("\n"))
	file3 := fs.Get(id3)
	if len(file3.LineIdx) != 1 || file3.LineIdx[0] != 0 {
		t.Errorf("Expected LineIdx [0] for file with only newline, got %v", file3.LineIdx)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.hy", []byte("(a)\n(bb)\n(ccc)"))
	file := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "(a)"},
		{2, "(bb)"},
		{3, "(ccc)"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	fs := NewFileSet()
	tempFile, err := os.CreateTemp("", "testdata")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tempFile.Name())

	_, err = tempFile.WriteString("a\nb\n")
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	err = tempFile.Close()
	if err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	fs.Load(tempFile.Name())
	file := fs.Get(0)
	if string(file.Content) != "a\nb\n" {
		t.Errorf("Expected file content 'a\nb\n', got %q", string(file.Content))
	}
	if file.LineIdx[0] != 1 {
		t.Errorf("Expected LineIdx[0] to be 1, got %d", file.LineIdx[0])
	}
	if file.LineIdx[1] != 3 {
		t.Errorf("Expected LineIdx[1] to be 3, got %d", file.LineIdx[1])
	}
}

func TestLoadBOM(t *testing.T) {
	fs := NewFileSet()
	tempFile, err := os.CreateTemp("", "testdata")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tempFile.Name())

	_, err = tempFile.WriteString("\xEF\xBB\xBFa\nb\n")
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	err = tempFile.Close()
	if err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	fs.Load(tempFile.Name())
	file := fs.Get(0)
	if string(file.Content) != "a\nb\n" {
		t.Errorf("Expected file content 'a\nb\n', got %q", string(file.Content))
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag to be set")
	}
}

func TestLoadCRLF(t *testing.T) {
	fs := NewFileSet()
	tempFile, err := os.CreateTemp("", "testdata")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tempFile.Name())

	_, err = tempFile.WriteString("a\r\nb\r\n")
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	err = tempFile.Close()
	if err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	fs.Load(tempFile.Name())
	file := fs.Get(0)
	if string(file.Content) != "a\nb\n" {
		t.Errorf("Expected file content 'a\nb\n', got %q", string(file.Content))
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("Expected FileNormalizedCRLF flag to be set")
	}
}
