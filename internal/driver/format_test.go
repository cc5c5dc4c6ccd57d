package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/parser"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatPathsCheck(t *testing.T) {
	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.hy", "(inc 1)\n")
	dirty := writeFile(t, dir, "dirty.hy", "( inc   1 )\n")

	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{
		Check:   true,
		NoCache: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results", len(results))
	}

	byPath := map[string]FormatResult{}
	for _, r := range results {
		byPath[r.Path] = r
	}
	if byPath[clean].Changed {
		t.Error("canonical file reported as changed")
	}
	if !byPath[dirty].Changed {
		t.Error("non-canonical file reported as unchanged")
	}

	// Check mode must not touch the file.
	data, err := os.ReadFile(dirty)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "( inc   1 )\n" {
		t.Error("check mode rewrote the file")
	}
}

func TestFormatPathsWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.hy", "(inc    1)")

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{
		Write:   true,
		NoCache: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !results[0].Changed {
		t.Fatal("expected a rewrite")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "(inc 1)\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestFormatPathsParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.hy", "(defn f\n  (print 1)\n")
	good := writeFile(t, dir, "good.hy", "(ok)\n")

	results, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{
		Check:   true,
		NoCache: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	var sawParseErr, sawGood bool
	for _, r := range results {
		if r.Err != nil {
			var perr *parser.ParseError
			if !errors.As(r.Err, &perr) {
				t.Errorf("error for %s is %T, want *parser.ParseError", r.Path, r.Err)
				continue
			}
			if perr.Error() != "unterminated form at 1:1" {
				t.Errorf("message = %q", perr.Error())
			}
			sawParseErr = true
		} else if r.Path == good {
			sawGood = true
		}
	}
	if !sawParseErr {
		t.Error("parse failure not reported")
	}
	if !sawGood {
		t.Error("good file missing from results")
	}
}

func TestFormatPathsParseErrorCarriesDiagnostics(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.hy", "(a)\n(foo\n")

	results, err := FormatPaths(context.Background(), []string{bad}, FormatOptions{
		Check:   true,
		NoCache: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	res := results[0]

	var perr *parser.ParseError
	if !errors.As(res.Err, &perr) {
		t.Fatalf("error is %T, want *parser.ParseError", res.Err)
	}
	// The unterminated opener sits on the second line.
	if got := perr.Error(); got != "unterminated form at 2:1" {
		t.Errorf("message = %q, want %q", got, "unterminated form at 2:1")
	}

	if len(res.Diags) == 0 || res.FileSet == nil {
		t.Fatal("diagnostics not carried in the result")
	}
	short := diag.FormatShortDiagnostics(res.Diags, res.FileSet, false)
	if !strings.HasPrefix(short, "error ") {
		t.Errorf("short rendering lacks the severity: %q", short)
	}
	if !strings.Contains(short, ":2:1") {
		t.Errorf("short rendering lacks the position: %q", short)
	}
}

func TestFormatPathsNoSources(t *testing.T) {
	dir := t.TempDir()
	if _, err := FormatPaths(context.Background(), []string{dir}, FormatOptions{Check: true, NoCache: true}); err == nil {
		t.Error("empty directory accepted")
	}
}

func TestFormatSource(t *testing.T) {
	out, perr := FormatSource("<repl>", []byte("(setv x   1)"), FormatOptions{})
	if perr != nil {
		t.Fatal(perr)
	}
	if string(out) != "(setv x 1)\n" {
		t.Errorf("formatted = %q", out)
	}

	if _, perr := FormatSource("<repl>", []byte("(oops"), FormatOptions{}); perr == nil {
		t.Error("unterminated input formatted without error")
	}
}

func TestFormatWidthOption(t *testing.T) {
	src := "(defn long-function-name [a b c] (+ a b c))\n"
	out, perr := FormatSource("w.hy", []byte(src), FormatOptions{Width: 20})
	if perr != nil {
		t.Fatal(perr)
	}
	want := "(defn long-function-name [a b c]\n  (+ a b c))\n"
	if string(out) != want {
		t.Errorf("formatted at width 20 = %q, want %q", out, want)
	}
}
