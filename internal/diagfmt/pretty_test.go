package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/lexer"
	"github.com/atisharma/beautifhy/internal/source"
	"github.com/atisharma/beautifhy/internal/token"
)

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("scratch.hy", []byte("(defn f\n  (print \"oops)\n"))

	bag := diag.NewBag(8)
	d := diag.NewError(diag.LexUnterminatedString, source.Span{File: id, Start: 17, End: 23}, "string literal is never closed")
	d = d.WithNote(source.Span{File: id, Start: 0, End: 1}, "form opened here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	out := buf.String()

	for _, want := range []string{
		"scratch.hy:2:10: ERROR LEX1001: string literal is never closed",
		"  (print \"oops)",
		"^~~~~~",
		"scratch.hy:1:1: note: form opened here",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\ngot:\n%s", want, out)
		}
	}
}

func TestPrettyCaretAlignment(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.hy", []byte("(a b)\n"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynUnexpectedCloser, source.Span{File: id, Start: 3, End: 4}, "no open form"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[2] != "     ^" {
		t.Errorf("caret line = %q", lines[2])
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.hy", []byte("(inc 1)"))
	lx := lexer.New(fs.Get(id), lexer.Options{})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"LParen", `"inc"`, "Number", "at 1:1-1:2"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q\ngot:\n%s", want, out)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.hy", []byte(":k"))
	lx := lexer.New(fs.Get(id), lexer.Options{})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"kind": "Keyword"`) || !strings.Contains(out, `"text": ":k"`) {
		t.Errorf("json dump:\n%s", out)
	}
}
