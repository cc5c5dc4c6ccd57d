package lexer_test

import (
	"fmt"
	"testing"

	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/lexer"
	"github.com/atisharma/beautifhy/internal/source"
	"github.com/atisharma/beautifhy/internal/token"
)

// testReporter collects every diagnostic emitted by the lexer.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.hy", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	opts := lexer.Options{Reporter: reporter}
	lx := lexer.New(file, opts)

	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nErrors: %v",
			len(expected), len(tokens), input, reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Input %q: expected kind %v, got %v", input, expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Input %q: expected text %q, got %q", input, expectedText, tok.Text)
	}
}

func TestDelimiters(t *testing.T) {
	expectTokens(t, "()[]{}", []token.Kind{
		token.LParen, token.RParen,
		token.LBracket, token.RBracket,
		token.LBrace, token.RBrace,
	})
	expectTokens(t, "#{1 2}", []token.Kind{
		token.HashLBrace, token.Number, token.Number, token.RBrace,
	})
}

func TestSugarPrefixes(t *testing.T) {
	expectTokens(t, "'x", []token.Kind{token.Quote, token.Symbol})
	expectTokens(t, "`x", []token.Kind{token.Quasiquote, token.Symbol})
	expectTokens(t, "~x", []token.Kind{token.Unquote, token.Symbol})
	expectTokens(t, "~@x", []token.Kind{token.UnquoteSplice, token.Symbol})
	expectTokens(t, "#* args", []token.Kind{token.UnpackIterable, token.Symbol})
	expectTokens(t, "#** kwargs", []token.Kind{token.UnpackMapping, token.Symbol})
	expectTokens(t, "#^ int x", []token.Kind{token.Annotate, token.Symbol, token.Symbol})
	expectTokens(t, "'(a b)", []token.Kind{
		token.Quote, token.LParen, token.Symbol, token.Symbol, token.RParen,
	})
}

func TestTagMacro(t *testing.T) {
	expectSingleToken(t, "#inc", token.TagMacro, "#inc")
	expectSingleToken(t, "#tag-with-dash x", token.TagMacro, "#tag-with-dash")
	expectTokens(t, "#t (a)", []token.Kind{
		token.TagMacro, token.LParen, token.Symbol, token.RParen,
	})
}

func TestBadDispatch(t *testing.T) {
	for _, input := range []string{"#", "#)", "# x", "#("} {
		lx, reporter := makeTestLexer(input)
		tok := lx.Next()
		if tok.Kind != token.Invalid {
			t.Errorf("Input %q: expected Invalid, got %v", input, tok.Kind)
		}
		if !reporter.HasErrors() {
			t.Errorf("Input %q: expected a diagnostic", input)
		}
		if len(reporter.diagnostics) > 0 && reporter.diagnostics[0].Code != diag.LexBadDispatch {
			t.Errorf("Input %q: expected LexBadDispatch, got %v", input, reporter.diagnostics[0].Code)
		}
	}
}

func TestSymbols(t *testing.T) {
	symbols := []string{
		"foo", "foo-bar", "foo?", "foo!", "+", "-", "*", "**", "/",
		"->", "->>", "=", "!=", "<", "<=", "a.b.c", "Foo.Bar",
		"αβ", "var#2", "...", "1.2.3", "1x", "--1",
	}
	for _, s := range symbols {
		expectSingleToken(t, s, token.Symbol, s)
	}
}

func TestKeywordLiterals(t *testing.T) {
	for _, s := range []string{":foo", ":foo-bar", ":", "::", ":123"} {
		expectSingleToken(t, s, token.Keyword, s)
	}
}

func TestNumbers(t *testing.T) {
	numbers := []string{
		"0", "7", "42", "1_000_000",
		"-1", "+1", "-12.5",
		"0x10", "0Xff", "0o17", "0b1010",
		"1.0", "1.", ".5", "1e3", "1E-3", "1.5e+10",
		"1j", "2.5J", "1e3j",
	}
	for _, s := range numbers {
		expectSingleToken(t, s, token.Number, s)
	}

	notNumbers := []string{"1.2.3", "0x", "0b", "1e", "1e+", "+", "-", ".", "1__2x", "12abc"}
	for _, s := range notNumbers {
		expectSingleToken(t, s, token.Symbol, s)
	}
}

func TestStrings(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.String, `"hello"`)
	expectSingleToken(t, `""`, token.String, `""`)
	expectSingleToken(t, `"a\nb"`, token.String, `"a\nb"`)
	expectSingleToken(t, `"say \"hi\""`, token.String, `"say \"hi\""`)

	// literal newlines stay inside the token
	expectSingleToken(t, "\"line one\nline two\"", token.String, "\"line one\nline two\"")
}

func TestPrefixedStrings(t *testing.T) {
	expectSingleToken(t, `f"x is {x}"`, token.String, `f"x is {x}"`)
	expectSingleToken(t, `b"bytes"`, token.String, `b"bytes"`)
	expectSingleToken(t, `r"raw\d+"`, token.String, `r"raw\d+"`)
	expectSingleToken(t, `rb"both\x"`, token.String, `rb"both\x"`)

	// a word that merely starts with a prefix letter is still a symbol
	expectSingleToken(t, "flag", token.Symbol, "flag")
	expectSingleToken(t, "br", token.Symbol, "br")
}

func TestUnterminatedString(t *testing.T) {
	lx, reporter := makeTestLexer(`"no end`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("Expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("Expected a diagnostic for unterminated string")
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("Expected LexUnterminatedString, got %v", reporter.diagnostics[0].Code)
	}
}

func TestInvalidEscape(t *testing.T) {
	lx, reporter := makeTestLexer(`"bad \q escape"`)
	tok := lx.Next()
	// the scan still completes to the closing quote
	if tok.Kind != token.String {
		t.Errorf("Expected String, got %v", tok.Kind)
	}
	if tok.Text != `"bad \q escape"` {
		t.Errorf("Expected full text, got %q", tok.Text)
	}
	if len(reporter.diagnostics) != 1 || reporter.diagnostics[0].Code != diag.LexInvalidEscape {
		t.Errorf("Expected one LexInvalidEscape, got %v", reporter.ErrorMessages())
	}

	// raw strings skip escape validation
	lx2, reporter2 := makeTestLexer(`r"bad \q escape"`)
	if tok2 := lx2.Next(); tok2.Kind != token.String {
		t.Errorf("Expected String, got %v", tok2.Kind)
	}
	if reporter2.HasErrors() {
		t.Errorf("Raw string should not report escapes: %v", reporter2.ErrorMessages())
	}
}

func TestValidEscapes(t *testing.T) {
	inputs := []string{
		`"\x41"`, `"A"`, `"\U00000041"`, `"\101"`, `"\0"`,
		`"\N{GREEK SMALL LETTER ALPHA}"`, `"\\"`, `"\""`, `"\t\r\n\v\f\a\b"`,
	}
	for _, in := range inputs {
		lx, reporter := makeTestLexer(in)
		tok := lx.Next()
		if tok.Kind != token.String {
			t.Errorf("Input %q: expected String, got %v", in, tok.Kind)
		}
		if reporter.HasErrors() {
			t.Errorf("Input %q: unexpected errors %v", in, reporter.ErrorMessages())
		}
	}
}

func TestLeadingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("  ; comment\n\n  foo")
	tok := lx.Next()

	if tok.Kind != token.Symbol || tok.Text != "foo" {
		t.Fatalf("Expected symbol foo, got %v %q", tok.Kind, tok.Text)
	}

	kinds := make([]token.TriviaKind, 0, len(tok.Leading))
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{
		token.TriviaSpace,
		token.TriviaLineComment,
		token.TriviaNewline,
		token.TriviaSpace,
	}
	if len(kinds) != len(want) {
		t.Fatalf("Expected %d trivia, got %d: %v", len(want), len(kinds), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Trivia %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}

	if tok.Leading[1].Text != "; comment" {
		t.Errorf("Comment trivia text = %q, want %q", tok.Leading[1].Text, "; comment")
	}
	if tok.Leading[2].NewlineCount() != 2 {
		t.Errorf("Newline run count = %d, want 2", tok.Leading[2].NewlineCount())
	}
}

func TestNewlineCoalescing(t *testing.T) {
	lx, _ := makeTestLexer("a\n\n\nb")
	a := lx.Next()
	b := lx.Next()
	if a.Text != "a" || b.Text != "b" {
		t.Fatalf("unexpected tokens %q %q", a.Text, b.Text)
	}
	if len(b.Leading) != 1 || b.Leading[0].Kind != token.TriviaNewline {
		t.Fatalf("expected one newline trivia, got %v", b.Leading)
	}
	if got := b.Leading[0].NewlineCount(); got != 3 {
		t.Errorf("NewlineCount() = %d, want 3", got)
	}
}

func TestEOFTrivia(t *testing.T) {
	lx, _ := makeTestLexer("foo\n; trailing comment\n")
	if tok := lx.Next(); tok.Text != "foo" {
		t.Fatalf("expected foo, got %q", tok.Text)
	}
	eof := lx.Next()
	if eof.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", eof.Kind)
	}
	var comment *token.Trivia
	for i := range eof.Leading {
		if eof.Leading[i].Kind == token.TriviaLineComment {
			comment = &eof.Leading[i]
		}
	}
	if comment == nil {
		t.Fatal("trailing comment must survive as EOF leading trivia")
	}
	if comment.Text != "; trailing comment" {
		t.Errorf("comment text = %q", comment.Text)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("(a)")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Fatalf("Peek/Next mismatch: %v vs %v", p, n)
	}
	if next := lx.Next(); next.Kind != token.Symbol {
		t.Fatalf("expected Symbol after peeked LParen, got %v", next.Kind)
	}
}

func TestSpans(t *testing.T) {
	lx, _ := makeTestLexer("(defn f)")
	expected := []struct {
		kind       token.Kind
		start, end uint32
	}{
		{token.LParen, 0, 1},
		{token.Symbol, 1, 5},
		{token.Symbol, 6, 7},
		{token.RParen, 7, 8},
	}
	for i, want := range expected {
		tok := lx.Next()
		if tok.Kind != want.kind || tok.Span.Start != want.start || tok.Span.End != want.end {
			t.Errorf("token %d: got %v %d-%d, want %v %d-%d",
				i, tok.Kind, tok.Span.Start, tok.Span.End, want.kind, want.start, want.end)
		}
	}
}

func TestFullForm(t *testing.T) {
	expectTokens(t, `(defn greet [name] (print f"hi {name}"))`, []token.Kind{
		token.LParen, token.Symbol, token.Symbol,
		token.LBracket, token.Symbol, token.RBracket,
		token.LParen, token.Symbol, token.String, token.RParen,
		token.RParen,
	})
	expectTokens(t, "{:key 1 :other 2}", []token.Kind{
		token.LBrace, token.Keyword, token.Number, token.Keyword, token.Number, token.RBrace,
	})
	expectTokens(t, "(setv #^ int x 1)", []token.Kind{
		token.LParen, token.Symbol, token.Annotate, token.Symbol, token.Symbol, token.Number, token.RParen,
	})
}

func TestCommentTerminatesAtNewlineOnly(t *testing.T) {
	lx, _ := makeTestLexer("; all of (this) [is] \"one\" comment")
	eof := lx.Next()
	if eof.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", eof.Kind)
	}
	if len(eof.Leading) != 1 || eof.Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("expected a single comment trivia, got %v", eof.Leading)
	}
}
