package token

import "github.com/atisharma/beautifhy/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
)

var triviaNames = [...]string{
	TriviaSpace:       "Space",
	TriviaNewline:     "Newline",
	TriviaLineComment: "LineComment",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "Trivia(?)"
}

// Trivia is a run of whitespace or a line comment preceding a token.
// Newline trivia coalesces consecutive newlines; Text keeps the exact
// source bytes so blank-line counts survive.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// NewlineCount returns the number of newlines in a TriviaNewline run,
// and zero for other kinds.
func (t Trivia) NewlineCount() int {
	if t.Kind != TriviaNewline {
		return 0
	}
	n := 0
	for _, b := range []byte(t.Text) {
		if b == '\n' {
			n++
		}
	}
	return n
}
