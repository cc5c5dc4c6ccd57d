package token

import (
	"github.com/atisharma/beautifhy/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsAtom reports whether the token is a self-delimiting atom.
func (t Token) IsAtom() bool {
	switch t.Kind {
	case Symbol, Keyword, Number, String:
		return true
	default:
		return false
	}
}

// IsOpener reports whether the token opens a collection.
func (t Token) IsOpener() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace, HashLBrace:
		return true
	default:
		return false
	}
}

// IsCloser reports whether the token closes a collection.
func (t Token) IsCloser() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}

// IsSugar reports whether the token is a reader-macro prefix that must be
// followed by a form.
func (t Token) IsSugar() bool {
	switch t.Kind {
	case Quote, Quasiquote, Unquote, UnquoteSplice,
		UnpackIterable, UnpackMapping, Annotate, TagMacro:
		return true
	default:
		return false
	}
}
