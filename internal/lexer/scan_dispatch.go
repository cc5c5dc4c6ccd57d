package lexer

import (
	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/token"
)

// scanDispatch handles tokens introduced by '#': the set opener #{, the
// unpacking prefixes #* and #**, the annotation prefix #^, and tag macros
// (# followed by a word). Any other continuation is invalid sugar.
func (lx *Lexer) scanDispatch() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	switch b := lx.cursor.Peek(); {
	case b == '{':
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.HashLBrace, Span: sp, Text: lx.text(sp)}

	case b == '*':
		lx.cursor.Bump()
		kind := token.UnpackIterable
		if lx.cursor.Peek() == '*' {
			lx.cursor.Bump()
			kind = token.UnpackMapping
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}

	case b == '^':
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Annotate, Span: sp, Text: lx.text(sp)}

	// Peek reports 0 at EOF, which isWordByte does not exclude; a bare
	// trailing '#' must reach the default arm.
	case !lx.cursor.EOF() && isWordByte(b) && b != '#':
		for !lx.cursor.EOF() && isWordByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.TagMacro, Span: sp, Text: lx.text(sp)}

	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadDispatch, sp, "'#' does not begin a reader form here")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}
