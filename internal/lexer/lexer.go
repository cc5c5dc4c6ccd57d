package lexer

import (
	"github.com/atisharma/beautifhy/internal/source"
	"github.com/atisharma/beautifhy/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // accumulated leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it keeps returning EOF. Trailing trivia at the end of the file
// ends up as Leading on the EOF token so comments there are not lost.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
		tok.Leading = lx.hold
		lx.hold = nil
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '(':
		tok = lx.single(token.LParen)
	case ch == ')':
		tok = lx.single(token.RParen)
	case ch == '[':
		tok = lx.single(token.LBracket)
	case ch == ']':
		tok = lx.single(token.RBracket)
	case ch == '{':
		tok = lx.single(token.LBrace)
	case ch == '}':
		tok = lx.single(token.RBrace)

	case ch == '\'':
		tok = lx.single(token.Quote)
	case ch == '`':
		tok = lx.single(token.Quasiquote)
	case ch == '~':
		if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '@' {
			tok = lx.double(token.UnquoteSplice)
		} else {
			tok = lx.single(token.Unquote)
		}

	case ch == '#':
		tok = lx.scanDispatch()

	case ch == '"':
		tok = lx.scanString(lx.cursor.Mark(), false)

	case lx.isPrefixedString():
		tok = lx.scanPrefixedString()

	default:
		tok = lx.scanWord()
	}

	tok.Leading = lx.hold
	lx.hold = nil

	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) single(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) double(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
