package lexer

import (
	"github.com/atisharma/beautifhy/internal/token"
)

// scanWord scans a run of word bytes and classifies it. Classification is
// purely lexical: a leading ':' makes a keyword literal, a numeric shape
// makes a number, anything else is a symbol. Words never fail to lex; a
// malformed number like 1.2.3 is simply a symbol.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isWordByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	kind := token.Symbol
	switch {
	case text[0] == ':':
		kind = token.Keyword
	case isNumberShape(text):
		kind = token.Number
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// isNumberShape matches the numeric literal grammar: optional sign, then a
// based integer (0x/0o/0b), or a decimal integer/float with optional
// exponent, optionally made imaginary by a trailing j. Underscore digit
// separators are allowed between digits.
func isNumberShape(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i >= len(s) {
		return false
	}

	// based integers
	if s[i] == '0' && i+1 < len(s) {
		switch s[i+1] {
		case 'x', 'X':
			return allDigits(s[i+2:], isHex)
		case 'o', 'O':
			return allDigits(s[i+2:], isOctal)
		case 'b', 'B':
			return allDigits(s[i+2:], isBinary)
		}
	}

	digitsBefore := false
	for i < len(s) && (isDec(s[i]) || s[i] == '_') {
		if isDec(s[i]) {
			digitsBefore = true
		}
		i++
	}

	digitsAfter := false
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && (isDec(s[i]) || s[i] == '_') {
			if isDec(s[i]) {
				digitsAfter = true
			}
			i++
		}
		if !digitsBefore && !digitsAfter {
			return false
		}
	} else if !digitsBefore {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := false
		for i < len(s) && (isDec(s[i]) || s[i] == '_') {
			if isDec(s[i]) {
				expDigits = true
			}
			i++
		}
		if !expDigits {
			return false
		}
	}

	if i < len(s) && (s[i] == 'j' || s[i] == 'J') {
		i++
	}

	return i == len(s)
}

func allDigits(s string, ok func(byte) bool) bool {
	seen := false
	for i := 0; i < len(s); i++ {
		switch {
		case ok(s[i]):
			seen = true
		case s[i] == '_':
		default:
			return false
		}
	}
	return seen
}
