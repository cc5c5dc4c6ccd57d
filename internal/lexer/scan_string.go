package lexer

import (
	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/token"
)

// scanString scans a double-quoted literal starting at start (which may
// cover prefix letters already consumed). Literal newlines are allowed;
// strings are opaque atoms and only the delimiters matter. Escapes are
// validated as they go by: a bad escape is reported but the scan continues
// to the closing quote, so one typo does not cascade.
func (lx *Lexer) scanString(start Mark, raw bool) token.Token {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			escStart := lx.cursor.Mark()
			lx.cursor.Bump() // '\'
			if lx.cursor.EOF() {
				break
			}
			if raw {
				// Raw strings keep backslashes verbatim, but a backslash
				// still shields the closing quote.
				lx.cursor.Bump()
				continue
			}
			if !lx.eatEscape() {
				sp := lx.cursor.SpanFrom(escStart)
				lx.errLex(diag.LexInvalidEscape, sp, "invalid escape sequence")
			}
			continue
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// eatEscape consumes one escape payload after the backslash and reports
// whether it was well-formed. The accepted shapes follow Python string
// escapes, since that is what the literal eventually becomes.
func (lx *Lexer) eatEscape() bool {
	b := lx.cursor.Bump()
	switch b {
	case '\n', '\\', '\'', '"', 'a', 'b', 'f', 'n', 'r', 't', 'v':
		return true
	case '0', '1', '2', '3', '4', '5', '6', '7':
		// up to two more octal digits
		for i := 0; i < 2; i++ {
			if c := lx.cursor.Peek(); c >= '0' && c <= '7' {
				lx.cursor.Bump()
			}
		}
		return true
	case 'x':
		return lx.eatHex(2)
	case 'u':
		return lx.eatHex(4)
	case 'U':
		return lx.eatHex(8)
	case 'N':
		if lx.cursor.Peek() != '{' {
			return false
		}
		lx.cursor.Bump()
		for !lx.cursor.EOF() {
			c := lx.cursor.Peek()
			if c == '}' {
				lx.cursor.Bump()
				return true
			}
			if c == '"' || c == '\n' {
				return false
			}
			lx.cursor.Bump()
		}
		return false
	default:
		return false
	}
}

func (lx *Lexer) eatHex(n int) bool {
	for i := 0; i < n; i++ {
		if !isHex(lx.cursor.Peek()) {
			return false
		}
		lx.cursor.Bump()
	}
	return true
}

// isPrefixedString looks ahead for string-prefix letters (b, f, r in any
// case, at most two, no repeats of meaning checked) directly followed by a
// double quote.
func (lx *Lexer) isPrefixedString() bool {
	if !isStringPrefixByte(lx.cursor.Peek()) {
		return false
	}
	if b0, b1, ok := lx.cursor.Peek2(); ok && isStringPrefixByte(b0) {
		if b1 == '"' {
			return true
		}
		if isStringPrefixByte(b1) {
			if _, _, b2, ok3 := lx.cursor.Peek3(); ok3 && b2 == '"' {
				return true
			}
		}
	}
	return false
}

// scanPrefixedString scans literals like f"..." or rb"..." as one token.
func (lx *Lexer) scanPrefixedString() token.Token {
	start := lx.cursor.Mark()
	raw := false
	for isStringPrefixByte(lx.cursor.Peek()) {
		b := lx.cursor.Bump()
		if b == 'r' || b == 'R' {
			raw = true
		}
	}
	return lx.scanString(start, raw)
}

func isStringPrefixByte(b byte) bool {
	switch b {
	case 'b', 'B', 'f', 'F', 'r', 'R':
		return true
	default:
		return false
	}
}
