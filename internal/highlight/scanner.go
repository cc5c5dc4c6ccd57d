package highlight

import (
	"github.com/atisharma/beautifhy/internal/rules"
)

// knownSpecials are special forms without a layout rule of their own.
var knownSpecials = map[string]bool{
	"and": true, "or": true, "not": true, "in": true, "not-in": true,
	"is": true, "is-not": true, "assert": true, "raise": true,
	"return": true, "yield": true, "await": true, "break": true,
	"continue": true, "pass": true, "get": true, "cut": true,
	"eval-when-compile": true, "eval-and-compile": true,
}

// position is the one-token lookback window the classifier keeps.
type position uint8

const (
	posNone    position = iota
	posHead             // right after an open paren
	posDefName          // right after a defining special form
	posDocstr           // right after a definition name
)

// Tokenize classifies the whole input into spans. It never fails: an
// unterminated string or comment extends to the end of input and keeps
// its category, and unmatched closers stay punctuation.
func Tokenize(src string) []Span {
	table := rules.Default()
	var spans []Span
	pos := posNone

	emit := func(start, end int, cat Category) {
		spans = append(spans, Span{Start: start, End: end, Cat: cat})
	}
	emitString := func(start, end int) {
		if pos == posDocstr {
			emit(start, end, CatDocstring)
		} else {
			emit(start, end, CatString)
		}
		pos = posNone
	}

	i := 0
	for i < len(src) {
		b := src[i]
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			i++

		case b == ';':
			j := i
			for j < len(src) && src[j] != '\n' {
				j++
			}
			emit(i, j, CatComment)
			i = j

		case b == '"':
			j, _ := scanString(src, i)
			emitString(i, j)
			i = j

		case b == '(':
			emit(i, i+1, CatPunctuation)
			pos = posHead
			i++

		case b == ')' || b == ']' || b == '}' || b == '[' || b == '{':
			emit(i, i+1, CatPunctuation)
			pos = posNone
			i++

		case b == '\'' || b == '`':
			// Sugar prefixes keep the lookback window; ('foo) still has
			// foo in head position.
			emit(i, i+1, CatReaderMacro)
			i++

		case b == '~':
			j := i + 1
			if j < len(src) && src[j] == '@' {
				j++
			}
			emit(i, j, CatReaderMacro)
			i = j

		case b == '#':
			j := i + 1
			switch {
			case j < len(src) && src[j] == '{':
				emit(i, j+1, CatPunctuation)
				pos = posNone
				i = j + 1
			case j < len(src) && src[j] == '*':
				j++
				if j < len(src) && src[j] == '*' {
					j++
				}
				emit(i, j, CatReaderMacro)
				i = j
			case j < len(src) && src[j] == '^':
				emit(i, j+1, CatReaderMacro)
				i = j + 1
			default:
				for j < len(src) && isWordByte(src[j]) {
					j++
				}
				emit(i, j, CatReaderMacro)
				i = j
			}

		default:
			j := i
			for j < len(src) && isWordByte(src[j]) {
				j++
			}
			word := src[i:j]
			if isStringPrefix(word) && j < len(src) && src[j] == '"' {
				// A prefixed literal like f"..." is one string token.
				j, _ = scanString(src, j)
				emitString(i, j)
				i = j
				continue
			}
			switch {
			case word[0] == ':':
				emit(i, j, CatKeywordLiteral)
				pos = posNone
			case isNumber(word):
				emit(i, j, CatNumber)
				pos = posNone
			case pos == posHead && (table.Has(word) || knownSpecials[word]):
				emit(i, j, CatSpecialForm)
				if rules.IsDefiner(word) {
					pos = posDefName
				} else {
					pos = posNone
				}
			case pos == posDefName:
				emit(i, j, CatDefinitionName)
				pos = posDocstr
			default:
				emit(i, j, CatSymbol)
				pos = posNone
			}
			i = j
		}
	}
	return spans
}

// scanString returns the offset past the literal starting at i and
// whether a closing quote was found before end of input.
func scanString(src string, i int) (end int, closed bool) {
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case '\\':
			j += 2
		case '"':
			return j + 1, true
		default:
			j++
		}
	}
	return len(src), false
}

// IsComplete reports whether every opened delimiter and string scope is
// closed. The interactive editor uses it to decide between submitting
// and continuing a multi-line buffer.
func IsComplete(src string) bool {
	depth := 0
	i := 0
	for i < len(src) {
		switch src[i] {
		case '"':
			j, closed := scanString(src, i)
			if !closed {
				return false
			}
			i = j
		case ';':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case '(', '[', '{':
			depth++
			i++
		case ')', ']', '}':
			// An unmatched closer is an error, not an open scope.
			if depth > 0 {
				depth--
			}
			i++
		default:
			i++
		}
	}
	return depth == 0
}

func isWordByte(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n',
		';', '"',
		'(', ')', '[', ']', '{', '}',
		'\'', '`', '~':
		return false
	default:
		return true
	}
}

func isStringPrefix(word string) bool {
	if len(word) == 0 || len(word) > 2 {
		return false
	}
	for i := 0; i < len(word); i++ {
		switch word[i] {
		case 'b', 'B', 'f', 'F', 'r', 'R':
		default:
			return false
		}
	}
	return true
}

// isNumber is a permissive numeric shape check: sign, digits of any
// base, separators, exponent and imaginary marks. Close enough for
// styling; the reader owns the strict grammar.
func isNumber(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i >= len(s) || !(s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		return false
	}
	for ; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= '0' && b <= '9':
		case b == '_' || b == '.' || b == '+' || b == '-':
		case b == 'x' || b == 'X' || b == 'o' || b == 'O':
		case (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F'):
		case b == 'j' || b == 'J':
		default:
			return false
		}
	}
	return true
}
