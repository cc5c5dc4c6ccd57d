package lexer

// Word bytes are everything that does not terminate a word: whitespace,
// delimiters, the comment and string introducers, and the quoting prefixes.
// '#' mid-word stays part of the word; only a leading '#' dispatches.
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

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func isOctal(b byte) bool  { return b >= '0' && b <= '7' }
func isBinary(b byte) bool { return b == '0' || b == '1' }
