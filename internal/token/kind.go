package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LParen represents the list opener.
	LParen // (
	// RParen represents the list closer.
	RParen // )
	// LBracket represents the vector opener.
	LBracket // [
	// RBracket represents the vector closer.
	RBracket // ]
	// LBrace represents the map opener.
	LBrace // {
	// RBrace represents the map and set closer.
	RBrace // }
	// HashLBrace represents the set opener.
	HashLBrace // #{

	// Quote represents the quote prefix.
	Quote // '
	// Quasiquote represents the quasiquote prefix.
	Quasiquote // `
	// Unquote represents the unquote prefix.
	Unquote // ~
	// UnquoteSplice represents the unquote-splice prefix.
	UnquoteSplice // ~@
	// UnpackIterable represents the iterable unpacking prefix.
	UnpackIterable // #*
	// UnpackMapping represents the mapping unpacking prefix.
	UnpackMapping // #**
	// Annotate represents the annotation prefix.
	Annotate // #^
	// TagMacro represents a tag macro application (# plus a name).
	TagMacro // #name

	// Symbol represents a symbol atom.
	Symbol
	// Keyword represents a keyword literal (:name).
	Keyword
	// Number represents a numeric literal, preserved verbatim.
	Number
	// String represents a string literal, prefixes and newlines included.
	String
)

var kindNames = [...]string{
	Invalid:        "Invalid",
	EOF:            "EOF",
	LParen:         "LParen",
	RParen:         "RParen",
	LBracket:       "LBracket",
	RBracket:       "RBracket",
	LBrace:         "LBrace",
	RBrace:         "RBrace",
	HashLBrace:     "HashLBrace",
	Quote:          "Quote",
	Quasiquote:     "Quasiquote",
	Unquote:        "Unquote",
	UnquoteSplice:  "UnquoteSplice",
	UnpackIterable: "UnpackIterable",
	UnpackMapping:  "UnpackMapping",
	Annotate:       "Annotate",
	TagMacro:       "TagMacro",
	Symbol:         "Symbol",
	Keyword:        "Keyword",
	Number:         "Number",
	String:         "String",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Closer returns the closing kind matching an opener, or Invalid.
func (k Kind) Closer() Kind {
	switch k {
	case LParen:
		return RParen
	case LBracket:
		return RBracket
	case LBrace, HashLBrace:
		return RBrace
	default:
		return Invalid
	}
}
