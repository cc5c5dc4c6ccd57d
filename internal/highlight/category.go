// Package highlight classifies source text into styled spans for
// terminal display. It runs its own single-pass scanner rather than the
// reader, so it stays total on truncated or malformed input and is safe
// to call on every keystroke.
package highlight

// Category is the lexical class of a highlighted span.
type Category uint8

const (
	// CatSymbol is the fallback for ordinary words.
	CatSymbol Category = iota
	// CatPunctuation covers delimiters, matched or not.
	CatPunctuation
	// CatReaderMacro covers sugar prefix characters.
	CatReaderMacro
	// CatSpecialForm is a head symbol with a layout rule or in the known
	// special form list.
	CatSpecialForm
	// CatDefinitionName is the name position after a defining form.
	CatDefinitionName
	// CatString is a string literal, terminated or not.
	CatString
	// CatDocstring is a string in the name-adjacent position of a
	// definition form.
	CatDocstring
	// CatNumber is a numeric literal.
	CatNumber
	// CatKeywordLiteral is a :keyword.
	CatKeywordLiteral
	// CatComment is a line comment.
	CatComment
)

var categoryNames = [...]string{
	CatSymbol:         "symbol",
	CatPunctuation:    "punctuation",
	CatReaderMacro:    "reader-macro",
	CatSpecialForm:    "special-form",
	CatDefinitionName: "definition-name",
	CatString:         "string",
	CatDocstring:      "docstring",
	CatNumber:         "number",
	CatKeywordLiteral: "keyword-literal",
	CatComment:        "comment",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(?)"
}

// Categories lists every category, for theme validation.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

// ParseCategory resolves a category by its configuration name.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), true
		}
	}
	return CatSymbol, false
}

// Span is one classified region of the input, in byte offsets.
type Span struct {
	Start int
	End   int
	Cat   Category
}
