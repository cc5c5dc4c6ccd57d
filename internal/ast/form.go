package ast

import (
	"github.com/atisharma/beautifhy/internal/source"
)

type FormKind uint8

const (
	// Atoms. Text holds the exact source spelling.
	FormSymbol FormKind = iota
	FormKeyword
	FormNumber
	FormString

	// Collections. Elems holds the children in source order.
	FormList
	FormVector
	FormSet
	FormMap

	// Reader-macro sugar. Sub holds the single payload form; FormTagMacro
	// additionally carries the tag name (without '#') in Text.
	FormQuote
	FormQuasiquote
	FormUnquote
	FormUnquoteSplice
	FormUnpackIterable
	FormUnpackMapping
	FormAnnotation
	FormTagMacro

	// FormComment is a free-standing comment line appearing where a form
	// could. Text holds everything after the first ';' verbatim.
	FormComment
)

var formKindNames = [...]string{
	FormSymbol:         "Symbol",
	FormKeyword:        "Keyword",
	FormNumber:         "Number",
	FormString:         "String",
	FormList:           "List",
	FormVector:         "Vector",
	FormSet:            "Set",
	FormMap:            "Map",
	FormQuote:          "Quote",
	FormQuasiquote:     "Quasiquote",
	FormUnquote:        "Unquote",
	FormUnquoteSplice:  "UnquoteSplice",
	FormUnpackIterable: "UnpackIterable",
	FormUnpackMapping:  "UnpackMapping",
	FormAnnotation:     "Annotation",
	FormTagMacro:       "TagMacro",
	FormComment:        "Comment",
}

func (k FormKind) String() string {
	if int(k) < len(formKindNames) {
		return formKindNames[k]
	}
	return "FormKind(?)"
}

// IsAtom reports whether the kind is a leaf atom.
func (k FormKind) IsAtom() bool {
	switch k {
	case FormSymbol, FormKeyword, FormNumber, FormString:
		return true
	default:
		return false
	}
}

// IsCollection reports whether the kind carries Elems.
func (k FormKind) IsCollection() bool {
	switch k {
	case FormList, FormVector, FormSet, FormMap:
		return true
	default:
		return false
	}
}

// IsSugar reports whether the kind carries a Sub payload.
func (k FormKind) IsSugar() bool {
	switch k {
	case FormQuote, FormQuasiquote, FormUnquote, FormUnquoteSplice,
		FormUnpackIterable, FormUnpackMapping, FormAnnotation, FormTagMacro:
		return true
	default:
		return false
	}
}

// Delims returns the delimiter pair for a collection kind.
func (k FormKind) Delims() (open, close string) {
	switch k {
	case FormList:
		return "(", ")"
	case FormVector:
		return "[", "]"
	case FormSet:
		return "#{", "}"
	case FormMap:
		return "{", "}"
	default:
		return "", ""
	}
}

// SugarPrefix returns the printed prefix for a sugar kind. Tag macros are
// rendered from Text and return the empty string here.
func (k FormKind) SugarPrefix() string {
	switch k {
	case FormQuote:
		return "'"
	case FormQuasiquote:
		return "`"
	case FormUnquote:
		return "~"
	case FormUnquoteSplice:
		return "~@"
	case FormUnpackIterable:
		return "#*"
	case FormUnpackMapping:
		return "#**"
	case FormAnnotation:
		return "#^"
	default:
		return ""
	}
}

// Comment is a single line comment. Text excludes the introducing ';' but
// keeps everything after it verbatim, including any further semicolons.
type Comment struct {
	Text string
	Span source.Span
}

// Form is one node of the reader's tree. A form owns its children
// exclusively; nothing in the tree is shared or cyclic.
type Form struct {
	Kind FormKind
	Span source.Span

	// Text is the atom spelling, the tag name for FormTagMacro, or the
	// comment body for FormComment.
	Text string

	// Elems are collection children, in source order.
	Elems []*Form

	// Sub is the payload of a sugar form.
	Sub *Form

	// Leading are the comment lines owned by this form, printed above it.
	Leading []Comment
	// Trailing is a comment on the same line after this form.
	Trailing *Comment
	// BlanksBefore counts the blank lines separating this form from its
	// preceding sibling. The printer collapses any positive count to one.
	BlanksBefore int
}

// Head returns the first element of a list, or nil.
func (f *Form) Head() *Form {
	if f == nil || f.Kind != FormList || len(f.Elems) == 0 {
		return nil
	}
	return f.Elems[0]
}

// HeadSymbol returns the head symbol text of a list, or "".
func (f *Form) HeadSymbol() string {
	h := f.Head()
	if h == nil || h.Kind != FormSymbol {
		return ""
	}
	return h.Text
}

// HasComments reports whether the form or anything inside it carries
// comments. The printer uses this to force multi-line layout so no
// comment can disappear into an inline rendering.
func (f *Form) HasComments() bool {
	if f == nil {
		return false
	}
	if len(f.Leading) > 0 || f.Trailing != nil || f.Kind == FormComment {
		return true
	}
	for _, e := range f.Elems {
		if e.HasComments() {
			return true
		}
	}
	return f.Sub.HasComments()
}

// Document is a parsed source file: top-level forms in source order,
// free-standing comments included.
type Document struct {
	Items []*Form
}
