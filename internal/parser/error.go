package parser

import (
	"fmt"

	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/source"
)

// ParseError is the public face of a failed parse: the diagnostic kind
// plus a 1-based position. Its Error string is the exact message the CLI
// prints to stderr.
type ParseError struct {
	Kind string
	Line uint32
	Col  uint32
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Kind, e.Line, e.Col)
}

// FirstError converts the first error in the bag into a ParseError, or
// nil when the bag holds no errors.
func FirstError(bag *diag.Bag, fs *source.FileSet) *ParseError {
	if bag == nil || fs == nil {
		return nil
	}
	d, ok := bag.FirstError()
	if !ok {
		return nil
	}
	start, _ := fs.Resolve(d.Primary)
	return &ParseError{
		Kind: d.Code.Title(),
		Line: start.Line,
		Col:  start.Col,
	}
}
