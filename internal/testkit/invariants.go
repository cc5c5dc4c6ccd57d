// Package testkit holds structural checks shared by parser and format
// tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/atisharma/beautifhy/internal/ast"
	"github.com/atisharma/beautifhy/internal/source"
)

// CheckDocumentInvariants runs structural invariants over a parsed
// document:
//  1. every form span is non-empty, in bounds and points at sf
//  2. sibling spans are ordered and child spans are contained in their
//     collection's span
//  3. every sugar form carries a payload
func CheckDocumentInvariants(doc *ast.Document, sf *source.File) error {
	if doc == nil || sf == nil {
		return fmt.Errorf("nil document or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prev source.Span
	for i, item := range doc.Items {
		if err := checkForm(item, sf, lenContent); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if i > 0 && item.Span.Start < prev.End {
			return fmt.Errorf("item %d span %v overlaps previous %v", i, item.Span, prev)
		}
		prev = item.Span
	}
	return nil
}

func checkForm(f *ast.Form, sf *source.File, lenContent uint32) error {
	if f == nil {
		return fmt.Errorf("nil form")
	}
	sp := f.Span
	if sp.End <= sp.Start {
		return fmt.Errorf("empty span %v on %s", sp, f.Kind)
	}
	if sp.File != sf.ID {
		return fmt.Errorf("span file mismatch: got=%d want=%d", sp.File, sf.ID)
	}
	if sp.End > lenContent {
		return fmt.Errorf("span end beyond content: %d > %d", sp.End, lenContent)
	}

	if f.Kind.IsSugar() {
		if f.Sub == nil {
			return fmt.Errorf("%s without payload at %v", f.Kind, sp)
		}
		if err := checkForm(f.Sub, sf, lenContent); err != nil {
			return err
		}
		if f.Sub.Span.Start < sp.Start || f.Sub.Span.End > sp.End {
			return fmt.Errorf("payload span %v escapes %s span %v", f.Sub.Span, f.Kind, sp)
		}
	}

	var prev source.Span
	for i, e := range f.Elems {
		if err := checkForm(e, sf, lenContent); err != nil {
			return err
		}
		if e.Span.Start < sp.Start || e.Span.End > sp.End {
			return fmt.Errorf("child span %v escapes %s span %v", e.Span, f.Kind, sp)
		}
		if i > 0 && e.Span.Start < prev.End {
			return fmt.Errorf("child %d span %v overlaps previous %v", i, e.Span, prev)
		}
		prev = e.Span
	}
	return nil
}
