package parser

import (
	"strings"

	"github.com/atisharma/beautifhy/internal/ast"
	"github.com/atisharma/beautifhy/internal/token"
)

// pendingTrivia is the interpretation of one trivia run: a trailing
// comment for the previous sibling, free-standing comment items, and a
// leading run plus blank count for the form that follows.
type pendingTrivia struct {
	trailing *ast.Comment
	free     []*ast.Form
	leading  []ast.Comment
	blanks   int
}

// splitTrivia assigns the trivia run before a token.
//
// A comment with no newline since the previous sibling is that sibling's
// trailing comment. A contiguous run of comment lines with no blank line
// before the next form becomes that form's leading run. Everything else
// is a free-standing comment item. Blank lines (two or more consecutive
// newlines) separate siblings and are recorded on the later one.
func (p *Parser) splitTrivia(trivia []token.Trivia, prev *ast.Form, nextStartsForm bool) pendingTrivia {
	type entry struct {
		c        ast.Comment
		blanks   int
		sameLine bool
	}

	var entries []entry
	nl := 0
	for _, t := range trivia {
		switch t.Kind {
		case token.TriviaSpace:
			// irrelevant between lines
		case token.TriviaNewline:
			nl += t.NewlineCount()
		case token.TriviaLineComment:
			entries = append(entries, entry{
				c:        ast.Comment{Text: strings.TrimPrefix(t.Text, ";"), Span: t.Span},
				blanks:   max(nl-1, 0),
				sameLine: nl == 0,
			})
			nl = 0
		}
	}

	var pend pendingTrivia

	if len(entries) > 0 && entries[0].sameLine && prev != nil && prev.Kind != ast.FormComment {
		c := entries[0].c
		pend.trailing = &c
		entries = entries[1:]
	}

	if nextStartsForm && nl <= 1 && len(entries) > 0 {
		// The leading run is the maximal contiguous suffix of comments.
		start := len(entries) - 1
		for start > 0 && entries[start].blanks == 0 {
			start--
		}
		for _, e := range entries[:start] {
			pend.free = append(pend.free, freeComment(e.c, e.blanks))
		}
		pend.blanks = entries[start].blanks
		for _, e := range entries[start:] {
			pend.leading = append(pend.leading, e.c)
		}
		return pend
	}

	for _, e := range entries {
		pend.free = append(pend.free, freeComment(e.c, e.blanks))
	}
	pend.blanks = max(nl-1, 0)
	return pend
}

func freeComment(c ast.Comment, blanks int) *ast.Form {
	return &ast.Form{
		Kind:         ast.FormComment,
		Span:         c.Span,
		Text:         c.Text,
		BlanksBefore: blanks,
	}
}

// applyPending attaches the trailing comment to the previous sibling and
// appends the free-standing comments.
func applyPending(items []*ast.Form, pend pendingTrivia) []*ast.Form {
	if pend.trailing != nil && len(items) > 0 {
		items[len(items)-1].Trailing = pend.trailing
	}
	for i, free := range pend.free {
		if len(items) == 0 && i == 0 {
			free.BlanksBefore = 0
		}
		items = append(items, free)
	}
	return items
}

// attachPending moves the leading run and blank count onto a freshly
// parsed form. Blanks before the first item of a container are dropped.
func attachPending(form *ast.Form, pend pendingTrivia, first bool) {
	form.Leading = append(form.Leading, pend.leading...)
	if first {
		form.BlanksBefore = 0
	} else {
		form.BlanksBefore = pend.blanks
	}
}
