// Package format renders a parsed document back to canonical text at a
// configured maximum width. Rendering is total over any well-formed
// document: per form it either fits on the current line or breaks per
// the head symbol's layout rule.
package format

import (
	"github.com/atisharma/beautifhy/internal/ast"
	"github.com/atisharma/beautifhy/internal/rules"
)

type Options struct {
	// Width is the maximum line width; 80 when unset.
	Width int
	// Rules is the layout rule table; the built-in default when unset.
	Rules *rules.Table
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 80
	}
	if o.Rules == nil {
		o.Rules = rules.Default()
	}
	return o
}

type printer struct {
	w      *Writer
	opts   Options
	flat   map[*ast.Form]string
	broken map[*ast.Form]bool
}

// Render produces the canonical text for a document. Blank runs collapse
// to exactly one empty line; comments print verbatim in their recorded
// positions.
func Render(doc *ast.Document, opts Options) []byte {
	if doc == nil {
		return nil
	}
	p := printer{
		w:      NewWriter(1024),
		opts:   opts.withDefaults(),
		flat:   make(map[*ast.Form]string),
		broken: make(map[*ast.Form]bool),
	}

	for i, item := range doc.Items {
		if i > 0 && item.BlanksBefore > 0 {
			p.w.BlankLine()
		}
		p.printLeading(item.Leading, 0)
		p.printForm(item, false)
		p.printTrailing(item.Trailing)
		p.w.EndLine()
	}
	return p.w.Bytes()
}

func (p *printer) printLeading(comments []ast.Comment, col int) {
	for _, c := range comments {
		p.w.Pad(col)
		p.w.WriteString(";" + c.Text)
		p.w.EndLine()
	}
}

func (p *printer) printTrailing(c *ast.Comment) {
	if c != nil {
		p.w.WriteString(" ;" + c.Text)
	}
}

// printForm renders one form at the current column. pairwise asks a
// breaking vector or map to lay its elements out two per line.
func (p *printer) printForm(f *ast.Form, pairwise bool) {
	switch {
	case f.Kind == ast.FormComment:
		p.w.WriteString(";" + f.Text)

	case f.Kind.IsAtom():
		p.w.WriteString(f.Text)

	case f.Kind.IsSugar():
		p.w.WriteString(p.sugarPrefix(f))
		p.printForm(f.Sub, pairwise)

	default:
		p.printCollection(f, pairwise)
	}
}

func (p *printer) printCollection(f *ast.Form, pairwise bool) {
	// Once past the margin no break can help, so render flat.
	col := p.w.Column()
	if !p.mustBreak(f) && (col+p.flatWidth(f) <= p.opts.Width || col >= p.opts.Width) {
		p.w.WriteString(p.flatString(f))
		return
	}
	p.printBroken(f, pairwise)
}

// ruleFor picks the layout rule for a breaking collection. Untabled
// symbol heads align the body one column past the open delimiter;
// anything else indents by the delimiter width, which keeps vector and
// set elements aligned with their first entry.
func (p *printer) ruleFor(f *ast.Form, pairwise bool) rules.Rule {
	switch f.Kind {
	case ast.FormList:
		if head := f.HeadSymbol(); head != "" {
			if r, ok := p.opts.Rules.Lookup(head); ok {
				return r
			}
			return rules.Rule{BodyIndent: 1, PairwiseArg: -1}
		}
		return rules.Rule{BodyIndent: 2, PairwiseArg: -1}
	case ast.FormVector:
		return rules.Rule{BodyIndent: 1, Pairwise: pairwise, PairwiseArg: -1}
	case ast.FormSet:
		return rules.Rule{BodyIndent: 2, PairwiseArg: -1}
	default: // map
		return rules.Rule{BodyIndent: 1, Pairwise: true, PairwiseArg: -1}
	}
}

func (p *printer) printBroken(f *ast.Form, pairwise bool) {
	openCol := p.w.Column()
	open, closing := f.Kind.Delims()
	p.w.WriteString(open)

	rule := p.ruleFor(f, pairwise)
	bodyCol := openCol + rule.BodyIndent
	elems := f.Elems

	idx := 0
	lineOpen := true // still writing on the opening line

	// The first element stays on the opening line when nothing forces it
	// down; for lists this is the head.
	if len(elems) > 0 && headStaysInline(elems[0]) {
		p.printForm(elems[0], rule.PairwiseArg == 0)
		p.printTrailing(elems[0].Trailing)
		lineOpen = elems[0].Trailing == nil
		idx = 1

		// Ruled forms keep a fixed number of arguments with the head.
		// Clause styles pin that count regardless of what the rule says
		// otherwise: cond clauses all break, case keeps the scrutinee.
		// Pairwise containers complete the first pair instead, so the
		// grouping parity survives.
		inline := rule.InlineHeadArgs
		switch {
		case rule.Clause == rules.ClauseCond:
			inline = 0
		case rule.Clause == rules.ClauseCase:
			inline = 1
		case rule.Pairwise && f.Kind != ast.FormList:
			inline = 1
		}
		for n := 0; n < inline && idx < len(elems) && lineOpen; n++ {
			e := elems[idx]
			if !headStaysInline(e) || e.BlanksBefore > 0 {
				break
			}
			p.w.Space()
			p.printForm(e, rule.PairwiseArg == idx)
			p.printTrailing(e.Trailing)
			lineOpen = e.Trailing == nil
			idx++
		}
	}

	var lastBroke bool
	if rule.Pairwise {
		lastBroke = p.printPairs(elems, idx, bodyCol)
	} else {
		lastBroke = p.printBody(elems, idx, bodyCol, rule.PairwiseArg)
	}

	needOwnLine := lastBroke || (idx == len(elems) && !lineOpen)
	if needOwnLine {
		p.w.EndLine()
		p.w.Pad(bodyCol)
	}
	p.w.WriteString(closing)
}

// printBody renders remaining elements one per line at the body column.
// It reports whether the closer needs its own line.
func (p *printer) printBody(elems []*ast.Form, idx, bodyCol, pairwiseArg int) bool {
	commentLast := false
	for ; idx < len(elems); idx++ {
		e := elems[idx]
		p.w.EndLine()
		if e.BlanksBefore > 0 {
			p.w.BlankLine()
		}
		p.printLeading(e.Leading, bodyCol)
		p.w.Pad(bodyCol)
		p.printForm(e, pairwiseArg == idx)
		p.printTrailing(e.Trailing)
		commentLast = e.Kind == ast.FormComment || e.Trailing != nil
	}
	return commentLast
}

// printPairs renders remaining elements two per line, the second column
// aligned to the widest flat first entry.
func (p *printer) printPairs(elems []*ast.Form, idx, bodyCol int) bool {
	col1 := 0
	for i := idx; i < len(elems); i += 2 {
		if w := p.flatWidth(elems[i]); w > col1 && !p.mustBreak(elems[i]) {
			col1 = w
		}
	}

	commentLast := false
	for i := idx; i < len(elems); i++ {
		e := elems[i]
		first := (i-idx)%2 == 0
		if first || commentLast {
			p.w.EndLine()
			if e.BlanksBefore > 0 {
				p.w.BlankLine()
			}
			p.printLeading(e.Leading, bodyCol)
			p.w.Pad(bodyCol)
		} else {
			if len(e.Leading) > 0 {
				// A commented value cannot share its key's line.
				p.w.EndLine()
				p.printLeading(e.Leading, bodyCol)
				p.w.Pad(bodyCol)
			} else if p.w.Column() > bodyCol+col1 {
				p.w.Space()
			} else {
				p.w.Pad(bodyCol + col1 + 1)
			}
		}
		p.printForm(e, false)
		p.printTrailing(e.Trailing)
		commentLast = e.Kind == ast.FormComment || e.Trailing != nil
	}
	return commentLast
}

// headStaysInline reports whether an element may share the opening line:
// nothing printed above it and it is not itself a comment line.
func headStaysInline(f *ast.Form) bool {
	return f.Kind != ast.FormComment && len(f.Leading) == 0
}
