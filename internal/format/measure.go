package format

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/atisharma/beautifhy/internal/ast"
)

// flatString renders a form with no internal line breaks. Results are
// memoized per node; the document itself is never mutated.
func (p *printer) flatString(f *ast.Form) string {
	if s, ok := p.flat[f]; ok {
		return s
	}
	var b strings.Builder
	p.writeFlat(&b, f)
	s := b.String()
	p.flat[f] = s
	return s
}

func (p *printer) writeFlat(b *strings.Builder, f *ast.Form) {
	switch {
	case f.Kind == ast.FormComment:
		// Comments never render inline; this exists only so flatString
		// is total.
		b.WriteString(";")
		b.WriteString(f.Text)

	case f.Kind.IsAtom():
		b.WriteString(f.Text)

	case f.Kind.IsSugar():
		b.WriteString(p.sugarPrefix(f))
		p.writeFlat(b, f.Sub)

	default:
		open, closing := f.Kind.Delims()
		b.WriteString(open)
		for i, e := range f.Elems {
			if i > 0 {
				b.WriteByte(' ')
			}
			p.writeFlat(b, e)
		}
		b.WriteString(closing)
	}
}

func (p *printer) flatWidth(f *ast.Form) int {
	return runewidth.StringWidth(p.flatString(f))
}

func (p *printer) sugarPrefix(f *ast.Form) string {
	if f.Kind == ast.FormTagMacro {
		return "#" + f.Text + " "
	}
	return f.Kind.SugarPrefix()
}

// mustBreak reports whether the form can never render on one line: a
// comment anywhere inside it, a string literal spanning lines, or an
// always-break rule on its head.
func (p *printer) mustBreak(f *ast.Form) bool {
	if v, ok := p.broken[f]; ok {
		return v
	}
	v := p.computeMustBreak(f)
	p.broken[f] = v
	return v
}

func (p *printer) computeMustBreak(f *ast.Form) bool {
	switch {
	case f.Kind == ast.FormComment:
		return true

	case f.Kind == ast.FormString:
		return strings.Contains(f.Text, "\n")

	case f.Kind.IsAtom():
		return false

	case f.Kind.IsSugar():
		return p.mustBreak(f.Sub)

	default:
		if r, ok := p.opts.Rules.Lookup(f.HeadSymbol()); ok && r.AlwaysBreak {
			return true
		}
		for _, e := range f.Elems {
			if len(e.Leading) > 0 || e.Trailing != nil || p.mustBreak(e) {
				return true
			}
		}
		return false
	}
}
