package parser

import (
	"github.com/atisharma/beautifhy/internal/ast"
	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/token"
)

// parseCollection parses one delimited form. The opener has not been
// consumed yet.
func (p *Parser) parseCollection() (*ast.Form, bool) {
	open := p.advance()
	closer := open.Kind.Closer()

	var elems []*ast.Form
	for {
		tok := p.lx.Peek()
		pend := p.splitTrivia(tok.Leading, lastForm(elems), startsForm(tok))
		elems = applyPending(elems, pend)

		if tok.Kind == token.EOF {
			p.report(diag.SynUnterminatedForm, open.Span, "unterminated form opened with "+open.Text)
			return nil, false
		}

		if tok.IsCloser() {
			if tok.Kind != closer {
				p.reportNoted(diag.SynUnexpectedCloser, tok.Span,
					"mismatched closing delimiter "+tok.Text,
					open.Span, "form opened here")
				return nil, false
			}
			p.advance()
			form := &ast.Form{
				Kind:  collectionKind(open.Kind),
				Span:  open.Span.Cover(tok.Span),
				Elems: elems,
			}
			canonicalizeSugar(form)
			return form, true
		}

		sub, ok := p.parseForm()
		if !ok {
			return nil, false
		}
		attachPending(sub, pend, len(elems) == 0)
		elems = append(elems, sub)
	}
}

// parseSugar parses a reader-macro prefix applied to the next form. The
// payload's leading comments hoist onto the sugar node so the prefix and
// its form stay one unit.
func (p *Parser) parseSugar() (*ast.Form, bool) {
	prefix := p.advance()

	next := p.lx.Peek()
	pend := p.splitTrivia(next.Leading, nil, startsForm(next))

	if !startsForm(next) {
		p.report(diag.SynInvalidSugar, prefix.Span, prefix.Text+" must be followed by a form")
		return nil, false
	}

	sub, ok := p.parseForm()
	if !ok {
		return nil, false
	}

	form := &ast.Form{
		Kind: sugarKind(prefix.Kind),
		Span: prefix.Span.Cover(sub.Span),
		Sub:  sub,
	}
	if prefix.Kind == token.TagMacro {
		form.Text = prefix.Text[1:] // drop the '#'
	}

	// Hoist comments between the prefix and the payload.
	for _, free := range pend.free {
		form.Leading = append(form.Leading, ast.Comment{Text: free.Text, Span: free.Span})
	}
	form.Leading = append(form.Leading, pend.leading...)
	return form, true
}

func collectionKind(k token.Kind) ast.FormKind {
	switch k {
	case token.LParen:
		return ast.FormList
	case token.LBracket:
		return ast.FormVector
	case token.HashLBrace:
		return ast.FormSet
	default:
		return ast.FormMap
	}
}

func sugarKind(k token.Kind) ast.FormKind {
	switch k {
	case token.Quote:
		return ast.FormQuote
	case token.Quasiquote:
		return ast.FormQuasiquote
	case token.Unquote:
		return ast.FormUnquote
	case token.UnquoteSplice:
		return ast.FormUnquoteSplice
	case token.UnpackIterable:
		return ast.FormUnpackIterable
	case token.UnpackMapping:
		return ast.FormUnpackMapping
	case token.Annotate:
		return ast.FormAnnotation
	default:
		return ast.FormTagMacro
	}
}

// sugarHeads maps the spelled-out call names onto their sugar kinds.
var sugarHeads = map[string]ast.FormKind{
	"quote":           ast.FormQuote,
	"quasiquote":      ast.FormQuasiquote,
	"unquote":         ast.FormUnquote,
	"unquote-splice":  ast.FormUnquoteSplice,
	"unpack-iterable": ast.FormUnpackIterable,
	"unpack-mapping":  ast.FormUnpackMapping,
}

// canonicalizeSugar rewrites a two-element call like (quote x) into the
// sugar node 'x. Only the exact arity converts; any other arity keeps
// the plain list, and attached comments block the rewrite since the call
// shape is the only place they can be printed.
func canonicalizeSugar(form *ast.Form) {
	if form.Kind != ast.FormList || len(form.Elems) != 2 {
		return
	}
	head, arg := form.Elems[0], form.Elems[1]
	if head.Kind != ast.FormSymbol || arg.Kind == ast.FormComment {
		return
	}
	kind, ok := sugarHeads[head.Text]
	if !ok {
		return
	}
	if len(head.Leading) > 0 || head.Trailing != nil || len(arg.Leading) > 0 || arg.Trailing != nil {
		return
	}

	form.Kind = kind
	form.Sub = arg
	form.Elems = nil
	arg.BlanksBefore = 0
}
