// Package parser builds the reader tree: a recursive descent over the
// token stream producing ast.Document with comments and blank runs
// attached. The first error aborts the parse; no partial document is
// ever returned.
package parser

import (
	"github.com/atisharma/beautifhy/internal/ast"
	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/lexer"
	"github.com/atisharma/beautifhy/internal/source"
	"github.com/atisharma/beautifhy/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

type Result struct {
	Doc *ast.Document
	Bag *diag.Bag
}

// Parser holds the state for one file.
type Parser struct {
	lx     *lexer.Lexer
	fs     *source.FileSet
	opts   Options
	failed bool
}

// ParseDocument is the entry point for one file. It requires a lexer
// already bound to the source.File. On any error Doc is nil and the
// diagnostics explain why.
func ParseDocument(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:   lx,
		fs:   fs,
		opts: opts,
	}

	doc := p.parseItems()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	if p.failed || (bag != nil && bag.HasErrors()) {
		doc = nil
	}
	return Result{Doc: doc, Bag: bag}
}

// parseItems is the top-level loop: forms and free-standing comments
// until EOF.
func (p *Parser) parseItems() *ast.Document {
	doc := &ast.Document{}
	for {
		tok := p.lx.Peek()
		pend := p.splitTrivia(tok.Leading, lastForm(doc.Items), startsForm(tok))
		doc.Items = applyPending(doc.Items, pend)

		if tok.Kind == token.EOF {
			return doc
		}

		form, ok := p.parseForm()
		if !ok {
			return nil
		}
		attachPending(form, pend, len(doc.Items) == 0)
		doc.Items = append(doc.Items, form)
	}
}

// parseForm dispatches on the upcoming token. The caller has already
// consumed that token's leading trivia via splitTrivia.
func (p *Parser) parseForm() (*ast.Form, bool) {
	tok := p.lx.Peek()

	switch {
	case tok.IsAtom():
		p.advance()
		return &ast.Form{Kind: atomKind(tok.Kind), Span: tok.Span, Text: tok.Text}, true

	case tok.IsOpener():
		return p.parseCollection()

	case tok.IsSugar():
		return p.parseSugar()

	case tok.IsCloser():
		p.report(diag.SynUnexpectedCloser, tok.Span, "unexpected closing delimiter "+tok.Text)
		return nil, false

	default:
		// The lexer has already reported what went wrong here.
		p.failed = true
		return nil, false
	}
}

func (p *Parser) advance() token.Token {
	return p.lx.Next()
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	p.failed = true
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	}
}

func (p *Parser) reportNoted(code diag.Code, sp source.Span, msg string, noteSp source.Span, note string) {
	p.failed = true
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, sp, msg).WithNote(noteSp, note).Emit()
	}
}

func atomKind(k token.Kind) ast.FormKind {
	switch k {
	case token.Keyword:
		return ast.FormKeyword
	case token.Number:
		return ast.FormNumber
	case token.String:
		return ast.FormString
	default:
		return ast.FormSymbol
	}
}

// startsForm reports whether the token can begin a form; closers, EOF
// and invalid tokens cannot, so comments before them stay free-standing.
func startsForm(tok token.Token) bool {
	return tok.IsAtom() || tok.IsOpener() || tok.IsSugar()
}

func lastForm(items []*ast.Form) *ast.Form {
	if len(items) == 0 {
		return nil
	}
	return items[len(items)-1]
}
