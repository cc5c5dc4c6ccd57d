package lexer

import (
	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/source"
)

type Options struct {
	Reporter diag.Reporter // may be nil; errors are then dropped but lexing continues
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
