package lexer

import "github.com/atisharma/beautifhy/internal/diag"

// ReporterAdapter bridges a diag.Bag into the lexer's Options.
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a diag.Reporter that forwards diagnostics to the adapter's bag.
func (r *ReporterAdapter) Reporter() diag.Reporter {
	return &diag.BagReporter{Bag: r.Bag}
}
