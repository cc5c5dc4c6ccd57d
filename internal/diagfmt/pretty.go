// Package diagfmt renders diagnostics and token dumps for terminal and
// machine consumption.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/atisharma/beautifhy/internal/diag"
	"github.com/atisharma/beautifhy/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	noteColor = color.New(color.Faint)
)

// Pretty renders every diagnostic in the bag in source order. Each entry
// prints as
//
//	<path>:<line>:<col>: <SEV> <ID>: <message>
//
// followed by the offending source line and a caret underline, then any
// notes in the same shape. Callers should Sort the bag first.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, &d, fs, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, end := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)
	path := file.FormatPath(opts.PathMode.String(), fs.BaseDir())

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, d.Code.ID(), d.Message)
	writeContext(w, file, start, end, opts.Color, severityColor(d.Severity))

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nstart, nend := fs.Resolve(n.Span)
		nfile := fs.Get(n.Span.File)
		npath := nfile.FormatPath(opts.PathMode.String(), fs.BaseDir())
		label := "note"
		if opts.Color {
			label = noteColor.Sprint(label)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", npath, nstart.Line, nstart.Col, label, n.Msg)
		writeContext(w, nfile, nstart, nend, opts.Color, noteColor)
	}
}

// writeContext prints the start line of the span with a caret underline.
// Tabs in the prefix are preserved so the caret lines up in a terminal.
func writeContext(w io.Writer, file *source.File, start, end source.LineCol, colored bool, c *color.Color) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	if col-1 > len(line) {
		col = len(line) + 1
	}
	if col-1+width > len(line)+1 {
		width = len(line) + 2 - col
		if width < 1 {
			width = 1
		}
	}

	pad := make([]byte, 0, col-1)
	for _, b := range []byte(line[:col-1]) {
		if b == '\t' {
			pad = append(pad, '\t')
		} else {
			pad = append(pad, ' ')
		}
	}
	marker := "^" + strings.Repeat("~", width-1)
	if colored {
		marker = c.Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", pad, marker)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
