package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Writer accumulates formatted output while tracking the display column,
// so layout decisions can compare against the configured width. Columns
// are measured in terminal cells, not bytes.
type Writer struct {
	buf         []byte
	col         int
	atLineStart bool
}

// NewWriter creates an empty writer positioned at column zero.
func NewWriter(capacity int) *Writer {
	return &Writer{
		buf:         make([]byte, 0, capacity),
		atLineStart: true,
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Column returns the current 0-based display column.
func (w *Writer) Column() int {
	return w.col
}

// AtLineStart reports whether nothing has been written on the current line.
func (w *Writer) AtLineStart() bool {
	return w.atLineStart
}

// WriteString appends s, updating the column. Embedded newlines (from
// multiline string literals) reset the column like real line ends.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.buf = append(w.buf, s...)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		w.col = runewidth.StringWidth(s[i+1:])
		w.atLineStart = w.col == 0
		return
	}
	w.col += runewidth.StringWidth(s)
	w.atLineStart = false
}

// EndLine terminates the current line unless it is already terminated.
func (w *Writer) EndLine() {
	if !w.atLineStart {
		w.buf = append(w.buf, '\n')
		w.col = 0
		w.atLineStart = true
	}
}

// BlankLine emits one empty line. The current line is terminated first.
func (w *Writer) BlankLine() {
	w.EndLine()
	w.buf = append(w.buf, '\n')
}

// Pad writes spaces until the display column reaches col.
func (w *Writer) Pad(col int) {
	for w.col < col {
		w.buf = append(w.buf, ' ')
		w.col++
		w.atLineStart = false
	}
}

// Space writes a single separating space.
func (w *Writer) Space() {
	w.buf = append(w.buf, ' ')
	w.col++
	w.atLineStart = false
}
