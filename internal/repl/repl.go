// Package repl implements the interactive formatter loop: input is
// read until its delimiters balance, formatted, highlighted and echoed
// into the terminal scrollback. Nothing is evaluated.
package repl

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atisharma/beautifhy/internal/highlight"
	"github.com/atisharma/beautifhy/internal/rules"
)

// Options configures a repl session.
type Options struct {
	// Width is the formatting width; 80 when zero.
	Width int
	// Rules overrides the built-in layout rule table.
	Rules *rules.Table
	// Style colors the echoed output; nil echoes plain text.
	Style highlight.StyleFunc
	// HistoryPath overrides the history file; empty uses the default
	// resolution ($BEAUTIFHY_HISTORY, then ~/.beautifhy_history).
	HistoryPath string
}

// Run starts the interactive session and blocks until the user exits.
func Run(opts Options) error {
	if opts.HistoryPath == "" {
		opts.HistoryPath = historyPath()
	}
	program := tea.NewProgram(newModel(opts), tea.WithOutput(os.Stdout))
	_, err := program.Run()
	return err
}
