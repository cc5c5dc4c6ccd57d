package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/atisharma/beautifhy/internal/driver"
	"github.com/atisharma/beautifhy/internal/highlight"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	contStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type model struct {
	ta       textarea.Model
	comp     *completer
	hist     *history
	histPath string
	fmtOpts  driver.FormatOptions
	style    highlight.StyleFunc
	status   string
	width    int
	quitting bool
}

func newModel(opts Options) *model {
	ta := textarea.New()
	ta.Placeholder = "enter a form"
	ta.Prompt = promptStyle.Render("hy> ")
	ta.ShowLineNumbers = false
	ta.SetHeight(1)
	ta.Focus()

	return &model{
		ta:       ta,
		comp:     newCompleter(opts.Rules),
		hist:     loadHistory(opts.HistoryPath),
		histPath: opts.HistoryPath,
		fmtOpts: driver.FormatOptions{
			Width: opts.Width,
			Rules: opts.Rules,
		},
		style: opts.Style,
		width: 80,
	}
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.ta.SetWidth(msg.Width - 1)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.quitting = true
			m.hist.Save(m.histPath)
			return m, tea.Quit

		case tea.KeyEnter:
			return m.submitOrContinue()

		case tea.KeyTab:
			m.complete()
			return m, nil

		case tea.KeyUp:
			if m.ta.LineCount() <= 1 {
				if prev, ok := m.hist.Prev(m.ta.Value()); ok {
					m.setBuffer(prev)
				}
				return m, nil
			}

		case tea.KeyDown:
			if m.ta.LineCount() <= 1 {
				if next, ok := m.hist.Next(); ok {
					m.setBuffer(next)
				}
				return m, nil
			}
		}
	}

	m.status = ""
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	m.syncHeight()
	return m, cmd
}

// submitOrContinue formats a complete buffer into the scrollback, or
// grows the buffer by a line when delimiters are still open.
func (m *model) submitOrContinue() (tea.Model, tea.Cmd) {
	input := m.ta.Value()
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	if !highlight.IsComplete(input) {
		var cmd tea.Cmd
		m.ta, cmd = m.ta.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m.syncHeight()
		m.status = contStyle.Render("...")
		return m, cmd
	}

	m.hist.Append(input)
	m.comp.Observe(input)
	m.ta.Reset()
	m.syncHeight()
	m.status = ""

	out := m.renderInput(input)
	return m, tea.Println(out)
}

// renderInput produces the scrollback block for one submission: the
// formatted, highlighted text, or the parse error in the standard
// "<kind> at <line>:<col>" shape.
func (m *model) renderInput(input string) string {
	formatted, perr := driver.FormatSource("<repl>", []byte(input), m.fmtOpts)
	if perr != nil {
		return errStyle.Render(perr.Error())
	}

	text := strings.TrimRight(string(formatted), "\n")
	if m.style == nil {
		return text
	}
	var b strings.Builder
	if err := highlight.Render(&b, text, m.style); err != nil {
		return text
	}
	return b.String()
}

// complete extends the word behind the cursor by the common prefix of
// its candidates, listing them in the status line when ambiguous.
func (m *model) complete() {
	head, word := currentWord(m.ta.Value())
	if word == "" {
		return
	}
	candidates := m.comp.Complete(word)
	if len(candidates) == 0 {
		return
	}

	if ext := commonPrefix(candidates); len(ext) > len(word) {
		m.setBuffer(head + ext)
	}
	if len(candidates) > 1 {
		m.status = statusStyle.Render(truncateStatus(strings.Join(candidates, "  "), m.width))
	}
}

func (m *model) setBuffer(text string) {
	m.ta.SetValue(text)
	m.ta.CursorEnd()
	m.syncHeight()
}

func (m *model) syncHeight() {
	h := m.ta.LineCount()
	if h < 1 {
		h = 1
	}
	if h > 10 {
		h = 10
	}
	m.ta.SetHeight(h)
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	view := m.ta.View()
	if m.status != "" {
		view += "\n" + m.status
	}
	return view
}

func truncateStatus(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-1, "…")
}
