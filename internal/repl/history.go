package repl

import (
	"os"
	"path/filepath"
	"strings"
)

// historyEnv overrides the history file location.
const historyEnv = "BEAUTIFHY_HISTORY"

const maxHistoryEntries = 1000

// historyPath resolves the history file: $BEAUTIFHY_HISTORY if set,
// otherwise ~/.beautifhy_history. Empty when no home is known.
func historyPath() string {
	if p := os.Getenv(historyEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".beautifhy_history")
}

// history is an in-memory edit history with file persistence. Entries
// are multi-line; on disk each entry is one line with newlines and
// backslashes escaped.
type history struct {
	entries []string
	cursor  int // index into entries while browsing; len(entries) = live line
	pending string
}

func loadHistory(path string) *history {
	h := &history{}
	if path == "" {
		h.cursor = 0
		return h
	}
	data, err := os.ReadFile(path)
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if line == "" {
				continue
			}
			h.entries = append(h.entries, unescapeEntry(line))
		}
	}
	h.cursor = len(h.entries)
	return h
}

// Append records an accepted input and resets browsing.
func (h *history) Append(entry string) {
	if entry != "" && (len(h.entries) == 0 || h.entries[len(h.entries)-1] != entry) {
		h.entries = append(h.entries, entry)
	}
	if len(h.entries) > maxHistoryEntries {
		h.entries = h.entries[len(h.entries)-maxHistoryEntries:]
	}
	h.cursor = len(h.entries)
	h.pending = ""
}

// Prev steps back, stashing the live line on the first step.
func (h *history) Prev(live string) (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	if h.cursor == len(h.entries) {
		h.pending = live
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next steps forward, restoring the stashed live line at the end.
func (h *history) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return h.pending, true
	}
	return h.entries[h.cursor], true
}

// Save writes the history file, creating parent directories as needed.
func (h *history) Save(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var b strings.Builder
	for _, e := range h.entries {
		b.WriteString(escapeEntry(e))
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o600)
}

func escapeEntry(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

func unescapeEntry(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
