package repl

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/atisharma/beautifhy/internal/highlight"
	"github.com/atisharma/beautifhy/internal/rules"
	"github.com/atisharma/beautifhy/internal/source"
)

// completer indexes completion candidates: every head symbol with a
// layout rule plus every symbol seen in accepted session input. Symbols
// are NFC-normalized so composed and decomposed spellings match.
type completer struct {
	interner *source.Interner
	seen     map[string]bool
}

func newCompleter(table *rules.Table) *completer {
	c := &completer{
		interner: source.NewInterner(),
		seen:     make(map[string]bool),
	}
	if table == nil {
		table = rules.Default()
	}
	for _, name := range table.Names() {
		c.add(name)
	}
	return c
}

func (c *completer) add(word string) {
	word = norm.NFC.String(word)
	if word == "" || c.seen[word] {
		return
	}
	c.seen[word] = true
	c.interner.Intern(word)
}

// Observe harvests symbols and keywords from one accepted input line.
// The highlight scanner is total, so malformed input still contributes.
func (c *completer) Observe(src string) {
	for _, sp := range highlight.Tokenize(src) {
		switch sp.Cat {
		case highlight.CatSymbol, highlight.CatSpecialForm,
			highlight.CatDefinitionName, highlight.CatKeywordLiteral:
			c.add(src[sp.Start:sp.End])
		}
	}
}

// Complete returns candidates extending prefix, sorted. An empty prefix
// completes nothing; the candidate set would be the whole session.
func (c *completer) Complete(prefix string) []string {
	prefix = norm.NFC.String(prefix)
	if prefix == "" {
		return nil
	}
	var out []string
	for _, word := range c.interner.Snapshot() {
		if word != prefix && strings.HasPrefix(word, prefix) {
			out = append(out, word)
		}
	}
	sort.Strings(out)
	return out
}

// commonPrefix returns the longest shared prefix of the candidates.
func commonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}
	p := words[0]
	for _, w := range words[1:] {
		for !strings.HasPrefix(w, p) {
			p = p[:len(p)-1]
			if p == "" {
				return ""
			}
		}
	}
	return p
}

// currentWord splits text into everything before the word under the
// cursor-at-end and the word itself.
func currentWord(text string) (head, word string) {
	i := len(text)
	for i > 0 && isWordChar(text[i-1]) {
		i--
	}
	return text[:i], text[i:]
}

func isWordChar(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n',
		'(', ')', '[', ']', '{', '}',
		'"', ';', '\'', '`', '~', '#':
		return false
	default:
		return true
	}
}
