// Package rules holds the layout rule table: a static mapping from head
// symbol to the shape a broken form takes. The printer only reads this
// data; extending the table never touches the layout algorithm.
package rules

// ClauseStyle selects how elements after the head line are grouped.
type ClauseStyle uint8

const (
	// ClauseNone lays remaining elements out one per line.
	ClauseNone ClauseStyle = iota
	// ClauseCond treats every remaining element as an independent clause
	// block (cond). No arguments stay on the head line.
	ClauseCond
	// ClauseCase keeps the scrutinee on the head line and treats the rest
	// as clause blocks (case, match).
	ClauseCase
)

var clauseNames = [...]string{
	ClauseNone: "none",
	ClauseCond: "cond",
	ClauseCase: "case",
}

func (c ClauseStyle) String() string {
	if int(c) < len(clauseNames) {
		return clauseNames[c]
	}
	return "ClauseStyle(?)"
}

// Rule describes the broken (multi-line) layout of one form.
type Rule struct {
	// InlineHeadArgs is how many elements after the head stay on the
	// opening line when the form breaks.
	InlineHeadArgs int
	// BodyIndent is the column offset of broken elements, measured from
	// the open delimiter.
	BodyIndent int
	// Pairwise groups the broken elements two per line with the second
	// column aligned (setv, maps).
	Pairwise bool
	// PairwiseArg is the index of an element (usually a binding vector)
	// that is itself laid out pairwise when it breaks; -1 for none.
	PairwiseArg int
	// Clause selects clause-block grouping for the body.
	Clause ClauseStyle
	// AlwaysBreak forces multi-line layout regardless of width.
	AlwaysBreak bool
}

// Table maps head symbol text to its layout rule.
type Table struct {
	entries map[string]Rule
}

// Lookup returns the rule for a head symbol.
func (t *Table) Lookup(head string) (Rule, bool) {
	if t == nil {
		return Rule{}, false
	}
	r, ok := t.entries[head]
	return r, ok
}

// Has reports whether the head symbol is in the table.
func (t *Table) Has(head string) bool {
	_, ok := t.Lookup(head)
	return ok
}

// Set adds or replaces a rule entry.
func (t *Table) Set(head string, r Rule) {
	if r.PairwiseArg == 0 && !r.Pairwise {
		// Zero-valued configs mean "no pairwise argument".
		r.PairwiseArg = noPairwiseArg(r.PairwiseArg)
	}
	t.entries[head] = r
}

// Names returns the head symbols in the table, unsorted.
func (t *Table) Names() []string {
	out := make([]string, 0, len(t.entries))
	for name := range t.entries {
		out = append(out, name)
	}
	return out
}

func noPairwiseArg(v int) int {
	if v == 0 {
		return -1
	}
	return v
}

func body(args, indent int) Rule {
	return Rule{InlineHeadArgs: args, BodyIndent: indent, PairwiseArg: -1}
}

func binding(args, indent, pairArg int) Rule {
	return Rule{InlineHeadArgs: args, BodyIndent: indent, PairwiseArg: pairArg}
}

func pairwise(indent int) Rule {
	return Rule{BodyIndent: indent, Pairwise: true, PairwiseArg: -1}
}

func clause(style ClauseStyle, args, indent int) Rule {
	return Rule{InlineHeadArgs: args, BodyIndent: indent, Clause: style, PairwiseArg: -1}
}

// Default returns the built-in table covering the common Hy special forms:
// definitions, bindings, conditionals, and block forms.
func Default() *Table {
	t := &Table{entries: make(map[string]Rule, 64)}

	// Definitions: name (and the argument vector, where one exists) stay
	// on the head line; the body indents two columns.
	for _, name := range []string{"defn", "defn/a", "defmacro", "defmain"} {
		t.entries[name] = body(2, 2)
	}
	t.entries["defclass"] = body(2, 2)
	t.entries["defreader"] = body(1, 2)
	t.entries["deftag"] = body(1, 2)

	// Bindings.
	t.entries["let"] = binding(1, 2, 1)
	t.entries["setv"] = pairwise(2)
	t.entries["setx"] = pairwise(2)
	t.entries["global"] = body(0, 2)
	t.entries["nonlocal"] = body(0, 2)
	t.entries["del"] = body(0, 2)

	// Conditionals.
	t.entries["if"] = body(1, 2)
	t.entries["when"] = body(1, 2)
	t.entries["unless"] = body(1, 2)
	t.entries["while"] = body(1, 2)
	t.entries["cond"] = clause(ClauseCond, 0, 2)
	t.entries["case"] = clause(ClauseCase, 1, 2)
	t.entries["match"] = clause(ClauseCase, 1, 2)
	t.entries["branch"] = clause(ClauseCase, 1, 2)

	// Blocks.
	t.entries["do"] = body(0, 2)
	t.entries["fn"] = body(1, 2)
	t.entries["fn/a"] = body(1, 2)
	t.entries["for"] = binding(1, 2, 1)
	t.entries["loop"] = binding(1, 2, 1)
	t.entries["with"] = binding(1, 2, 1)
	t.entries["with/a"] = binding(1, 2, 1)
	t.entries["try"] = body(0, 2)
	t.entries["except"] = body(1, 2)
	t.entries["finally"] = body(0, 2)
	t.entries["else"] = body(0, 2)

	// Comprehensions keep the binding clause on the head line.
	for _, name := range []string{"lfor", "sfor", "gfor", "dfor"} {
		t.entries[name] = body(2, 2)
	}

	// Imports read best with one module per line.
	t.entries["import"] = body(0, 8)
	t.entries["require"] = body(0, 9)

	return t
}

// definers are the forms whose following symbol is a definition name.
var definers = map[string]bool{
	"defn":      true,
	"defn/a":    true,
	"defmacro":  true,
	"defclass":  true,
	"defmain":   true,
	"defreader": true,
	"deftag":    true,
	"setv":      true,
	"setx":      true,
}

// IsDefiner reports whether the head introduces a named definition. The
// highlighter uses this to pick out definition names and docstrings.
func IsDefiner(head string) bool {
	return definers[head]
}
