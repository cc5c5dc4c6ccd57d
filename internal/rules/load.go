package rules

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// RuleConfig is the TOML shape of one rule entry under [format.rules.NAME].
type RuleConfig struct {
	InlineHeadArgs int    `toml:"inline-head-args"`
	BodyIndent     int    `toml:"body-indent"`
	Pairwise       bool   `toml:"pairwise"`
	PairwiseArg    int    `toml:"pairwise-arg"`
	Clause         string `toml:"clause"`
	AlwaysBreak    bool   `toml:"always-break"`
}

// Merge applies configured entries on top of the table. Unknown clause
// names are rejected here so the printer never sees a bad rule.
func (t *Table) Merge(entries map[string]RuleConfig) error {
	for name, cfg := range entries {
		style, err := parseClause(cfg.Clause)
		if err != nil {
			return fmt.Errorf("rule %q: %w", name, err)
		}
		indent := cfg.BodyIndent
		if indent <= 0 {
			indent = 2
		}
		pairArg := cfg.PairwiseArg
		if pairArg == 0 {
			pairArg = -1
		}
		t.entries[name] = Rule{
			InlineHeadArgs: cfg.InlineHeadArgs,
			BodyIndent:     indent,
			Pairwise:       cfg.Pairwise,
			PairwiseArg:    pairArg,
			Clause:         style,
			AlwaysBreak:    cfg.AlwaysBreak,
		}
	}
	return nil
}

// Load reads rule entries from a TOML file holding a top-level table of
// rules (the standalone form of [format.rules] in hyfmt.toml) and merges
// them over the defaults.
func Load(path string) (*Table, error) {
	var entries map[string]RuleConfig
	if _, err := toml.DecodeFile(path, &entries); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	t := Default()
	if err := t.Merge(entries); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func parseClause(s string) (ClauseStyle, error) {
	switch s {
	case "", "none":
		return ClauseNone, nil
	case "cond":
		return ClauseCond, nil
	case "case":
		return ClauseCase, nil
	default:
		return ClauseNone, fmt.Errorf("unknown clause style %q (must be none, cond, or case)", s)
	}
}
