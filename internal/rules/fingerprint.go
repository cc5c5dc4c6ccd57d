package rules

import (
	"crypto/sha256"
	"fmt"
	"sort"
)

// Fingerprint returns a deterministic digest of the table contents. The
// format cache keys on it so edited rules invalidate stale entries.
func (t *Table) Fingerprint() [32]byte {
	names := t.Names()
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		r := t.entries[name]
		fmt.Fprintf(h, "%s:%d:%d:%t:%d:%s:%t\n",
			name, r.InlineHeadArgs, r.BodyIndent, r.Pairwise,
			r.PairwiseArg, r.Clause, r.AlwaysBreak)
	}

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
