package source

import (
	"slices"
)

type StringID uint32

const NoStringID StringID = 0

type Interner struct {
	byID  []string            // id -> string (byID[0] = "" for NoStringID)
	index map[string]StringID // string -> id
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern stores s and returns its ID, reusing the ID of an equal string.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}

	// Own copy, so we never alias the caller's buffer.
	cpy := string([]byte(s))
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// InternBytes stores b as a string and returns its ID.
func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// Lookup returns the string for the ID, or "" and false for invalid IDs.
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup returns the string for the ID and panics on invalid IDs.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("invalid string ID")
	}
	return s
}

// Has reports whether the ID is valid for this interner.
func (i *Interner) Has(id StringID) bool {
	return int(id) >= 0 && int(id) < len(i.byID)
}

// Len returns the number of interned strings, NoStringID included.
func (i *Interner) Len() int {
	return len(i.byID)
}

// Snapshot returns a copy of all interned strings.
func (i *Interner) Snapshot() []string {
	return slices.Clone(i.byID)
}
