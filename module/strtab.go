package module

import (
	"github.com/hostbridge/wasm-imports/errors"
)

// StringTable is an append-only table mapping small integers to strings,
// used to avoid repeating identical strings in a module's metadata.
type StringTable struct {
	entries []string
	index   map[string]uint32
}

// NewStringTable creates an empty string table.
func NewStringTable() *StringTable {
	return &StringTable{index: make(map[string]uint32)}
}

// Intern appends s and returns its index, reusing the existing index
// when s was interned before.
func (t *StringTable) Intern(s string) uint32 {
	if idx, ok := t.index[s]; ok {
		return idx
	}
	idx := uint32(len(t.entries))
	t.entries = append(t.entries, s)
	t.index[s] = idx
	return idx
}

// Get returns the string at idx. Resolution is bounds-checked.
func (t *StringTable) Get(idx uint32) (string, error) {
	if int(idx) >= len(t.entries) {
		return "", errors.OutOfBounds(errors.PhaseResolve, "string table", int(idx), len(t.entries))
	}
	return t.entries[idx], nil
}

// Len returns the number of interned strings.
func (t *StringTable) Len() int {
	return len(t.entries)
}
