// Package label implements the grammar compiler's Label Table: the
// interned list of (kind, text) pairs an NFA Builder emits labels into
// and a Label Resolver later rewrites in place, grounded on pgen2's
// pgen.py addLabel/translateLabels.
package label

import "github.com/shadowCow/pgen/token"

// Entry is one label table slot. Before resolution Kind is always
// token.Name or token.String and Text carries the identifier or quoted
// literal the grammar author wrote. After resolution Kind is either a
// concrete terminal kind or a nonterminal kind (>= token.NTOffset), and
// Text is either empty or, for keyword terminals, the exact spelling the
// token's Text must match.
type Entry struct {
	Kind token.Kind
	Text string
}

// Resolved reports whether e has gone through the Label Resolver.
func (e Entry) Resolved() bool {
	return e.Kind != token.Name && e.Kind != token.String
}

// Match reports whether tok satisfies a resolved entry: its kind must
// agree, and if the entry pins a specific spelling (a keyword) the
// token's text must match it exactly.
func (e Entry) Match(tok token.Token) bool {
	if tok.Kind != e.Kind {
		return false
	}
	if e.Text == "" {
		return true
	}
	return tok.Text == e.Text
}

// Table is the grammar-wide label list. Index 0 is always the dead
// (Endmarker, "EMPTY") sentinel pgen2 seeds every grammar with; real
// labels handed out by Intern start at index 1, so they never collide
// with token.Epsilon used as an NFA/DFA arc's epsilon marker.
type Table struct {
	entries []Entry
}

// New returns a Table pre-seeded with the reserved dead entry at index 0.
func New() *Table {
	return &Table{entries: []Entry{{Kind: token.Endmarker, Text: "EMPTY"}}}
}

// Intern returns the index of the (kind, text) pair in the table,
// appending a new entry if one does not already exist. This is pgen2's
// addLabel: an NFA Builder calls it once per NAME/STRING atom so that
// repeated references to the same rule or literal share one label.
func (t *Table) Intern(kind token.Kind, text string) int {
	for i, e := range t.entries {
		if e.Kind == kind && e.Text == text {
			return i
		}
	}
	t.entries = append(t.entries, Entry{Kind: kind, Text: text})
	return len(t.entries) - 1
}

// Len returns the number of entries, including the reserved slot 0.
func (t *Table) Len() int {
	return len(t.entries)
}

// At returns the entry at index i.
func (t *Table) At(i int) Entry {
	return t.entries[i]
}

// Set overwrites the entry at index i. The Label Resolver is the only
// caller expected to use this — it rewrites NAME/STRING entries into
// resolved terminal or nonterminal references in place.
func (t *Table) Set(i int, e Entry) {
	t.entries[i] = e
}

// Entries returns the table's entries in index order. The returned slice
// must be treated as read-only by callers other than the resolver.
func (t *Table) Entries() []Entry {
	return t.entries
}
