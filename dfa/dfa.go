// Package dfa implements the Subset Constructor: turning one rule's NFA
// into a minimal deterministic automaton via epsilon-closure, subset
// construction, and pairwise-equivalence state merging, grounded on
// pgen2's pgen.py nfaToDfa/simplifyTempDfa/tempDfaToDfa. The teacher's
// own subset-construction code (lang/automata/nfa_to_dfa.go) stops at
// subset construction and never minimizes; the minimization pass here
// has no teacher analogue and is ported from pgen2 directly.
package dfa

import "github.com/shadowCow/pgen/token"

const empty = int(token.Epsilon)

// Arc is one DFA transition. An accepting state carries a self-loop arc
// labeled token.Epsilon, the same trick pgen2's tempDfaToDfa uses to fold
// "is this state accepting" into the arc list rather than a separate
// flag.
type Arc struct {
	Label  int
	Target int
}

// State is one DFA state's outgoing arcs.
type State struct {
	Arcs []Arc
}

// Accepting reports whether self (state index own) carries the
// epsilon self-loop that marks an accepting state.
func (s State) Accepting(own int) bool {
	for _, a := range s.Arcs {
		if a.Label == empty && a.Target == own {
			return true
		}
	}
	return false
}

// Match returns the first arc out of s whose label is lbl, ignoring the
// accepting self-loop. DFA arcs are scanned in construction order, which
// is also alternative-declaration order — this is how ordered-alternative
// ambiguity is resolved (spec Non-goals: no ambiguity resolution beyond
// ordered alternatives).
func (s State) Match(lbl int) (Arc, bool) {
	for _, a := range s.Arcs {
		if a.Label == lbl && a.Label != empty {
			return a, true
		}
	}
	return Arc{}, false
}

// DFA is one grammar rule's compiled automaton plus its (not yet
// computed until package firstset runs) FIRST set.
type DFA struct {
	Kind   int
	Name   string
	Start  int
	States []State
	First  FirstState
}

// FirstState is the sum-type-shaped FIRST-set slot a DFA carries, per
// spec.md's design note preferring an explicit enum over pgen2's
// sentinel-overloaded integer (nil / -1 / bitset all in one field).
// Package firstset owns writing to this; package dfa only declares the
// shape so DFA doesn't need to import firstset.
type FirstState struct {
	Status FirstStatus
	Bits   FirstBits
}

// FirstStatus is the discriminant of FirstState.
type FirstStatus int

const (
	FirstNotComputed FirstStatus = iota
	FirstInProgress
	FirstDone
)

// FirstBits is an arbitrary-precision bitset keyed by label index. It is
// defined here (rather than forcing a math/big import on every caller of
// package dfa) as a thin wrapper package firstset fills in.
type FirstBits interface {
	Test(sym int) bool
}
