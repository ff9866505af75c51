package dfa_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/pgen/dfa"
	"github.com/shadowCow/pgen/frontend"
	"github.com/shadowCow/pgen/nfa"
	"github.com/shadowCow/pgen/token"
)

func buildNFA(t *testing.T, src string) *nfa.NFA {
	t.Helper()
	tree, err := frontend.ParseString(src)
	require.NoError(t, err)
	_, nfas, err := nfa.Build(tree)
	require.NoError(t, err)
	require.Len(t, nfas, 1)
	return nfas[0]
}

func Test_FromNFA_singleTerminalHasOneAcceptingState(t *testing.T) {
	n := buildNFA(t, "start: 'a'\n")
	d, diags := dfa.FromNFA(n)
	require.Empty(t, diags)
	require.Len(t, d.States, 2)
	assert.False(t, d.States[d.Start].Accepting(d.Start))
	// the rule's self-registered name label occupies a table slot but
	// is never used as an arc label, so check by shape, not index.
	require.Len(t, d.States[d.Start].Arcs, 1)
	_, ok := d.States[d.Start].Match(d.States[d.Start].Arcs[0].Label)
	assert.True(t, ok)
}

func Test_FromNFA_starProducesAcceptingStartState(t *testing.T) {
	n := buildNFA(t, "start: 'a'*\n")
	d, diags := dfa.FromNFA(n)
	// an accepting start state means the rule may produce empty
	require.Len(t, diags, 1)
	assert.Equal(t, "EmptyProduction", diags[0].Kind)
	assert.True(t, d.States[d.Start].Accepting(d.Start), "zero repetitions must be accepted immediately")
}

func Test_FromNFA_optionalRuleReportsEmptyProduction(t *testing.T) {
	n := buildNFA(t, "start: ['a']\n")
	_, diags := dfa.FromNFA(n)
	require.Len(t, diags, 1)
	assert.Equal(t, "EmptyProduction", diags[0].Kind)
	assert.Equal(t, "start", diags[0].Rule)
}

func Test_FromNFA_minimizesEquivalentBranches(t *testing.T) {
	// Both alternatives lead straight to acceptance on a single distinct
	// terminal each; the DFA must still end up with exactly one non-start
	// accepting state since both 'a' and 'b' finish in an equivalent spot.
	n := buildNFA(t, "start: 'a' | 'b'\n")
	d, diags := dfa.FromNFA(n)
	require.Empty(t, diags)

	accepting := 0
	for i, s := range d.States {
		if s.Accepting(i) {
			accepting++
		}
	}
	assert.Equal(t, 1, accepting)
}

func Test_FromNFA_identicalRHSRulesProduceStructurallyEqualDFAs(t *testing.T) {
	// Two distinct rules with an identical RHS get distinct nonterminal
	// kinds and names but must be behaviorally identical automata: same
	// state count, same arcs modulo the Kind/Name fields that name the
	// rule itself (spec.md's "structural equality on states modulo name
	// and type" boundary behavior).
	a := buildNFA(t, "a: 'x'\n")
	b := buildNFA(t, "b: 'x'\n")

	dfaA, diagsA := dfa.FromNFA(a)
	dfaB, diagsB := dfa.FromNFA(b)
	require.Empty(t, diagsA)
	require.Empty(t, diagsB)

	if diff := cmp.Diff(dfaA.States, dfaB.States); diff != "" {
		t.Errorf("identical-RHS rules produced non-equivalent DFA states (-a +b):\n%s", diff)
	}
}

func Test_State_Match_ignoresEpsilonSelfLoop(t *testing.T) {
	s := dfa.State{Arcs: []dfa.Arc{{Label: int(token.Epsilon), Target: 0}}}
	_, ok := s.Match(int(token.Epsilon))
	assert.False(t, ok)
}

func Test_State_Match_firstDeclaredArcWins(t *testing.T) {
	s := dfa.State{Arcs: []dfa.Arc{{Label: 5, Target: 1}, {Label: 5, Target: 2}}}
	arc, ok := s.Match(5)
	require.True(t, ok)
	assert.Equal(t, 1, arc.Target)
}
