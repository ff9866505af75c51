package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/pgen/dfa"
	"github.com/shadowCow/pgen/frontend"
	"github.com/shadowCow/pgen/label"
	"github.com/shadowCow/pgen/nfa"
	"github.com/shadowCow/pgen/resolve"
	"github.com/shadowCow/pgen/token"
)

func Test_DefaultOperatorMap_coversMetaGrammarPunctuation(t *testing.T) {
	m := resolve.DefaultOperatorMap()
	for _, sym := range []string{"(", ")", "[", "]", ":", "|", "*", "+"} {
		_, ok := m[sym]
		assert.True(t, ok, "missing operator %q", sym)
	}
}

func Test_Resolve_nonterminalReference(t *testing.T) {
	tree, err := frontend.ParseString("start: other\nother: 'a'\n")
	require.NoError(t, err)
	labels, nfas, err := nfa.Build(tree)
	require.NoError(t, err)

	dfas := make([]*dfa.DFA, len(nfas))
	for i, n := range nfas {
		d, _ := dfa.FromNFA(n)
		dfas[i] = d
	}

	diags := resolve.Resolve(labels, dfas, nil, resolve.DefaultOperatorMap())
	require.Empty(t, diags)

	// find the label referencing "other" and confirm it now carries its
	// nonterminal kind rather than token.Name
	found := false
	for i := 0; i < labels.Len(); i++ {
		e := labels.At(i)
		if e.Kind == token.Kind(dfas[1].Kind) {
			found = true
		}
	}
	assert.True(t, found, "expected a label resolved to the 'other' nonterminal kind")
}

func Test_Resolve_keywordStringBecomesNameKind(t *testing.T) {
	tree, err := frontend.ParseString("start: 'if'\n")
	require.NoError(t, err)
	labels, nfas, err := nfa.Build(tree)
	require.NoError(t, err)
	d, _ := dfa.FromNFA(nfas[0])

	diags := resolve.Resolve(labels, []*dfa.DFA{d}, nil, resolve.DefaultOperatorMap())
	require.Empty(t, diags)

	assert.True(t, hasResolvedEntry(labels, token.Name, "if"))
}

func Test_Resolve_unknownNameReportsDiagnostic(t *testing.T) {
	tree, err := frontend.ParseString("start: undeclared\n")
	require.NoError(t, err)
	labels, nfas, err := nfa.Build(tree)
	require.NoError(t, err)
	d, _ := dfa.FromNFA(nfas[0])

	diags := resolve.Resolve(labels, []*dfa.DFA{d}, nil, resolve.DefaultOperatorMap())
	require.Len(t, diags, 1)
	assert.Equal(t, "UntranslatableLabel", diags[0].Kind)
}

func Test_Resolve_operatorStringResolvesViaMap(t *testing.T) {
	tree, err := frontend.ParseString("start: '+'\n")
	require.NoError(t, err)
	labels, nfas, err := nfa.Build(tree)
	require.NoError(t, err)
	d, _ := dfa.FromNFA(nfas[0])

	diags := resolve.Resolve(labels, []*dfa.DFA{d}, nil, resolve.DefaultOperatorMap())
	require.Empty(t, diags)
	assert.True(t, hasResolvedEntry(labels, token.Plus, ""))
}

// hasResolvedEntry reports whether labels contains an entry with the
// given kind and text. Used instead of a hardcoded index because
// buildRule's rule-name self-registration (spec.md:60) occupies its
// own label slot ahead of anything the rule's RHS interns, so a
// literal's table position isn't a fixed offset.
func hasResolvedEntry(labels *label.Table, kind token.Kind, text string) bool {
	for i := 0; i < labels.Len(); i++ {
		e := labels.At(i)
		if e.Kind == kind && e.Text == text {
			return true
		}
	}
	return false
}
