// Package grammar ties the compilation pipeline together: NFA Builder,
// Subset Constructor, Label Resolver, FIRST-Set Computer, in that order,
// producing the Compiled Grammar value the Parse Driver runs against.
// The orchestration mirrors both the teacher's lang/runner/runner.go
// (read grammar, build, report) and pgen2's PyPgen.__call__.
package grammar

import (
	"fmt"

	"github.com/shadowCow/pgen/diag"
	"github.com/shadowCow/pgen/dfa"
	"github.com/shadowCow/pgen/firstset"
	"github.com/shadowCow/pgen/label"
	"github.com/shadowCow/pgen/nfa"
	"github.com/shadowCow/pgen/resolve"
	"github.com/shadowCow/pgen/syntax"
	"github.com/shadowCow/pgen/token"
)

// Compiled is the grammar compiler's output: the label table every DFA's
// arcs index into, the DFAs themselves (index i is nonterminal kind
// token.NTOffset+i), and the nonterminal kind parsing should start from.
type Compiled struct {
	Labels *label.Table
	DFAs   []*dfa.DFA
	Start  int
}

// ByKind returns the DFA for nonterminal kind k.
func (c *Compiled) ByKind(k int) (*dfa.DFA, bool) {
	idx := k - int(token.NTOffset)
	if idx < 0 || idx >= len(c.DFAs) {
		return nil, false
	}
	return c.DFAs[idx], true
}

// ByName returns the DFA for rule name.
func (c *Compiled) ByName(name string) (*dfa.DFA, bool) {
	for _, d := range c.DFAs {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}

// Options controls how the resolver and start-symbol selection behave.
// Zero value is valid: no additional terminal names, pgen2's default
// operator map, start symbol defaults to the first declared rule.
type Options struct {
	StartSymbol   string
	TerminalNames map[string]token.Kind
	OperatorMap   map[string]token.Kind
}

// Compile runs the full pipeline over tree and returns the compiled
// grammar plus any non-fatal diagnostics raised along the way. A non-nil
// error means the syntax tree itself was malformed and compilation could
// not proceed at all.
func Compile(tree *syntax.Tree, opts Options) (*Compiled, []diag.Diagnostic, error) {
	labels, nfas, err := nfa.Build(tree)
	if err != nil {
		return nil, nil, fmt.Errorf("building NFAs: %w", err)
	}
	if len(nfas) == 0 {
		return nil, nil, fmt.Errorf("grammar declares no rules")
	}

	var diags []diag.Diagnostic
	dfas := make([]*dfa.DFA, len(nfas))
	for i, n := range nfas {
		d, ds := dfa.FromNFA(n)
		dfas[i] = d
		for _, item := range ds {
			diags = append(diags, diag.Diagnostic{Kind: item.Kind, Subject: item.Rule, Message: item.Message})
		}
	}

	opMap := opts.OperatorMap
	if opMap == nil {
		opMap = resolve.DefaultOperatorMap()
	}
	for _, item := range resolve.Resolve(labels, dfas, opts.TerminalNames, opMap) {
		diags = append(diags, diag.Diagnostic{Kind: item.Kind, Subject: item.Label, Message: item.Message})
	}

	for _, item := range firstset.ComputeAll(labels, dfas) {
		diags = append(diags, diag.Diagnostic{Kind: item.Kind, Subject: item.Rule, Message: item.Message})
	}

	start := dfas[0].Kind
	if opts.StartSymbol != "" {
		if d, ok := findByName(dfas, opts.StartSymbol); ok {
			start = d.Kind
		} else {
			diags = append(diags, diag.Diagnostic{
				Kind:    "StartSymbolNotFound",
				Subject: opts.StartSymbol,
				Message: fmt.Sprintf("couldn't find nonterminal '%s', using '%s' instead", opts.StartSymbol, dfas[0].Name),
			})
		}
	}

	return &Compiled{Labels: labels, DFAs: dfas, Start: start}, diags, nil
}

func findByName(dfas []*dfa.DFA, name string) (*dfa.DFA, bool) {
	for _, d := range dfas {
		if d.Name == name {
			return d, true
		}
	}
	return nil, false
}
