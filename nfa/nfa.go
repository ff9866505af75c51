// Package nfa implements the NFA Builder: Thompson-style construction of
// one NFA per grammar rule from a Grammar Syntax Tree. The state
// representation is flat and index-based — States[i] is the arc list
// leaving state i — rather than a graph of pointers, following the
// teacher's own automata package (tooling/automata/nfa.go) and the
// design guidance against cyclic object graphs.
package nfa

// Arc is one NFA transition: consume Label (or, if Label equals
// token.Epsilon, consume nothing) and move to Target.
type Arc struct {
	Label  int
	Target int
}

// NFA is one grammar rule's automaton. Kind is the nonterminal kind this
// rule will occupy in the compiled grammar (token.NTOffset + rule
// index); Name is the rule's identifier as written in the source
// grammar.
type NFA struct {
	Kind   int
	Name   string
	States [][]Arc
	Start  int
	Accept int
}

// AddState appends an empty state and returns its index.
func (n *NFA) AddState() int {
	n.States = append(n.States, nil)
	return len(n.States) - 1
}

// AddArc adds an arc from `from` to `to` labeled label.
func (n *NFA) AddArc(from, label, to int) {
	n.States[from] = append(n.States[from], Arc{Label: label, Target: to})
}
