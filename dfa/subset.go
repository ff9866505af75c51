package dfa

import "github.com/shadowCow/pgen/nfa"

// Diagnostic is a non-fatal finding raised during subset construction.
// Subset construction never fails outright — pgen2's nfaToDfa only ever
// prints and continues — so these are collected rather than returned as
// errors.
type Diagnostic struct {
	Kind    string
	Rule    string
	Message string
}

const emptyProduction = "EmptyProduction"

// tempState is a subset-construction work item: which NFA states it
// covers (a boolean vector, indexed like pgen2's tempState[0] rather
// than a map, so equality and iteration are both defined by position,
// not by incidental hash order), its outgoing temp arcs, and whether it
// covers the NFA's accept state.
type tempState struct {
	members   []bool
	arcs      []tempArc
	accepting bool
}

type tempArc struct {
	label   int
	target  int // index into the tempStates slice being built; -1 until resolved
	members []bool
}

// epsilonClosure marks every state reachable from state via epsilon arcs
// (including state itself) in members. This is pgen2's addClosure.
func epsilonClosure(members []bool, n *nfa.NFA, state int) {
	if members[state] {
		return
	}
	members[state] = true
	for _, arc := range n.States[state] {
		if arc.Label == empty {
			epsilonClosure(members, n, arc.Target)
		}
	}
}

func sameMembers(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FromNFA runs subset construction followed by state minimization over
// n, producing its DFA. This is pgen2's nfaToDfa: build the closure-based
// subsets (fixed-point over a growing, index-iterated list, never a map,
// so the result is independent of map iteration order), then merge
// equivalent states, then compact into a dense final state list.
func FromNFA(n *nfa.NFA) (*DFA, []Diagnostic) {
	var diags []Diagnostic

	start := tempState{members: make([]bool, len(n.States))}
	epsilonClosure(start.members, n, n.Start)
	start.accepting = start.members[n.Accept]
	if start.accepting {
		diags = append(diags, Diagnostic{
			Kind:    emptyProduction,
			Rule:    n.Name,
			Message: "nonterminal '" + n.Name + "' may produce empty",
		})
	}
	states := []tempState{start}

	for index := 0; index < len(states); index++ {
		crnt := &states[index]
		for component := 0; component < len(n.States); component++ {
			if !crnt.members[component] {
				continue
			}
			for _, arc := range n.States[component] {
				if arc.Label == empty {
					continue
				}
				ta := findOrAddTempArc(crnt, arc.Label, len(n.States))
				epsilonClosure(ta.members, n, arc.Target)
			}
		}
		for i := range crnt.arcs {
			target := -1
			for destIdx := range states {
				if sameMembers(crnt.arcs[i].members, states[destIdx].members) {
					target = destIdx
					break
				}
			}
			if target == -1 {
				target = len(states)
				states = append(states, tempState{
					members:   append([]bool(nil), crnt.arcs[i].members...),
					accepting: crnt.arcs[i].members[n.Accept],
				})
				crnt = &states[index] // states may have been reallocated
			}
			crnt.arcs[i].target = target
		}
	}

	alive := simplify(states)

	return compact(n, states, alive), diags
}

func findOrAddTempArc(s *tempState, label, nfaStateCount int) *tempArc {
	for i := range s.arcs {
		if s.arcs[i].label == label {
			return &s.arcs[i]
		}
	}
	s.arcs = append(s.arcs, tempArc{label: label, target: -1, members: make([]bool, nfaStateCount)})
	return &s.arcs[len(s.arcs)-1]
}

// sameState reports whether two temp states are interchangeable: same
// accepting-ness, same number of arcs, and positionally-equal arcs
// comparing (label, target) pairs — two states whose arcs differ only in
// which downstream state they ultimately reach are NOT equal by this
// comparator; only a state later found to collapse into the same target
// is. This is pgen2's sameState/arc[:-1] comparison exactly: pgen2
// compares the whole arc tuple except its trailing element, and since a
// pgen2 arc there is (label, targetIndex), that is (label, target) in
// full — the member-set payload third element was already stripped out
// by tempDfaToDfa's arc shape before sameState ever sees it. We keep
// label+target both significant here for the same reason.
func sameState(a, b tempState) bool {
	if len(a.arcs) != len(b.arcs) || a.accepting != b.accepting {
		return false
	}
	for i := range a.arcs {
		if a.arcs[i].label != b.arcs[i].label || a.arcs[i].target != b.arcs[i].target {
			return false
		}
	}
	return true
}

// simplify merges equivalent temp states by fixed-point iteration,
// pgen2's simplifyTempDfa: repeatedly scan for a pair (i, j) with i > j
// that are interchangeable, delete i, and redirect every arc pointing at
// i to j instead, until a full pass makes no more changes. Returns which
// indices survive.
func simplify(states []tempState) []bool {
	alive := make([]bool, len(states))
	for i := range alive {
		alive[i] = true
	}
	changed := true
	for changed {
		changed = false
		for i := 1; i < len(states); i++ {
			if !alive[i] {
				continue
			}
			for j := 0; j < i; j++ {
				if !alive[j] {
					continue
				}
				if !sameState(states[i], states[j]) {
					continue
				}
				alive[i] = false
				for k := range states {
					if !alive[k] {
						continue
					}
					for a := range states[k].arcs {
						if states[k].arcs[a].target == i {
							states[k].arcs[a].target = j
						}
					}
				}
				changed = true
				break
			}
		}
	}
	return alive
}

// compact builds the final dense DFA from the surviving temp states, in
// ascending original-index order (pgen2's tempDfaToDfa, which relies on
// dict insertion order doing the same — here it's explicit).
func compact(n *nfa.NFA, states []tempState, alive []bool) *DFA {
	remap := make([]int, len(states))
	dfaStates := make([]State, 0, len(states))
	for i, keep := range alive {
		if !keep {
			remap[i] = -1
			continue
		}
		remap[i] = len(dfaStates)
		dfaStates = append(dfaStates, State{})
	}
	for i, keep := range alive {
		if !keep {
			continue
		}
		out := remap[i]
		for _, arc := range states[i].arcs {
			dfaStates[out].Arcs = append(dfaStates[out].Arcs, Arc{Label: arc.label, Target: remap[arc.target]})
		}
		if states[i].accepting {
			dfaStates[out].Arcs = append(dfaStates[out].Arcs, Arc{Label: empty, Target: out})
		}
	}
	return &DFA{Kind: n.Kind, Name: n.Name, Start: 0, States: dfaStates}
}
