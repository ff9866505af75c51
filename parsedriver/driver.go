// Package parsedriver implements the Parse Driver: a stack machine that
// walks a Compiled Grammar's DFAs, consuming a token.Stream and
// producing a parsetree.Node. Unlike the teacher's tooling/ll1.Parser,
// which walks a table keyed by (nonterminal, lookahead) built over a
// recursive ProductionRule AST, this drives the compiled DFA arcs
// directly: each stack frame tracks a rule's current DFA state, shifting
// on a matching terminal arc, pushing a fresh frame on a matching
// nonterminal arc (without consuming input), and popping (reducing) once
// no arc matches and the current state is accepting. The frame-stack
// shape mirrors the teacher's own ll1.Parser, which likewise builds its
// parse tree bottom-up via a stack of pending reductions.
package parsedriver

import (
	"fmt"

	"github.com/shadowCow/pgen/dfa"
	"github.com/shadowCow/pgen/firstset"
	"github.com/shadowCow/pgen/grammar"
	"github.com/shadowCow/pgen/label"
	"github.com/shadowCow/pgen/parsetree"
	"github.com/shadowCow/pgen/token"
)

// ParseError reports that no arc out of the current DFA state could
// account for the lookahead token.
type ParseError struct {
	Tok  token.Token
	Rule string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected token %s at line %d while parsing %s", e.Tok, e.Tok.Line, e.Rule)
}

// Driver runs the stack machine over one Compiled Grammar.
type Driver struct {
	g     *grammar.Compiled
	trace bool
}

// New returns a Driver over g.
func New(g *grammar.Compiled) *Driver {
	return &Driver{g: g}
}

// SetTrace toggles per-step trace output, written through fmt.Printf,
// matching the teacher's own ll1.Parser.SetTrace idiom.
func (d *Driver) SetTrace(enabled bool) {
	d.trace = enabled
}

type frame struct {
	dfa   *dfa.DFA
	state int
	node  *parsetree.Interior
}

// Parse drives the grammar starting from its configured start symbol,
// consuming tokens from stream until the start rule reduces or a parse
// error occurs.
func (d *Driver) Parse(stream token.Stream) (parsetree.Node, error) {
	startDFA, ok := d.g.ByKind(d.g.Start)
	if !ok {
		return nil, fmt.Errorf("start symbol (kind %d) has no compiled DFA", d.g.Start)
	}
	stack := []*frame{{dfa: startDFA, state: startDFA.Start, node: &parsetree.Interior{Kind: startDFA.Kind, Name: startDFA.Name}}}

	tok, err := stream.Next()
	if err != nil {
		return nil, err
	}

	for {
		top := stack[len(stack)-1]
		state := top.dfa.States[top.state]

		if d.trace {
			fmt.Printf("parsedriver: rule=%s state=%d lookahead=%s\n", top.dfa.Name, top.state, tok)
		}

		arc, isNonterminal, matched := d.matchArc(state, tok)

		switch {
		case matched && isNonterminal:
			childDFA, _ := d.g.ByKind(int(d.g.Labels.At(arc.Label).Kind))
			stack = append(stack, &frame{
				dfa:   childDFA,
				state: childDFA.Start,
				node:  &parsetree.Interior{Kind: childDFA.Kind, Name: childDFA.Name},
			})
			continue // retry the same token against the freshly pushed frame

		case matched:
			top.node.Children = append(top.node.Children, parsetree.Leaf{Tok: tok})
			top.state = arc.Target
			// The shifted token is consumed, so fetch the next one —
			// unless the just-shifted terminal was the stream's final
			// ENDMARKER: a conformant token.Stream returns io.EOF on any
			// call after yielding it, and fetching here instead of
			// falling through to the reduce case would turn a normal
			// end-of-input into a hard error.
			if tok.Kind != token.Endmarker {
				tok, err = stream.Next()
				if err != nil {
					return nil, err
				}
			}
			continue

		case state.Accepting(top.state):
			finished := top.node
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return finished, nil
			}
			parent := stack[len(stack)-1]
			nextState, ok := advanceOverNonterminal(parent.dfa.States[parent.state], d.g.Labels, finished.Kind)
			if !ok {
				return nil, fmt.Errorf("internal error: no arc for completed nonterminal %s in %s", finished.Name, parent.dfa.Name)
			}
			parent.node.Children = append(parent.node.Children, finished)
			parent.state = nextState
			continue

		default:
			return nil, &ParseError{Tok: tok, Rule: top.dfa.Name}
		}
	}
}

// matchArc finds the first arc out of state that licenses consuming (or,
// for a nonterminal, predicting) tok. Arcs are scanned in declaration
// order, which is how ordered-alternative ambiguity is resolved.
func (d *Driver) matchArc(state dfa.State, tok token.Token) (arc dfa.Arc, isNonterminal bool, matched bool) {
	for _, a := range state.Arcs {
		if a.Label == int(token.Epsilon) {
			continue // the accepting self-loop, not a real transition
		}
		entry := d.g.Labels.At(a.Label)
		if int(entry.Kind) >= int(token.NTOffset) {
			childDFA, ok := d.g.ByKind(int(entry.Kind))
			if !ok {
				continue
			}
			bits, ok := childDFA.First.Bits.(firstset.Bits)
			if !ok || !bits.Contains(d.g.Labels, tok) {
				continue
			}
			return a, true, true
		}
		if entry.Match(tok) {
			return a, false, true
		}
	}
	return dfa.Arc{}, false, false
}

// isDeadEnd reports whether state has nothing left to offer beyond the
// accepting self-loop itself — i.e. own is its only arc.
func isDeadEnd(state dfa.State, own int) bool {
	return len(state.Arcs) == 1 && state.Accepting(own)
}

// advanceOverNonterminal finds the arc in state that represents a call
// to the nonterminal kind just reduced, so the caller's frame can move
// past it the way it would have moved past a shifted terminal.
func advanceOverNonterminal(state dfa.State, labels *label.Table, kind int) (int, bool) {
	for _, a := range state.Arcs {
		if a.Label == int(token.Epsilon) {
			continue
		}
		if int(labels.At(a.Label).Kind) == kind {
			return a.Target, true
		}
	}
	return 0, false
}
