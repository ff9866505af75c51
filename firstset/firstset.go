// Package firstset implements the FIRST-Set Computer: for every compiled
// DFA, the set of terminal labels (label-table indices) that can begin a derivation of that
// rule, found by walking the DFA's start state's arcs and recursing into
// referenced nonterminals. Grounded on pgen2's pgen.py calcFirstSet /
// generateFirstSets, including left-recursion detection via an
// in-progress marker and little-endian byte serialization of the
// resulting bitset.
package firstset

import (
	"math/big"

	"github.com/shadowCow/pgen/dfa"
	"github.com/shadowCow/pgen/label"
	"github.com/shadowCow/pgen/token"
)

// Diagnostic reports left recursion discovered while computing FIRST
// sets. pgen2 prints these and carries on (the caller's dfa[4] stays a
// best-effort partial result); this port does the same.
type Diagnostic struct {
	Kind    string
	Rule    string
	Message string
}

const leftRecursion = "LeftRecursion"

// Bits is the concrete arbitrary-precision bitset behind dfa.FirstState,
// keyed by label-table index.
type Bits struct {
	n *big.Int
}

// Test reports whether sym's bit is set.
func (b Bits) Test(sym int) bool {
	if b.n == nil {
		return false
	}
	return b.n.Bit(sym) == 1
}

// Serialize renders the set as little-endian bytes, one bit per label
// index, padded to ceil(labelCount/8)+1 bytes — pgen2's exact output
// shape from generateFirstSets (it serializes by repeatedly peeling off
// the low byte of the accumulated long, which is little-endian, then
// pads with NUL bytes to size).
func (b Bits) Serialize(labelCount int) []byte {
	size := (labelCount+7)/8 + 1
	out := make([]byte, 0, size)
	if b.n != nil {
		rem := new(big.Int).Set(b.n)
		mask := big.NewInt(0xff)
		for rem.Sign() > 0 {
			var byteVal big.Int
			byteVal.And(rem, mask)
			out = append(out, byte(byteVal.Int64()))
			rem.Rsh(rem, 8)
		}
	}
	for len(out) < size {
		out = append(out, 0)
	}
	return out
}

// ComputeAll fills in First on every dfa in dfas, in index order, and
// returns any left-recursion diagnostics encountered. This is pgen2's
// generateFirstSets driving calcFirstSet over a fixed-point-free single
// pass (each DFA is visited once, either directly or as a dependency of
// one visited earlier).
func ComputeAll(labels *label.Table, dfas []*dfa.DFA) []Diagnostic {
	var diags []Diagnostic
	for _, d := range dfas {
		if d.First.Status == dfa.FirstNotComputed {
			diags = append(diags, calcFirstSet(labels, dfas, d)...)
		}
	}
	return diags
}

// dfaForKind finds the DFA owning nonterminal kind k.
func dfaForKind(dfas []*dfa.DFA, k int) *dfa.DFA {
	idx := k - int(token.NTOffset)
	if idx < 0 || idx >= len(dfas) {
		return nil
	}
	return dfas[idx]
}

func calcFirstSet(labels *label.Table, dfas []*dfa.DFA, d *dfa.DFA) []Diagnostic {
	if d.First.Status == dfa.FirstInProgress {
		return []Diagnostic{{Kind: leftRecursion, Rule: d.Name, Message: "left-recursion for '" + d.Name + "'"}}
	}
	d.First.Status = dfa.FirstInProgress

	var diags []Diagnostic
	result := new(big.Int)
	seen := make(map[int]bool)
	state := d.States[d.Start]
	for _, arc := range state.Arcs {
		if arc.Label == int(token.Epsilon) && arc.Target == d.Start {
			continue // the accepting self-loop carries no symbol
		}
		if seen[arc.Label] {
			continue
		}
		seen[arc.Label] = true

		entry := labels.At(arc.Label)
		if int(entry.Kind) >= int(token.NTOffset) {
			target := dfaForKind(dfas, int(entry.Kind))
			if target == nil {
				continue
			}
			if target.First.Status == dfa.FirstInProgress {
				diags = append(diags, Diagnostic{
					Kind:    leftRecursion,
					Rule:    d.Name,
					Message: "left recursion below '" + d.Name + "'",
				})
				continue
			}
			if target.First.Status == dfa.FirstNotComputed {
				diags = append(diags, calcFirstSet(labels, dfas, target)...)
			}
			if bits, ok := target.First.Bits.(Bits); ok {
				result.Or(result, bits.n)
			}
		} else {
			// The bit position is the label index itself (arc.Label),
			// not the resolved terminal kind: pgen2's calcFirstSet ORs
			// in `1 << sym` where sym is the label-table index the arc
			// carries, so FIRST is a set of label indices sharing the
			// grammar-wide label table, not a set of raw token kinds.
			result.SetBit(result, arc.Label, 1)
		}
	}

	d.First.Bits = Bits{n: result}
	d.First.Status = dfa.FirstDone
	return diags
}

// Contains reports whether any label in the set matches tok — the
// predicate the Parse Driver uses to decide whether a nonterminal's
// FIRST set licenses consuming the current lookahead.
func (b Bits) Contains(labels *label.Table, tok token.Token) bool {
	if b.n == nil {
		return false
	}
	for i := 0; i < labels.Len(); i++ {
		if b.Test(i) && labels.At(i).Match(tok) {
			return true
		}
	}
	return false
}
