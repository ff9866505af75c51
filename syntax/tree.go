// Package syntax defines the Grammar Syntax Tree the NFA Builder
// consumes. The core never constructs one of these itself — it is the
// external front end's job (package frontend ships one concrete
// producer) — but the shape is part of the core's contract, so it lives
// here rather than under frontend.
package syntax

import "github.com/shadowCow/pgen/token"

// Node labels for interior tree nodes, named after the meta-grammar
// productions they correspond to (pgen2's parser.py MSTART/RULE/RHS/
// ALT/ITEM/ATOM). They intentionally share pgen2's numeric base (256)
// with token.NTOffset; the coincidence is cosmetic, not structural — a
// compiled grammar's nonterminal kinds and a syntax.Tree's node labels
// are different numbering spaces that never meet at runtime.
const (
	MStart = 256 + iota
	Rule
	Rhs
	Alt
	Item
	Atom
)

// LabelName renders an interior node label for diagnostics.
func LabelName(label int) string {
	switch label {
	case MStart:
		return "MSTART"
	case Rule:
		return "RULE"
	case Rhs:
		return "RHS"
	case Alt:
		return "ALT"
	case Item:
		return "ITEM"
	case Atom:
		return "ATOM"
	default:
		return "?"
	}
}

// Tree is a node in the Grammar Syntax Tree. A leaf wraps exactly the
// token it matched (Label is the token's own Kind, below 256); an
// interior node is one of MStart..Atom and carries its children in
// left-to-right order. This mirrors the uniform tuple shape pgen2's
// parser.py builds ((type, children) with leaves stored as (tok, [])).
type Tree struct {
	Label    int
	Tok      token.Token
	Children []*Tree
}

// Leaf builds a terminal tree node wrapping tok.
func Leaf(tok token.Token) *Tree {
	return &Tree{Label: int(tok.Kind), Tok: tok}
}

// Interior builds a non-terminal tree node over children.
func Interior(label int, children ...*Tree) *Tree {
	return &Tree{Label: label, Children: children}
}

// IsLeaf reports whether t wraps a token rather than child nodes.
func (t *Tree) IsLeaf() bool {
	return t.Label < 256
}
