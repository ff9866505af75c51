// Package token defines the token vocabulary shared by the grammar
// compiler and its front end: the small set of kinds a Grammar Syntax
// Tree leaf can carry, plus the sentinel values the rest of the pipeline
// builds on (NTOffset for nonterminal kind numbering, Epsilon for
// epsilon-arc labels).
package token

import "fmt"

// Kind identifies the lexical category of a Token. Values below NTOffset
// are terminal kinds; a compiled grammar also uses kinds at or above
// NTOffset to number its nonterminals (NTOffset + rule index).
type Kind int

// The terminal kinds the meta-grammar's own front end produces. A caller
// compiling a different grammar supplies its own terminal kinds through
// Options.TerminalNames (see package grammar) — these twelve are
// only the ones pgen's own grammar-description language needs.
const (
	Endmarker Kind = iota
	Newline
	Name
	String
	Colon
	Vbar
	Star
	Plus
	Lsqb
	Rsqb
	Lpar
	Rpar
)

// NTOffset is the first kind value reserved for nonterminals. A compiled
// grammar's i'th rule is assigned kind NTOffset+i, mirroring pgen2's
// token.NT_OFFSET.
const NTOffset Kind = 256

// Epsilon is the label value an NFA or DFA arc uses to mean "consumes no
// input." It is deliberately the same numeric value as Endmarker — real
// label indices handed out by a label.Table never collide with it because
// index 0 of every table is reserved for the dead (Endmarker, "EMPTY")
// entry pgen2 seeds it with (see package label).
const Epsilon = Endmarker

var names = map[Kind]string{
	Endmarker: "ENDMARKER",
	Newline:   "NEWLINE",
	Name:      "NAME",
	String:    "STRING",
	Colon:     "COLON",
	Vbar:      "VBAR",
	Star:      "STAR",
	Plus:      "PLUS",
	Lsqb:      "LSQB",
	Rsqb:      "RSQB",
	Lpar:      "LPAR",
	Rpar:      "RPAR",
}

// String renders k for diagnostics and trace output.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	if k >= NTOffset {
		return fmt.Sprintf("NT#%d", int(k-NTOffset))
	}
	return fmt.Sprintf("KIND#%d", int(k))
}

// Token is one lexical unit: a kind, the exact text matched, and the
// source line it started on. This is the triple the External
// Token-Stream Interface contract requires producers to supply.
type Token struct {
	Kind Kind
	Text string
	Line int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Line)
}

// Stream is the external tokenizer interface the Parse Driver consumes.
// A producer is expected to yield a final Endmarker token and then return
// io.EOF (or an equivalent sentinel error) on any further call; pgen
// itself never constructs one except in package frontend, which is a
// concrete but optional front end, not part of the compiled core.
type Stream interface {
	Next() (Token, error)
}
