package nfa

import (
	"fmt"

	"github.com/shadowCow/pgen/label"
	"github.com/shadowCow/pgen/syntax"
	"github.com/shadowCow/pgen/token"
)

// empty is the epsilon label used while wiring fragments together.
const empty = int(token.Epsilon)

// MalformedSyntaxTreeError reports a Grammar Syntax Tree node the NFA
// Builder did not expect at this point in the walk — the Go equivalent
// of pgen2's handle* assertion failures.
type MalformedSyntaxTreeError struct {
	Want string
	Got  int
}

func (e *MalformedSyntaxTreeError) Error() string {
	return fmt.Sprintf("malformed syntax tree: expected %s, got label %d", e.Want, e.Got)
}

// Build walks a Grammar Syntax Tree rooted at an MStart node and returns
// one NFA per RULE child, in source order, plus the label table the
// walk interned NAME/STRING atoms into. This is pgen2's PyPgen.handleStart
// generalized over an arbitrary number of rules.
func Build(tree *syntax.Tree) (*label.Table, []*NFA, error) {
	if tree.Label != syntax.MStart {
		return nil, nil, &MalformedSyntaxTreeError{Want: "MSTART", Got: tree.Label}
	}
	labels := label.New()
	b := &builder{labels: labels, nextKind: int(token.NTOffset)}
	var nfas []*NFA
	for _, child := range tree.Children {
		if child.IsLeaf() {
			continue // blank NEWLINE between rules
		}
		if child.Label != syntax.Rule {
			return nil, nil, &MalformedSyntaxTreeError{Want: "RULE", Got: child.Label}
		}
		n, err := b.buildRule(child)
		if err != nil {
			return nil, nil, err
		}
		nfas = append(nfas, n)
	}
	return labels, nfas, nil
}

type builder struct {
	labels   *label.Table
	nextKind int
	nfa      *NFA // the rule currently under construction
}

// buildRule implements handleRule: NAME COLON RHS NEWLINE.
func (b *builder) buildRule(rule *syntax.Tree) (*NFA, error) {
	if len(rule.Children) != 4 {
		return nil, &MalformedSyntaxTreeError{Want: "RULE(NAME COLON RHS NEWLINE)", Got: rule.Label}
	}
	name, colon, rhs, newline := rule.Children[0], rule.Children[1], rule.Children[2], rule.Children[3]
	if !name.IsLeaf() || name.Tok.Kind != token.Name {
		return nil, &MalformedSyntaxTreeError{Want: "NAME", Got: name.Label}
	}
	if !colon.IsLeaf() || colon.Tok.Kind != token.Colon {
		return nil, &MalformedSyntaxTreeError{Want: "COLON", Got: colon.Label}
	}
	if !newline.IsLeaf() || newline.Tok.Kind != token.Newline {
		return nil, &MalformedSyntaxTreeError{Want: "NEWLINE", Got: newline.Label}
	}

	n := &NFA{Kind: b.nextKind, Name: name.Tok.Text}
	b.nextKind++
	b.nfa = n

	// Record the rule's own name in the Label Table as a (NAME, name)
	// pair, matching handleRule's self-registration — a rule the label
	// table has never seen referenced still needs a stable label-table
	// position so downstream label indices stay grammar-order-stable
	// whether or not anything ends up referencing it.
	b.labels.Intern(token.Name, name.Tok.Text)

	start, finish, err := b.buildRhs(rhs)
	if err != nil {
		return nil, err
	}
	n.Start, n.Accept = start, finish
	return n, nil
}

// buildRhs implements handleRhs: ALT (VBAR ALT)*. Multiple alternatives
// are wired through a diamond of fresh epsilon-start/epsilon-finish
// states, exactly as pgen2 does it, rather than epsilon-chaining them —
// this keeps every alternative's own internal states untouched.
func (b *builder) buildRhs(rhs *syntax.Tree) (int, int, error) {
	if rhs.Label != syntax.Rhs || len(rhs.Children) == 0 {
		return 0, 0, &MalformedSyntaxTreeError{Want: "RHS", Got: rhs.Label}
	}
	start, finish, err := b.buildAlt(rhs.Children[0])
	if err != nil {
		return 0, 0, err
	}
	if len(rhs.Children) == 1 {
		return start, finish, nil
	}

	cStart, cFinish := start, finish
	start = b.nfa.AddState()
	b.nfa.AddArc(start, empty, cStart)
	finish = b.nfa.AddState()
	b.nfa.AddArc(cFinish, empty, finish)

	for i := 2; i < len(rhs.Children); i += 2 { // skip VBAR leaves
		alt := rhs.Children[i]
		aStart, aFinish, err := b.buildAlt(alt)
		if err != nil {
			return 0, 0, err
		}
		b.nfa.AddArc(start, empty, aStart)
		b.nfa.AddArc(aFinish, empty, finish)
	}
	return start, finish, nil
}

// buildAlt implements handleAlt: ITEM+, epsilon-chaining each item's
// finish state into the next item's start.
func (b *builder) buildAlt(alt *syntax.Tree) (int, int, error) {
	if alt.Label != syntax.Alt || len(alt.Children) == 0 {
		return 0, 0, &MalformedSyntaxTreeError{Want: "ALT", Got: alt.Label}
	}
	start, finish, err := b.buildItem(alt.Children[0])
	if err != nil {
		return 0, 0, err
	}
	for _, item := range alt.Children[1:] {
		cStart, cFinish, err := b.buildItem(item)
		if err != nil {
			return 0, 0, err
		}
		b.nfa.AddArc(finish, empty, cStart)
		finish = cFinish
	}
	return start, finish, nil
}

// buildItem implements handleItem:
//
//	ITEM := LSQB RHS RSQB | ATOM (STAR | PLUS)?
func (b *builder) buildItem(item *syntax.Tree) (int, int, error) {
	if item.Label != syntax.Item || len(item.Children) == 0 {
		return 0, 0, &MalformedSyntaxTreeError{Want: "ITEM", Got: item.Label}
	}
	first := item.Children[0]
	if first.IsLeaf() && first.Tok.Kind == token.Lsqb {
		if len(item.Children) != 3 {
			return 0, 0, &MalformedSyntaxTreeError{Want: "ITEM(LSQB RHS RSQB)", Got: item.Label}
		}
		start := b.nfa.AddState()
		finish := b.nfa.AddState()
		cStart, cFinish, err := b.buildRhs(item.Children[1])
		if err != nil {
			return 0, 0, err
		}
		b.nfa.AddArc(start, empty, cStart)
		b.nfa.AddArc(cFinish, empty, finish)
		b.nfa.AddArc(start, empty, finish) // the optional's bypass
		return start, finish, nil
	}

	if first.Label != syntax.Atom {
		return 0, 0, &MalformedSyntaxTreeError{Want: "ATOM", Got: first.Label}
	}
	start, finish, err := b.buildAtom(first)
	if err != nil {
		return 0, 0, err
	}
	if len(item.Children) > 1 {
		quant := item.Children[1]
		if !quant.IsLeaf() {
			return 0, 0, &MalformedSyntaxTreeError{Want: "STAR or PLUS", Got: quant.Label}
		}
		b.nfa.AddArc(finish, empty, start)
		switch quant.Tok.Kind {
		case token.Star:
			finish = start
		case token.Plus:
			// finish already correct: at least one pass required.
		default:
			return 0, 0, &MalformedSyntaxTreeError{Want: "STAR or PLUS", Got: quant.Label}
		}
	}
	return start, finish, nil
}

// buildAtom implements handleAtom:
//
//	ATOM := LPAR RHS RPAR | NAME | STRING
func (b *builder) buildAtom(atom *syntax.Tree) (int, int, error) {
	if atom.Label != syntax.Atom || len(atom.Children) == 0 {
		return 0, 0, &MalformedSyntaxTreeError{Want: "ATOM", Got: atom.Label}
	}
	first := atom.Children[0]
	if first.IsLeaf() && first.Tok.Kind == token.Lpar {
		if len(atom.Children) != 3 {
			return 0, 0, &MalformedSyntaxTreeError{Want: "ATOM(LPAR RHS RPAR)", Got: atom.Label}
		}
		return b.buildRhs(atom.Children[1])
	}
	if !first.IsLeaf() || (first.Tok.Kind != token.Name && first.Tok.Kind != token.String) {
		return 0, 0, &MalformedSyntaxTreeError{Want: "NAME or STRING", Got: first.Label}
	}
	start := b.nfa.AddState()
	finish := b.nfa.AddState()
	idx := b.labels.Intern(first.Tok.Kind, first.Tok.Text)
	b.nfa.AddArc(start, idx, finish)
	return start, finish, nil
}
