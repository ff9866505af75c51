package frontend

import (
	"github.com/shadowCow/pgen/syntax"
	"github.com/shadowCow/pgen/token"
)

// Parser is a recursive-descent parser for pgen meta-grammar source,
// producing a syntax.Tree. It is a direct port of pgen2's parser.py
// handleStart/handleRule/handleRhs/handleAlt/handleItem/handleAtom, with
// the lookahead bookkeeping simplified to plain single-token lookahead
// (parser.py carries an explicit crntToken/None dance because its
// tokenizer is a Python generator; a Go slice index doesn't need that).
type Parser struct {
	toks []token.Token
	pos  int
}

// NewParser returns a Parser over toks (as produced by Tokenizer.Tokenize).
func NewParser(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// ParseString tokenizes and parses src in one step.
func ParseString(src string) (*syntax.Tree, error) {
	toks, err := NewTokenizer(src).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(toks).Parse()
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.Endmarker}
	}
	return p.toks[p.pos]
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.cur()
	if tok.Kind != kind {
		return tok, &SyntaxError{Line: tok.Line, Message: "expecting " + kind.String() + ", got " + tok.Kind.String()}
	}
	return p.advance(), nil
}

// Parse implements MSTART := ( RULE | NEWLINE )* ENDMARKER.
func (p *Parser) Parse() (*syntax.Tree, error) {
	var children []*syntax.Tree
	for p.cur().Kind != token.Endmarker {
		if p.cur().Kind == token.Newline {
			children = append(children, syntax.Leaf(p.advance()))
			continue
		}
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		children = append(children, rule)
	}
	children = append(children, syntax.Leaf(p.advance()))
	return syntax.Interior(syntax.MStart, children...), nil
}

// parseRule implements RULE := NAME COLON RHS NEWLINE.
func (p *Parser) parseRule() (*syntax.Tree, error) {
	name, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}
	colon, err := p.expect(token.Colon)
	if err != nil {
		return nil, err
	}
	rhs, err := p.parseRhs()
	if err != nil {
		return nil, err
	}
	newline, err := p.expect(token.Newline)
	if err != nil {
		return nil, err
	}
	return syntax.Interior(syntax.Rule, syntax.Leaf(name), syntax.Leaf(colon), rhs, syntax.Leaf(newline)), nil
}

// parseRhs implements RHS := ALT ( VBAR ALT )*.
func (p *Parser) parseRhs() (*syntax.Tree, error) {
	alt, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	children := []*syntax.Tree{alt}
	for p.cur().Kind == token.Vbar {
		children = append(children, syntax.Leaf(p.advance()))
		alt, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		children = append(children, alt)
	}
	return syntax.Interior(syntax.Rhs, children...), nil
}

// parseAlt implements ALT := ITEM+.
func (p *Parser) parseAlt() (*syntax.Tree, error) {
	item, err := p.parseItem()
	if err != nil {
		return nil, err
	}
	children := []*syntax.Tree{item}
	for startsItem(p.cur()) {
		item, err := p.parseItem()
		if err != nil {
			return nil, err
		}
		children = append(children, item)
	}
	return syntax.Interior(syntax.Alt, children...), nil
}

func startsItem(tok token.Token) bool {
	switch tok.Kind {
	case token.Lsqb, token.Lpar, token.Name, token.String:
		return true
	default:
		return false
	}
}

// parseItem implements ITEM := LSQB RHS RSQB | ATOM ( STAR | PLUS )?.
func (p *Parser) parseItem() (*syntax.Tree, error) {
	if p.cur().Kind == token.Lsqb {
		lsqb := syntax.Leaf(p.advance())
		rhs, err := p.parseRhs()
		if err != nil {
			return nil, err
		}
		rsqb, err := p.expect(token.Rsqb)
		if err != nil {
			return nil, err
		}
		return syntax.Interior(syntax.Item, lsqb, rhs, syntax.Leaf(rsqb)), nil
	}

	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	children := []*syntax.Tree{atom}
	if p.cur().Kind == token.Star || p.cur().Kind == token.Plus {
		children = append(children, syntax.Leaf(p.advance()))
	}
	return syntax.Interior(syntax.Item, children...), nil
}

// parseAtom implements ATOM := LPAR RHS RPAR | NAME | STRING.
func (p *Parser) parseAtom() (*syntax.Tree, error) {
	switch p.cur().Kind {
	case token.Lpar:
		lpar := syntax.Leaf(p.advance())
		rhs, err := p.parseRhs()
		if err != nil {
			return nil, err
		}
		rpar, err := p.expect(token.Rpar)
		if err != nil {
			return nil, err
		}
		return syntax.Interior(syntax.Atom, lpar, rhs, syntax.Leaf(rpar)), nil
	case token.Name:
		return syntax.Interior(syntax.Atom, syntax.Leaf(p.advance())), nil
	case token.String:
		return syntax.Interior(syntax.Atom, syntax.Leaf(p.advance())), nil
	default:
		tok := p.cur()
		return nil, &SyntaxError{Line: tok.Line, Message: "expecting NAME, STRING, or '(', got " + tok.Kind.String()}
	}
}
