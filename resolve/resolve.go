// Package resolve implements the Label Resolver: rewriting every
// NAME/STRING label table entry into either a nonterminal reference (the
// NAME matches a declared rule), a terminal kind (the NAME matches a
// caller-supplied token name, or the STRING is an operator found in the
// operator map), or a keyword (the STRING looks like an identifier, so
// it becomes a NAME-kind entry pinned to that exact spelling). Grounded
// on pgen2's pgen.py translateLabels.
package resolve

import (
	"unicode"

	"github.com/shadowCow/pgen/dfa"
	"github.com/shadowCow/pgen/label"
	"github.com/shadowCow/pgen/token"
)

// Diagnostic reports a label neither a nonterminal, a known terminal
// name, nor a known operator spelling could be resolved against. pgen2
// prints "Can't translate ... label" and leaves the entry untouched;
// this port does the same, so an unresolved NAME keeps behaving as a
// literal keyword match and an unresolved STRING keeps its raw quoted
// text, which is the original's de-facto (if accidental) fallback.
type Diagnostic struct {
	Kind    string
	Label   string
	Message string
}

const untranslatable = "UntranslatableLabel"

// DefaultOperatorMap covers the meta-grammar's own punctuation — ( ) [ ]
// : | * + — which a grammar being compiled can quote as terminals of the
// language it describes. Any other operator spelling must come from the
// operator map the caller passes instead.
func DefaultOperatorMap() map[string]token.Kind {
	return map[string]token.Kind{
		"(": token.Lpar,
		")": token.Rpar,
		"[": token.Lsqb,
		"]": token.Rsqb,
		":": token.Colon,
		"|": token.Vbar,
		"*": token.Star,
		"+": token.Plus,
	}
}

// Resolve rewrites labels in place using dfas to resolve NAME references
// to other rules and termNames/opMap to resolve everything else. It
// returns one diagnostic per label that could not be translated.
func Resolve(labels *label.Table, dfas []*dfa.DFA, termNames map[string]token.Kind, opMap map[string]token.Kind) []Diagnostic {
	var diags []Diagnostic
	for i := 0; i < labels.Len(); i++ {
		entry := labels.At(i)
		switch entry.Kind {
		case token.Name:
			if resolved, ok := resolveNonterminal(dfas, entry.Text); ok {
				labels.Set(i, resolved)
				continue
			}
			if kind, ok := termNames[entry.Text]; ok {
				labels.Set(i, label.Entry{Kind: kind})
				continue
			}
			diags = append(diags, Diagnostic{
				Kind:    untranslatable,
				Label:   entry.Text,
				Message: "can't translate NAME label '" + entry.Text + "'",
			})
		case token.String:
			if resolved, ok := resolveString(entry.Text, opMap); ok {
				labels.Set(i, resolved)
				continue
			}
			diags = append(diags, Diagnostic{
				Kind:    untranslatable,
				Label:   entry.Text,
				Message: "can't translate STRING label " + entry.Text,
			})
		}
	}
	return diags
}

func resolveNonterminal(dfas []*dfa.DFA, name string) (label.Entry, bool) {
	for _, d := range dfas {
		if d.Name == name {
			return label.Entry{Kind: token.Kind(d.Kind)}, true
		}
	}
	return label.Entry{}, false
}

func resolveString(quoted string, opMap map[string]token.Kind) (label.Entry, bool) {
	if len(quoted) < 2 || quoted[0] != quoted[len(quoted)-1] {
		return label.Entry{}, false
	}
	inner := quoted[1 : len(quoted)-1]
	if inner == "" {
		return label.Entry{}, false
	}
	first := rune(inner[0])
	if unicode.IsLetter(first) || first == '_' {
		return label.Entry{Kind: token.Name, Text: inner}, true
	}
	if kind, ok := opMap[inner]; ok {
		return label.Entry{Kind: kind}, true
	}
	return label.Entry{}, false
}
