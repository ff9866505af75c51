package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadowCow/pgen/token"
)

func Test_Kind_String(t *testing.T) {
	testCases := []struct {
		name string
		kind token.Kind
		want string
	}{
		{"known terminal", token.Name, "NAME"},
		{"nonterminal", token.NTOffset + 2, "NT#2"},
		{"unknown below offset", token.Kind(200), "KIND#200"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.String())
		})
	}
}

func Test_Epsilon_sharesEndmarkerValue(t *testing.T) {
	assert.Equal(t, token.Endmarker, token.Epsilon)
}

func Test_Token_String(t *testing.T) {
	tok := token.Token{Kind: token.Name, Text: "x", Line: 3}
	assert.Equal(t, `NAME("x")@3`, tok.String())
}
