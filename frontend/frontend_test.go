package frontend_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/pgen/frontend"
	"github.com/shadowCow/pgen/syntax"
	"github.com/shadowCow/pgen/token"
)

func Test_Tokenize_recognizesPunctuationAndLiterals(t *testing.T) {
	toks, err := frontend.NewTokenizer("start: 'a' | [b] c*\n").Tokenize()
	require.NoError(t, err)

	var kinds []token.Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Name, token.Colon, token.String, token.Vbar,
		token.Lsqb, token.Name, token.Rsqb, token.Name, token.Star,
		token.Newline, token.Endmarker,
	}, kinds)
}

func Test_Tokenize_unterminatedStringIsAnError(t *testing.T) {
	_, err := frontend.NewTokenizer("start: 'a\n").Tokenize()
	assert.Error(t, err)
}

func Test_Tokenize_commentsAreSkipped(t *testing.T) {
	toks, err := frontend.NewTokenizer("start: 'a' # trailing comment\n").Tokenize()
	require.NoError(t, err)
	assert.Equal(t, token.Newline, toks[len(toks)-2].Kind)
}

func Test_ParseString_buildsMStartTree(t *testing.T) {
	tree, err := frontend.ParseString("start: 'a' 'b'\n")
	require.NoError(t, err)
	assert.Equal(t, syntax.MStart, tree.Label)
	require.Len(t, tree.Children, 2) // one RULE, one trailing ENDMARKER leaf
	assert.Equal(t, syntax.Rule, tree.Children[0].Label)
}

func Test_ParseString_rejectsMalformedSource(t *testing.T) {
	_, err := frontend.ParseString("start 'a'\n") // missing colon
	assert.Error(t, err)
}

func Test_Stream_returnsEOFAfterFinalEndmarker(t *testing.T) {
	toks, err := frontend.NewTokenizer("a").Tokenize()
	require.NoError(t, err)
	s := frontend.Stream(toks)

	var last token.Token
	for i := 0; i < len(toks); i++ {
		last, err = s.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, token.Endmarker, last.Kind)

	// Every call after the final Endmarker has been yielded must return
	// io.EOF, matching token.Stream's documented producer contract.
	for i := 0; i < 3; i++ {
		_, err = s.Next()
		assert.Equal(t, io.EOF, err)
	}
}
