package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadowCow/pgen/syntax"
	"github.com/shadowCow/pgen/token"
)

func Test_Leaf_IsLeaf(t *testing.T) {
	l := syntax.Leaf(token.Token{Kind: token.Name, Text: "x"})
	assert.True(t, l.IsLeaf())
	assert.Equal(t, int(token.Name), l.Label)
}

func Test_Interior_IsNotLeaf(t *testing.T) {
	i := syntax.Interior(syntax.Rule)
	assert.False(t, i.IsLeaf())
}

func Test_LabelName(t *testing.T) {
	assert.Equal(t, "MSTART", syntax.LabelName(syntax.MStart))
	assert.Equal(t, "?", syntax.LabelName(999))
}
