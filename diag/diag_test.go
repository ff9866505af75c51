package diag_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadowCow/pgen/diag"
)

func Test_PrintAll_writesEveryDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	diag.PrintAll(&buf, []diag.Diagnostic{
		{Kind: "EmptyProduction", Subject: "start", Message: "nonterminal 'start' may produce empty"},
		{Kind: "LeftRecursion", Subject: "expr", Message: "left-recursion for 'expr'"},
	})

	out := buf.String()
	assert.Contains(t, out, "EmptyProduction")
	assert.Contains(t, out, "nonterminal 'start' may produce empty")
	assert.Contains(t, out, "LeftRecursion")
}

func Test_PrintAll_empty(t *testing.T) {
	var buf bytes.Buffer
	diag.PrintAll(&buf, nil)
	assert.Empty(t, buf.String())
}
