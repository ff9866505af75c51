package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/pgen/config"
	"github.com/shadowCow/pgen/resolve"
	"github.com/shadowCow/pgen/token"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func Test_Load_parsesStartAndTokens(t *testing.T) {
	path := writeConfig(t, `
start = "expr"

[tokens]
NUMBER = 300

[operators]
"->" = 301
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expr", cfg.Start)
	assert.Equal(t, 300, cfg.Tokens["NUMBER"])
	assert.Equal(t, 301, cfg.Operators["->"])
}

func Test_TerminalNames_convertsToTokenKind(t *testing.T) {
	cfg := &config.Config{Tokens: map[string]int{"NUMBER": 300}}
	names := cfg.TerminalNames()
	assert.Equal(t, token.Kind(300), names["NUMBER"])
}

func Test_OperatorMap_mergesOverDefaults(t *testing.T) {
	cfg := &config.Config{Operators: map[string]int{"->": 301}}
	ops := cfg.OperatorMap()

	assert.Equal(t, token.Kind(301), ops["->"])
	// defaults survive alongside the override
	assert.Equal(t, resolve.DefaultOperatorMap()["("], ops["("])
}

func Test_Load_missingFileReturnsError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
