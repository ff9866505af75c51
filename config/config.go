// Package config loads the optional pgen configuration file: extra
// terminal token names and operator spellings the Label Resolver should
// consult beyond its built-in defaults, plus CLI defaults. Modeled on
// dekarrin/tunaq's use of github.com/BurntSushi/toml for structured
// config in the pack's other parser-adjacent repository.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/shadowCow/pgen/resolve"
	"github.com/shadowCow/pgen/token"
)

// Config is the on-disk shape of a pgen config file.
//
//	start = "start"
//
//	[tokens]
//	NUMBER = 300
//	STRING_LIT = 301
//
//	[operators]
//	"." = 302
//	"->" = 303
type Config struct {
	Start     string         `toml:"start"`
	Tokens    map[string]int `toml:"tokens"`
	Operators map[string]int `toml:"operators"`
}

// Load reads and parses the TOML file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// TerminalNames converts Tokens into the map package resolve expects.
func (c *Config) TerminalNames() map[string]token.Kind {
	out := make(map[string]token.Kind, len(c.Tokens))
	for name, kind := range c.Tokens {
		out[name] = token.Kind(kind)
	}
	return out
}

// OperatorMap converts Operators into the map package resolve expects,
// falling back to pgen2's default spellings for anything not overridden.
func (c *Config) OperatorMap() map[string]token.Kind {
	out := resolve.DefaultOperatorMap()
	for sym, kind := range c.Operators {
		out[sym] = token.Kind(kind)
	}
	return out
}
