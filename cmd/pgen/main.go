// Command pgen compiles a grammar written in pgen meta-grammar notation
// and, optionally, parses a second input file against it. Its flag shape
// (-i, -o) mirrors pgen2's own parserMain/getopt CLI; the surrounding
// cobra scaffolding and --debug/--trace flags follow the teacher's
// lang/cmd/cow-lang/main.go and lang/in/cli/cli.go split between a thin
// main and a reusable Run entry point.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/shadowCow/pgen/config"
	"github.com/shadowCow/pgen/diag"
	"github.com/shadowCow/pgen/firstset"
	"github.com/shadowCow/pgen/frontend"
	"github.com/shadowCow/pgen/grammar"
	"github.com/shadowCow/pgen/parsedriver"
)

var (
	inputFile  string
	outputFile string
	parseFile  string
	configFile string
	debug      bool
	trace      bool
)

func main() {
	root := &cobra.Command{
		Use:   "pgen",
		Short: "Compile a pgen meta-grammar into a table-driven LL(1) parser.",
		RunE:  run,
	}
	root.Flags().StringVarP(&inputFile, "input", "i", "", "grammar file to compile (default: stdin)")
	root.Flags().StringVarP(&outputFile, "output", "o", "", "where to write the compiled grammar dump (default: stdout)")
	root.Flags().StringVar(&parseFile, "parse", "", "optional file to parse against the compiled grammar")
	root.Flags().StringVar(&configFile, "config", "", "optional TOML config (additional tokens, operator map, start symbol)")
	root.Flags().BoolVar(&debug, "debug", false, "dump label table, DFAs, and FIRST sets")
	root.Flags().BoolVar(&trace, "trace", false, "trace the parse driver's stack machine")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	runID := uuid.New()
	if debug || trace {
		fmt.Fprintf(os.Stderr, "pgen: compile id %s\n", runID)
	}

	src, err := readInput()
	if err != nil {
		return wrapErr(errors.Wrap(err, "reading grammar"))
	}

	tree, err := frontend.ParseString(src)
	if err != nil {
		return wrapErr(errors.Wrap(err, "parsing grammar source"))
	}

	opts := grammar.Options{}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return wrapErr(errors.Wrap(err, "loading config"))
		}
		opts.StartSymbol = cfg.Start
		opts.TerminalNames = cfg.TerminalNames()
		opts.OperatorMap = cfg.OperatorMap()
	}

	compiled, diags, err := grammar.Compile(tree, opts)
	if err != nil {
		return wrapErr(errors.Wrap(err, "compiling grammar"))
	}
	diag.PrintAll(os.Stderr, diags)

	out, err := openOutput()
	if err != nil {
		return wrapErr(err)
	}
	defer out.Close()

	if debug {
		dumpDebug(out, compiled)
	} else {
		fmt.Fprintf(out, "compiled %d rule(s), start kind %d\n", len(compiled.DFAs), compiled.Start)
	}

	if parseFile == "" {
		return nil
	}

	toParse, err := os.ReadFile(parseFile)
	if err != nil {
		return wrapErr(errors.Wrap(err, "reading parse input"))
	}
	toks, err := frontend.NewTokenizer(string(toParse)).Tokenize()
	if err != nil {
		return wrapErr(errors.Wrap(err, "tokenizing parse input"))
	}

	driver := parsedriver.New(compiled)
	driver.SetTrace(trace)
	result, err := driver.Parse(frontend.Stream(toks))
	if err != nil {
		return wrapErr(errors.Wrap(err, "parsing input"))
	}
	fmt.Fprintln(out, result.String())
	return nil
}

func readInput() (string, error) {
	if inputFile == "" {
		data, err := os.ReadFile("/dev/stdin")
		return string(data), err
	}
	data, err := os.ReadFile(inputFile)
	return string(data), err
}

func openOutput() (*os.File, error) {
	if outputFile == "" {
		return os.Stdout, nil
	}
	return os.Create(outputFile)
}

func dumpDebug(out *os.File, c *grammar.Compiled) {
	fmt.Fprintf(out, "labels (%d):\n", c.Labels.Len())
	for i, e := range c.Labels.Entries() {
		fmt.Fprintf(out, "  %d: kind=%s text=%q\n", i, e.Kind, e.Text)
	}
	for _, d := range c.DFAs {
		fmt.Fprintf(out, "rule %s (kind %d), %d state(s)\n", d.Name, d.Kind, len(d.States))
		for i, s := range d.States {
			fmt.Fprintf(out, "  state %d: %d arc(s), accepting=%v\n", i, len(s.Arcs), s.Accepting(i))
		}
		if bits, ok := d.First.Bits.(firstset.Bits); ok {
			fmt.Fprintf(out, "  first set: %x\n", bits.Serialize(c.Labels.Len()))
		}
	}
}

func wrapErr(err error) error {
	if debug {
		return fmt.Errorf("%+v", err)
	}
	return err
}
