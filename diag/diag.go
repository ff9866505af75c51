// Package diag renders compile-time diagnostics (empty productions, left
// recursion, untranslatable labels) to a terminal, color-coded the way
// kubernetes-sigs/instrumentation-tools and theakshaypant/regret render
// their own warning/error streams with github.com/fatih/color.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Diagnostic is the common shape the dfa, firstset, and resolve packages
// each return their own named diagnostic types as. Compile (package
// grammar) normalizes all three into this before returning them to the
// caller.
type Diagnostic struct {
	Kind    string
	Subject string
	Message string
}

var warn = color.New(color.FgYellow, color.Bold)

// Print writes one diagnostic line to w, prefixed with its kind in bold
// yellow.
func Print(w io.Writer, d Diagnostic) {
	warn.Fprintf(w, "[%s]", d.Kind)
	fmt.Fprintf(w, " %s\n", d.Message)
}

// PrintAll writes every diagnostic in ds to w, in order.
func PrintAll(w io.Writer, ds []Diagnostic) {
	for _, d := range ds {
		Print(w, d)
	}
}
