// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK signals that --examples was handled and the app
// should exit 0 once the quickstart has been written.
var ErrPrintedAndExitOK = errors.New("examples printed")

// Example is one quickstart entry: a short description and the command
// line demonstrating it.
type Example struct {
	Desc    string
	Command string
}

// PrintExamples renders the tool quickstart: a header, each example as a
// description plus indented command, and a closing tip pointing at -h.
func PrintExamples(out io.Writer, name string, examples []Example) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n", name)
	for _, ex := range examples {
		_, _ = fmt.Fprintf(out, "\n%s\n\n  %s\n", ex.Desc, ex.Command)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
