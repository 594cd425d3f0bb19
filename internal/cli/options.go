// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"
	"math"

	"jcdist/internal/clibase"
	"jcdist/internal/cliutil"
)

// Search defaults. A start of 0.1 with step 0.1 reaches any realistic
// pairwise distance within a handful of rounds.
const (
	DefaultT0   = 0.1
	DefaultStep = 0.1
)

// Options holds all jcdist flags.
type Options struct {
	clibase.Common

	// Search
	T0   float64
	Step float64
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --seq-a AAGTCCAG --seq-b AAGCCCCG\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] AAGTCCAG AAGCCCCG\n", name)

		_, _ = fmt.Fprintln(out, "\nSearch:")
		_, _ = fmt.Fprintf(out, "      --t0 float           Starting distance guess [%s]\n", def("t0"))
		_, _ = fmt.Fprintf(out, "      --step float         Starting hill-climb step size [%s]\n", def("step"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("jcdist"), nil) }

// PrintExamples prints a tiny, focused quickstart for jcdist.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "jcdist", []clibase.Example{
		{
			Desc:    "Estimate the ML Jukes-Cantor distance for an aligned pair:",
			Command: "jcdist --seq-a AAGTCCAG --seq-b AAGCCCCG",
		},
		{
			Desc:    "JSON output with a custom start point:",
			Command: "jcdist -o json --t0 0.5 --step 0.05 AAGTCCAG AAGCCCCG",
		},
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	// Shared flags via clibase
	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	// Search flags
	fs.Float64Var(&o.T0, "t0", DefaultT0, "starting distance guess [0.1]")
	fs.Float64Var(&o.Step, "step", DefaultStep, "starting hill-climb step size [0.1]")

	// Help / examples
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	// Split & parse
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	// Finalize header, adopt positionals, shared validation
	if err := clibase.AfterParse(fs, &c, noHeader, posArgs); err != nil {
		return o, err
	}
	// Search-specific validation; sign and size are only warned about in
	// the app, since the climb is defined for them.
	if math.IsNaN(o.T0) || math.IsInf(o.T0, 0) {
		return o, fmt.Errorf("--t0 must be finite")
	}
	if math.IsNaN(o.Step) || math.IsInf(o.Step, 0) {
		return o, fmt.Errorf("--step must be finite")
	}

	// Embed shared options
	o.Common = c
	return o, nil
}
