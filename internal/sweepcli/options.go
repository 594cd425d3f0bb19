// internal/sweepcli/options.go
package sweepcli

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"jcdist/internal/clibase"
	"jcdist/internal/cliutil"
)

// Grid defaults cover the usual pairwise range at plotting resolution.
const (
	DefaultFrom = 0.0
	DefaultTo   = 1.0
	DefaultStep = 0.01
)

// Options holds all jcdist-sweep flags.
type Options struct {
	clibase.Common

	// Sweep grid
	From float64
	To   float64
	Step float64

	// Explicit sample points; overrides the grid when non-empty.
	Values []float64

	// Performance
	Threads int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --seq-a AAGTCCAG --seq-b AAGCCCCG\n", name)

		_, _ = fmt.Fprintln(out, "\nSweep:")
		_, _ = fmt.Fprintf(out, "      --from float         Grid start [%s]\n", def("from"))
		_, _ = fmt.Fprintf(out, "      --to float           Grid end, inclusive [%s]\n", def("to"))
		_, _ = fmt.Fprintf(out, "      --step float         Grid spacing [%s]\n", def("step"))
		_, _ = fmt.Fprintln(out, "      --values list        Comma-separated t values replacing the grid")

		_, _ = fmt.Fprintln(out, "\nPerformance:")
		_, _ = fmt.Fprintf(out, "  -t, --threads int        Worker threads (0 = all CPUs) [%s]\n", def("threads"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("jcdist-sweep"), nil) }

// PrintExamples prints a tiny, focused quickstart for jcdist-sweep.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "jcdist-sweep", []clibase.Example{
		{
			Desc:    "Sample the log-likelihood surface for an aligned pair:",
			Command: "jcdist-sweep -a AAGTCCAG -b AAGCCCCG --from 0 --to 1 --step 0.01",
		},
		{
			Desc:    "Spot-check a few points as JSON lines:",
			Command: "jcdist-sweep -o jsonl --values 0.1,0.3041,0.5 AAGTCCAG AAGCCCCG",
		},
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool
	var valuesCSV string

	// Shared flags via clibase
	var c clibase.Common
	noHeader := clibase.Register(fs, &c)

	// Sweep flags
	fs.Float64Var(&o.From, "from", DefaultFrom, "grid start [0]")
	fs.Float64Var(&o.To, "to", DefaultTo, "grid end, inclusive [1]")
	fs.Float64Var(&o.Step, "step", DefaultStep, "grid spacing [0.01]")
	fs.StringVar(&valuesCSV, "values", "", "comma-separated t values replacing the grid")

	// Performance
	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

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

	// Sweep-specific validation
	if valuesCSV != "" {
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if set["from"] || set["to"] || set["step"] {
			return o, fmt.Errorf("--values conflicts with --from/--to/--step")
		}
		vals, err := parseValues(valuesCSV)
		if err != nil {
			return o, err
		}
		o.Values = vals
	} else {
		if math.IsNaN(o.From) || math.IsInf(o.From, 0) || math.IsNaN(o.To) || math.IsInf(o.To, 0) {
			return o, fmt.Errorf("--from/--to must be finite")
		}
		if !(o.Step > 0) || math.IsInf(o.Step, 0) {
			return o, fmt.Errorf("--step must be a finite value > 0")
		}
		if o.To < o.From {
			return o, fmt.Errorf("--to must be ≥ --from")
		}
	}
	if o.Threads < 0 {
		return o, fmt.Errorf("--threads must be ≥ 0")
	}

	// Embed shared options
	o.Common = c
	return o, nil
}

func parseValues(csv string) ([]float64, error) {
	parts := strings.Split(csv, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		s := strings.TrimSpace(part)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --values entry %q", s)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("--values entry %q is not finite", s)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("--values is empty")
	}
	return out, nil
}
