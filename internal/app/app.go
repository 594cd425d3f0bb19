// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"jcdist-core/estimate"
	"jcdist-core/jc"
	"jcdist-core/seq"
	"jcdist/internal/cli"
	"jcdist/internal/clibase"
	"jcdist/internal/cmdutil"
	"jcdist/internal/output"
	"jcdist/internal/version"
	"jcdist/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, runs the distance estimate, and writes one
// record to stdout. Exit codes: 0 ok (including broken pipe), 2 usage or
// input error, 3 write error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)
	finish := func(code int) int {
		flushErr := outw.Flush()
		if writers.IsBrokenPipe(flushErr) {
			return 0
		} else if flushErr != nil {
			fmt.Fprintln(stderr, flushErr)
			return 3
		}
		return code
	}

	fs := cli.NewFlagSet("jcdist")
	fs.SetOutput(io.Discard) // silence default flag pkg

	// No args => register flags then print usage
	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return finish(0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			cli.PrintExamples(outw)
			return finish(0)
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return finish(0)
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return finish(2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "jcdist version %s\n", version.Version)
		return finish(0)
	}

	// Degenerate starts warn rather than fail.
	if opts.T0 < 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "--t0 %g is negative; t < 0 carries no probability mass", opts.T0)
	}
	if opts.Step <= 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "--step %g cannot refine; the estimate may sit at the start point", opts.Step)
	}

	res, err := estimate.Distance(opts.SeqA, opts.SeqB, opts.T0, opts.Step)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	k, err := seq.Mismatches(opts.SeqA, opts.SeqB)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	n := len(opts.SeqA)
	p := float64(k) / float64(n)

	rec := output.Estimate{
		Length:     n,
		Mismatches: k,
		PDistance:  p,
		T0:         opts.T0,
		Step0:      opts.Step,
		Result:     res,
		Formula:    jc.DistanceFromProportion(p),
	}

	switch opts.Output {
	case output.FormatJSON:
		err = output.WriteEstimateJSON(outw, rec)
	case output.FormatJSONL:
		err = output.WriteEstimateJSONL(outw, rec)
	default: // text|tsv, validated at parse time
		err = output.WriteEstimateText(outw, rec, opts.Header)
	}
	if writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	code := 0
	if parent.Err() != nil {
		code = 130
	}
	return finish(code)
}
