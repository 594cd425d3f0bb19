// internal/sweepapp/app.go
package sweepapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"jcdist-core/estimate"
	"jcdist/internal/clibase"
	"jcdist/internal/cmdutil"
	"jcdist/internal/pipeline"
	"jcdist/internal/sweepcli"
	"jcdist/internal/version"
	"jcdist/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, evaluates the likelihood sweep on a worker
// pool, and streams points to stdout in grid order. Exit codes: 0 ok
// (including broken pipe), 2 usage or input error, 3 write error, 130
// canceled.
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

	fs := sweepcli.NewFlagSet("jcdist-sweep")
	fs.SetOutput(io.Discard) // silence default flag pkg

	// No args => register flags then print usage
	if len(argv) == 0 {
		_, _ = sweepcli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return finish(0)
	}

	opts, err := sweepcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			sweepcli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "jcdist-sweep version %s\n", version.Version)
		return finish(0)
	}

	ts := opts.Values
	if len(ts) == 0 {
		ts, err = estimate.Grid(opts.From, opts.To, opts.Step)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	inCh, writeErr := writers.StartPointWriter(outw, opts.Output, opts.Header, thr*4)

	_, perr := cmdutil.RunSweep(ctx, pipeline.Config{Threads: thr}, opts.SeqA, opts.SeqB, ts,
		func(p estimate.Point) error {
			select {
			case inCh <- p:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	close(inCh)

	werr := <-writeErr
	if writers.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) || errors.Is(perr, context.DeadlineExceeded) {
			return finish(130)
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	return finish(0)
}
