// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs an app entrypoint with SIGINT/SIGTERM wired to context
// cancellation and exits with its code. A cancellation the app did not
// already report is normalized to 130.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	interrupted := ctx.Err() != nil
	stop()
	if interrupted && code == 0 {
		code = 130
	}
	os.Exit(code)
}
