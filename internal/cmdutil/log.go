// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints a "WARN: "-prefixed line unless quiet is set. Warnings
// go to dst (normally stderr) so piped stdout stays machine-readable.
func Warnf(dst io.Writer, quiet bool, format string, args ...any) {
	if quiet || dst == nil {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", args...)
}
