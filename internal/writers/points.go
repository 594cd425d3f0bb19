// internal/writers/points.go
package writers

import (
	"fmt"
	"io"

	"jcdist-core/estimate"
	"jcdist/internal/output"
)

// StartPointWriter spins up a writer goroutine for sweep points. text and
// tsv stream rows as they arrive; json buffers the whole set so it can
// emit one array; jsonl streams one object per line.
func StartPointWriter(out io.Writer, format string, header bool, bufSize int) (chan<- estimate.Point, <-chan error) {
	if format == output.FormatJSONL {
		return StartPointJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan estimate.Point, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []estimate.Point
			for p := range in {
				buf = append(buf, p)
			}
			err = output.WritePointsJSON(out, buf)

		case output.FormatText, output.FormatTSV:
			err = output.StreamPointsText(out, in, header)

		default:
			// Unreachable past CLI validation.
			err = fmt.Errorf("unsupported output %q", format)
			for range in {
			}
		}
		errCh <- err
	}()

	return in, errCh
}
