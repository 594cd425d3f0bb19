// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// Start launches an encoder goroutine that emits one JSON document per
// line for every value received on the returned channel. Close the
// channel when done; the error channel delivers exactly one result
// after the final flush.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)
	go func() {
		done <- drainEncode(out, in, encode, isBroken)
	}()
	return in, done
}

// drainEncode keeps receiving until the channel closes even after an
// encode failure, so producers never block on a dead consumer. Only the
// first error is reported; flush errors from a closed pipe are dropped.
func drainEncode[T any](out io.Writer, in <-chan T, encode func(*json.Encoder, T) error, isBroken func(error) bool) error {
	bw := bufio.NewWriterSize(out, 64<<10)
	enc := json.NewEncoder(bw)

	var firstErr error
	for v := range in {
		if firstErr != nil {
			continue
		}
		if err := encode(enc, v); err != nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return firstErr
	}
	if err := bw.Flush(); err != nil && !isBroken(err) {
		return err
	}
	return nil
}
