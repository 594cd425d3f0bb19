// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"jcdist-core/estimate"
	"jcdist/internal/jsonlutil"
	"jcdist/internal/output"
)

// StartPointJSONLWriter streams each sweep point as one JSON line (v1).
func StartPointJSONLWriter(out io.Writer, bufSize int) (chan<- estimate.Point, <-chan error) {
	return jsonlutil.Start[estimate.Point](out, bufSize,
		func(enc *json.Encoder, p estimate.Point) error {
			return enc.Encode(output.ToAPIPoint(p))
		},
		IsBrokenPipe,
	)
}
