// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"jcdist-core/estimate"
	"jcdist/internal/pipeline"
)

// RunSweep runs the shared sweep pipeline and streams ordered points via
// send. It returns the number of points delivered and the first error
// encountered.
func RunSweep(
	ctx context.Context,
	cfg pipeline.Config,
	a, b string,
	ts []float64,
	send func(estimate.Point) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachPoint(ctx, cfg, a, b, ts, func(p estimate.Point) error {
		if err := send(p); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
