// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"jcdist-core/estimate"
	"jcdist-core/likelihood"
)

// Config controls the sweep evaluation pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// ForEachPoint evaluates the pair log-likelihood at every value of ts and
// hands the points to visit in input order. Evaluations run on
// cfg.Threads workers; the collector holds early-finished points until
// their predecessors land, so downstream writers see exactly the order a
// sequential Sweep would produce. It returns the first error encountered
// (including context cancellation).
func ForEachPoint(
	ctx context.Context,
	cfg Config,
	a, b string,
	ts []float64,
	visit func(estimate.Point) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		idx int
		t   float64
	}
	type result struct {
		idx int
		pt  estimate.Point
		err error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					l, err := likelihood.LogLikelihood(a, b, j.t)
					r := result{idx: j.idx, pt: estimate.Point{T: j.t, LogLik: l}, err: err}
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector + reorderer
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]estimate.Point, cfg.Threads*4)
		next := 0
		for r := range results {
			if cerr != nil {
				continue
			}
			if r.err != nil {
				cerr = r.err
				continue
			}
			pending[r.idx] = r.pt
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(p); err != nil {
					cerr = err
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for i, t := range ts {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: i, t: t}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
