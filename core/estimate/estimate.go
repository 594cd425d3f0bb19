// core/estimate/estimate.go
// Maximum-likelihood Jukes-Cantor distance by adaptive hill climbing.
//
// Distance walks the single parameter t without derivatives:
//
//  1. step uphill in +t while the log-likelihood improves,
//  2. then uphill in −t while it improves,
//  3. halve the step and repeat until the step reaches StepFloor.
//
// The pairwise JC surface is unimodal in t, so the local climb lands on
// the global maximizer to within the final step size. Every accepted move
// strictly increases a log-likelihood that is bounded above by 0, so each
// round terminates; the step halves per round and a non-finite step is
// cut off after one round, so the whole search does too.
//
// Sweep and Grid support the companion diagnostic tool that samples the
// surface instead of climbing it.
package estimate

import (
	"fmt"
	"math"

	"jcdist-core/likelihood"
	"jcdist-core/seq"
)

// StepFloor is the refinement cutoff: once the step size is at or below
// this value the climb stops and the current point is the estimate.
const StepFloor = 1e-4

// gridCap bounds Grid output so a mistyped step cannot balloon memory.
const gridCap = 1 << 22

// Result carries the estimate plus enough bookkeeping to judge it.
type Result struct {
	T      float64 // estimated distance, expected substitutions per site
	LogLik float64 // log-likelihood at T
	Evals  int     // likelihood evaluations spent
}

// Point is one sampled (t, log-likelihood) pair from a Sweep.
type Point struct {
	T      float64
	LogLik float64
}

// Distance estimates the ML distance for the aligned pair a, b, starting
// from t0 with initial step size step0. The sequences must be equal
// length and are assumed validated.
//
// Degenerate starts are well defined rather than rejected: step0 = 0
// cannot move and returns t0 unchanged; step0 < 0 swaps the roles of the
// two walk directions for a single round and then stops, since halving
// never brings a negative step above StepFloor; a non-finite step0 also
// gets exactly one round, since halving could never walk it down to the
// floor. Callers who care should warn, not expect an error.
func Distance(a, b string, t0, step0 float64) (Result, error) {
	if len(a) != len(b) {
		return Result{}, fmt.Errorf("estimate: %w: %d vs %d", seq.ErrLengthMismatch, len(a), len(b))
	}

	evals := 0
	logL := func(t float64) float64 {
		evals++
		// Lengths are equal from here on, so the error leg is dead.
		l, _ := likelihood.LogLikelihood(a, b, t)
		return l
	}

	t, step := t0, step0
	like := logL(t)
	for {
		for next := logL(t + step); next > like; next = logL(t + step) {
			t += step
			like = next
		}
		for next := logL(t - step); next > like; next = logL(t - step) {
			t -= step
			like = next
		}
		// A NaN step compares false and stops here. An infinite step
		// must stop too: halving leaves it infinite, so it would never
		// reach the floor.
		if !(step > StepFloor) || math.IsInf(step, 0) {
			break
		}
		step /= 2
	}
	return Result{T: t, LogLik: like, Evals: evals}, nil
}

// Sweep evaluates the pair log-likelihood at each value of ts, in order.
// It is the sequential reference for the parallel sweep pipeline.
func Sweep(a, b string, ts []float64) ([]Point, error) {
	out := make([]Point, 0, len(ts))
	for _, t := range ts {
		l, err := likelihood.LogLikelihood(a, b, t)
		if err != nil {
			return nil, err
		}
		out = append(out, Point{T: t, LogLik: l})
	}
	return out, nil
}

// Grid returns sample points from..to inclusive, spaced by step. Points
// are computed as from + i·step rather than accumulated, so long grids do
// not drift; a small slack keeps a representable upper bound inclusive.
func Grid(from, to, step float64) ([]float64, error) {
	if math.IsNaN(from) || math.IsInf(from, 0) || math.IsNaN(to) || math.IsInf(to, 0) {
		return nil, fmt.Errorf("estimate: grid bounds must be finite (got %g..%g)", from, to)
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("estimate: grid step must be a finite value > 0 (got %g)", step)
	}
	if to < from {
		return nil, fmt.Errorf("estimate: empty grid range (%g..%g)", from, to)
	}
	span := (to - from) / step
	if span > gridCap {
		return nil, fmt.Errorf("estimate: grid of ~%.0f points exceeds cap %d", span+1, gridCap)
	}
	n := int(math.Floor(span+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out, nil
}
