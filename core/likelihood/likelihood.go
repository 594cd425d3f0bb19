// core/likelihood/likelihood.go
// Log-domain likelihood of an aligned nucleotide pair under Jukes-Cantor.
//
// Sites evolve independently, so the pair log-likelihood is the sum of
// per-site log-probabilities:
//
//  1. matched site    → ln ProbUnchanged(t)
//  2. mismatched site → ln ProbChanged(t)
//
// Working in the log domain keeps long alignments away from float64
// underflow. −Inf is a legal result, not a fault: it appears whenever t
// sits in a zero-probability region (t < 0, or t = 0 with any mismatch)
// and must propagate unchanged so optimizers can rank such points last.
package likelihood

import (
	"fmt"
	"math"

	"jcdist-core/jc"
	"jcdist-core/seq"
)

// LogLikelihood returns ln P(a, b | t) summed over aligned sites. The
// sequences must be equal length; unequal input is a caller error and is
// reported with both lengths rather than silently truncated or padded.
func LogLikelihood(a, b string, t float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("likelihood: %w: %d vs %d", seq.ErrLengthMismatch, len(a), len(b))
	}
	// Per-site probabilities depend on t only, so take logs once.
	same := math.Log(jc.ProbUnchanged(t))
	diff := math.Log(jc.ProbChanged(t))
	sum := 0.0
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			sum += same
		} else {
			sum += diff
		}
	}
	return sum, nil
}
