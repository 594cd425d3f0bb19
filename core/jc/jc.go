// core/jc/jc.go
// Jukes-Cantor (JC69) nucleotide substitution model.
//
// The model has a single rate parameter: every substitution is equally
// likely and base frequencies are uniform (1/4 each). At evolutionary
// distance t, measured in expected substitutions per site, the per-site
// transition probabilities are:
//
//  1. P(base unchanged)            = 1/4 + (3/4)·e^(−4t/3)
//  2. P(base → one specific other) = 1/4 − (1/4)·e^(−4t/3)
//
// so P(unchanged) + 3·P(changed) = 1 for every t ≥ 0. Negative t carries
// no probability mass: both functions return 0 there, which drives a
// log-likelihood of −Inf and keeps optimizers out of the region.
//
// No I/O, no app deps; likelihood and estimate build on this package.
package jc

import "math"

// Alphabet fixes the base order used for Matrix rows and columns.
const Alphabet = "ACGT"

// ProbUnchanged returns the probability that a site holds the same base
// after distance t. It decays from 1 at t=0 toward the uniform limit 1/4.
func ProbUnchanged(t float64) float64 {
	if t < 0 {
		return 0
	}
	return math.Abs(0.25 + 0.75*math.Exp(-4.0*t/3.0))
}

// ProbChanged returns the probability that a site changed to one specific
// other base after distance t. It grows from 0 at t=0 toward 1/4.
func ProbChanged(t float64) float64 {
	if t < 0 {
		return 0
	}
	return math.Abs(0.25 - 0.25*math.Exp(-4.0*t/3.0))
}

// Matrix returns the 4×4 transition-probability matrix at distance t,
// rows and columns in Alphabet order (row = from, column = to). Under
// JC69 the matrix is fully determined by the two scalar probabilities;
// the likelihood path uses those directly and skips the matrix build.
func Matrix(t float64) [4][4]float64 {
	same := ProbUnchanged(t)
	diff := ProbChanged(t)
	var m [4][4]float64
	for i := range m {
		for j := range m[i] {
			if i == j {
				m[i][j] = same
			} else {
				m[i][j] = diff
			}
		}
	}
	return m
}

// DistanceFromProportion inverts the model analytically: for an observed
// proportion p of mismatched sites it returns the distance
//
//	d = −(3/4)·ln(1 − (4/3)·p)
//
// Out-of-domain inputs follow math-package conventions instead of
// returning an error: p = 3/4 gives +Inf (saturation), p > 3/4 or p < 0
// gives NaN.
func DistanceFromProportion(p float64) float64 {
	if p < 0 {
		return math.NaN()
	}
	return -0.75 * math.Log(1.0-4.0*p/3.0)
}
