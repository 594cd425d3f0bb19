// core/likelihood/likelihood_test.go
package likelihood

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jcdist-core/jc"
	"jcdist-core/seq"
)

func TestLogLikelihood_MatchesClosedForm(t *testing.T) {
	// k mismatches over n sites: lnL = (n−k)·ln(pSame) + k·ln(pDiff).
	a, b := "AAGTCCAG", "AAGCCCCG" // k=2, n=8
	for _, tt := range []float64{0.01, 0.1, 0.2877, 0.5, 1, 5} {
		want := 6*math.Log(jc.ProbUnchanged(tt)) + 2*math.Log(jc.ProbChanged(tt))
		got, err := LogLikelihood(a, b, tt)
		require.NoError(t, err)
		assert.InDeltaf(t, want, got, 1e-9, "t=%g", tt)
	}
}

func TestLogLikelihood_IdenticalBeatsMutated(t *testing.T) {
	s := "ACGTACGTACGT"
	mut := "ACGTACGTACGA"
	for _, tt := range []float64{0.01, 0.1, 1, 5} {
		same, err := LogLikelihood(s, s, tt)
		require.NoError(t, err)
		diff, err := LogLikelihood(s, mut, tt)
		require.NoError(t, err)
		assert.Greaterf(t, same, diff, "t=%g", tt)
	}
}

func TestLogLikelihood_AtZeroDistance(t *testing.T) {
	got, err := LogLikelihood("ACGT", "ACGT", 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "identical pair at t=0 is certain")

	got, err = LogLikelihood("ACGT", "ACGA", 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, -1), "mismatch at t=0 is impossible, want −Inf")
}

func TestLogLikelihood_NegativeDistance(t *testing.T) {
	got, err := LogLikelihood("ACGT", "ACGT", -0.5)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, -1), "t<0 has no probability mass, want −Inf")
}

func TestLogLikelihood_EmptyPair(t *testing.T) {
	got, err := LogLikelihood("", "", 0.3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestLogLikelihood_LengthMismatch(t *testing.T) {
	_, err := LogLikelihood("ACG", "ACGT", 0.1)
	require.Error(t, err)
	assert.ErrorIs(t, err, seq.ErrLengthMismatch)
	assert.Contains(t, err.Error(), "3 vs 4")
}

func TestLogLikelihood_NeverPositive(t *testing.T) {
	a, b := "AAGTCCAG", "AAGCCCCG"
	for _, tt := range []float64{0, 1e-6, 0.1, 1, 10} {
		got, err := LogLikelihood(a, b, tt)
		require.NoError(t, err)
		assert.LessOrEqualf(t, got, 0.0, "t=%g", tt)
	}
}
