// internal/output/json_test.go
package output

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jcdist-core/estimate"
	"jcdist/pkg/api"
)

func TestWriteEstimateJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEstimateJSON(&buf, sampleEstimate()))

	var got api.EstimateV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 8, got.Length)
	assert.Equal(t, 2, got.Mismatches)
	assert.InDelta(t, 0.3040988, got.T, 1e-9)
	require.NotNil(t, got.LogLikelihood)
	assert.InDelta(t, -6.696057, *got.LogLikelihood, 1e-9)
	require.NotNil(t, got.JCFormula)
	assert.InDelta(t, 0.3040988, *got.JCFormula, 1e-9)
}

func TestWriteEstimateJSON_OmitsNonFinite(t *testing.T) {
	e := sampleEstimate()
	e.Formula = math.NaN()
	e.Result.LogLik = math.Inf(-1)

	var buf bytes.Buffer
	require.NoError(t, WriteEstimateJSON(&buf, e))
	assert.NotContains(t, buf.String(), "jc_formula")
	assert.NotContains(t, buf.String(), "log_likelihood")

	var got api.EstimateV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Nil(t, got.JCFormula)
	assert.Nil(t, got.LogLikelihood)
}

func TestWriteEstimateJSONL_SingleLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEstimateJSONL(&buf, sampleEstimate()))
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.True(t, strings.HasSuffix(out, "\n"))

	var got api.EstimateV1
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 42, got.Evals)
}

func TestWritePointsJSON(t *testing.T) {
	pts := []estimate.Point{
		{T: -0.1, LogLik: math.Inf(-1)},
		{T: 0.1, LogLik: -8.55},
	}
	var buf bytes.Buffer
	require.NoError(t, WritePointsJSON(&buf, pts))

	var got []api.SweepPointV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, -0.1, got[0].T)
	assert.Nil(t, got[0].LogLikelihood, "−Inf has no JSON encoding")
	require.NotNil(t, got[1].LogLikelihood)
	assert.InDelta(t, -8.55, *got[1].LogLikelihood, 1e-9)
}
