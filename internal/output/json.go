// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"math"

	"jcdist-core/estimate"
	"jcdist/pkg/api"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// finitePtr maps non-finite floats to nil so the v1 schema omits them;
// encoding/json has no representation for NaN or ±Inf.
func finitePtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ToAPIEstimate converts the estimate record to the stable wire schema (v1).
func ToAPIEstimate(e Estimate) api.EstimateV1 {
	return api.EstimateV1{
		Length:        e.Length,
		Mismatches:    e.Mismatches,
		PDistance:     e.PDistance,
		T0:            e.T0,
		Step0:         e.Step0,
		T:             e.Result.T,
		LogLikelihood: finitePtr(e.Result.LogLik),
		Evals:         e.Result.Evals,
		JCFormula:     finitePtr(e.Formula),
	}
}

// WriteEstimateJSON writes one v1 estimate object (pretty-indented).
func WriteEstimateJSON(w io.Writer, e Estimate) error {
	return EncodePretty(w, ToAPIEstimate(e))
}

// WriteEstimateJSONL writes the same v1 object as a single compact line.
func WriteEstimateJSONL(w io.Writer, e Estimate) error {
	return json.NewEncoder(w).Encode(ToAPIEstimate(e))
}

// ToAPIPoint converts one sweep sample to the stable wire schema (v1).
func ToAPIPoint(p estimate.Point) api.SweepPointV1 {
	return api.SweepPointV1{T: p.T, LogLikelihood: finitePtr(p.LogLik)}
}

func toAPIPoints(pts []estimate.Point) []api.SweepPointV1 {
	out := make([]api.SweepPointV1, 0, len(pts))
	for _, p := range pts {
		out = append(out, ToAPIPoint(p))
	}
	return out
}

// WritePointsJSON writes a single JSON array of v1 sweep points.
func WritePointsJSON(w io.Writer, pts []estimate.Point) error {
	return EncodePretty(w, toAPIPoints(pts))
}
