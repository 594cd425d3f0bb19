// pkg/api/estimate_v1.go
package api

// EstimateV1 is the stable JSON schema for one pairwise distance estimate.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Non-finite values have no JSON encoding; those fields are pointers and
// are omitted when the value is NaN or ±Inf.
type EstimateV1 struct {
	Length     int     `json:"length"`
	Mismatches int     `json:"mismatches"`
	PDistance  float64 `json:"p_distance"`
	T0         float64 `json:"t0"`
	Step0      float64 `json:"step0"`

	// Search outcome
	T             float64  `json:"t_hat"`
	LogLikelihood *float64 `json:"log_likelihood,omitempty"`
	Evals         int      `json:"evals"`

	// Closed-form cross-check; omitted past saturation (p ≥ 3/4).
	JCFormula *float64 `json:"jc_formula,omitempty"`
}
