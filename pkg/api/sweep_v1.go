// pkg/api/sweep_v1.go
package api

// SweepPointV1 is the stable JSON/JSONL schema for one likelihood-surface
// sample. log_likelihood is omitted when the value is −Inf (zero-mass
// region), since Inf has no JSON encoding.
type SweepPointV1 struct {
	T             float64  `json:"t"`
	LogLikelihood *float64 `json:"log_likelihood,omitempty"`
}
