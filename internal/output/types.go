// internal/output/types.go
package output

import "jcdist-core/estimate"

// Estimate is the full record the estimate writers render: the search
// result plus the inputs and the derived per-pair diagnostics.
type Estimate struct {
	Length     int
	Mismatches int
	PDistance  float64 // Mismatches / Length
	T0         float64
	Step0      float64
	Result     estimate.Result
	Formula    float64 // analytic inversion of PDistance; ±Inf/NaN past saturation
}
