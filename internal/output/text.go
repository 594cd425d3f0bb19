// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"jcdist-core/estimate"
)

// Num renders a float column: six decimals, NA for NaN. ±Inf keep the
// strconv spelling so a saturated column is distinguishable from an
// undefined one.
func Num(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// FormatEstimateRow returns the nine estimate columns (no trailing newline).
func FormatEstimateRow(e Estimate) string {
	return fmt.Sprintf("%d\t%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s",
		e.Length, e.Mismatches,
		Num(e.PDistance), Num(e.T0), Num(e.Step0),
		Num(e.Result.T), Num(e.Result.LogLik), e.Result.Evals,
		Num(e.Formula),
	)
}

// WriteEstimateText prints the optional header and one estimate row.
func WriteEstimateText(w io.Writer, e Estimate, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, EstimateHeader); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, FormatEstimateRow(e))
	return err
}

// FormatPointRow returns the two sweep columns for one sample.
func FormatPointRow(p estimate.Point) string {
	return Num(p.T) + "\t" + Num(p.LogLik)
}

// StreamPointsText prints sweep rows as they arrive on in.
func StreamPointsText(w io.Writer, in <-chan estimate.Point, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SweepHeader); err != nil {
			// Drain so producers can finish.
			for range in {
			}
			return err
		}
	}
	for p := range in {
		if _, err := fmt.Fprintln(w, FormatPointRow(p)); err != nil {
			for range in {
			}
			return err
		}
	}
	return nil
}
