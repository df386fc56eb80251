package exporter

import (
	"fmt"
	"math"
)

// formatFloat formats a float64 value for CSV output. Whole numbers render
// without a fractional part so counts and integer-valued columns stay clean;
// everything else gets 4 significant decimals.
func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%.4f", f)
}
