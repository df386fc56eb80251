package cleaning

import (
	"log/slog"

	"datacli/internal/dataset"
	"datacli/internal/describe"
)

// Bounds returns the IQR outlier bounds [Q1 - m*IQR, Q3 + m*IQR] for the
// given values.
func Bounds(values []float64, multiplier float64) (lower, upper float64) {
	q1 := describe.Percentile(values, 25)
	q3 := describe.Percentile(values, 75)
	iqr := q3 - q1
	return q1 - multiplier*iqr, q3 + multiplier*iqr
}

// RemoveOutliers drops rows whose value in any numeric column falls outside
// that column's IQR bounds. Columns are processed in order, each over the
// rows surviving the previous columns. Empty columns are skipped. Returns
// the number of rows removed.
func RemoveOutliers(ds *dataset.Dataset, multiplier float64, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}

	removed := 0
	for _, name := range ds.NumericColumns() {
		values, err := ds.NumericColumn(name)
		if err != nil || len(values) == 0 {
			continue
		}

		lower, upper := Bounds(values, multiplier)
		keep := make([]bool, len(values))
		for i, v := range values {
			keep[i] = v >= lower && v <= upper
		}

		n := ds.FilterRows(keep)
		if n > 0 {
			logger.Info("removed outliers",
				slog.String("column", name),
				slog.Int("rows", n),
				slog.Float64("lower_bound", lower),
				slog.Float64("upper_bound", upper))
		}
		removed += n
	}
	return removed
}
