// Package describe computes descriptive statistics over dataset columns.
//
// The output matches the familiar describe() table: count, mean, std, min,
// 25/50/75th percentiles and max per numeric column. Means and standard
// deviations come from gonum; percentiles use linear interpolation on the
// sorted values so quartiles agree with the usual dataframe conventions.
package describe

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"datacli/internal/dataset"
)

// ColumnSummary holds the descriptive statistics of one numeric column
type ColumnSummary struct {
	Column string  `json:"column" csv:"Column"`
	Count  int     `json:"count" csv:"Count"`
	Mean   float64 `json:"mean" csv:"Mean"`
	Std    float64 `json:"std" csv:"Std"`
	Min    float64 `json:"min" csv:"Min"`
	Q1     float64 `json:"q1" csv:"Q1"`
	Median float64 `json:"median" csv:"Median"`
	Q3     float64 `json:"q3" csv:"Q3"`
	Max    float64 `json:"max" csv:"Max"`
}

// Summarize computes statistics for every numeric column of the dataset,
// in column order. Empty columns produce a zero summary with Count 0.
func Summarize(ds *dataset.Dataset) []ColumnSummary {
	var out []ColumnSummary
	for _, name := range ds.NumericColumns() {
		values, err := ds.NumericColumn(name)
		if err != nil {
			continue
		}
		out = append(out, Column(name, values))
	}
	return out
}

// Column computes the summary of a single value slice
func Column(name string, values []float64) ColumnSummary {
	s := ColumnSummary{Column: name, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	s.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Q1 = percentileSorted(sorted, 25)
	s.Median = percentileSorted(sorted, 50)
	s.Q3 = percentileSorted(sorted, 75)
	return s
}

// Percentile returns the p-th percentile of the values (0 <= p <= 100)
// using linear interpolation between closest ranks.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p)
}

// percentileSorted assumes sorted input
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[n-1]
	}
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= n {
		return sorted[lower]
	}
	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Correlation returns the Pearson correlation coefficient of two equal-length
// value slices.
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}
