package cleaning

import (
	"datacli/internal/dataset"
)

// ClampNegatives replaces negative values in every numeric column with zero
// and returns the number of cells changed. Applying it twice yields the same
// dataset as applying it once.
func ClampNegatives(ds *dataset.Dataset) int {
	changed := 0
	for _, name := range ds.NumericColumns() {
		col, err := ds.Column(name)
		if err != nil {
			continue
		}
		for i, v := range col.Floats {
			if v < 0 {
				col.Floats[i] = 0
				changed++
			}
		}
	}
	return changed
}

// DropColumn removes a named column from the dataset. A column-not-found
// error is returned for unknown names so the caller can re-prompt.
func DropColumn(ds *dataset.Dataset, name string) error {
	return ds.DropColumn(name)
}
