package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"datacli/internal/errors"
)

// Kind identifies the inferred type of a column
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindString  Kind = "string"
)

// missing reports whether a raw cell counts as a missing value
func missing(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "NA", "NaN", "nan", "null":
		return true
	}
	return false
}

// Column is a single typed column. Exactly one of Floats or Strings is
// populated depending on Kind. Missing numeric cells are stored as NaN until
// DropMissing removes their rows.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
}

// Dataset is the in-memory tabular dataset: ordered named columns over rows.
// It is mutated in place by the cleaning steps and discarded at exit.
type Dataset struct {
	cols []*Column
	rows int
}

// FromRecords builds a Dataset from a header row and raw string records.
// Short records are padded with empty cells. A column is numeric when every
// non-missing cell parses as a float and at least one such cell exists.
func FromRecords(header []string, records [][]string) (*Dataset, error) {
	if len(header) == 0 {
		return nil, errors.NewParsingError("dataset has no columns", nil)
	}

	ncol := len(header)
	cells := make([][]string, ncol)
	for j := range cells {
		cells[j] = make([]string, len(records))
	}
	for i, rec := range records {
		for j := 0; j < ncol; j++ {
			if j < len(rec) {
				cells[j][i] = strings.TrimSpace(rec[j])
			}
		}
	}

	ds := &Dataset{rows: len(records)}
	seen := make(map[string]bool, ncol)
	for j, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("column_%d", j+1)
		}
		if seen[name] {
			return nil, errors.NewParsingError(fmt.Sprintf("duplicate column name %q", name), nil)
		}
		seen[name] = true
		ds.cols = append(ds.cols, buildColumn(name, cells[j]))
	}
	return ds, nil
}

// buildColumn infers the column kind and parses values accordingly
func buildColumn(name string, cells []string) *Column {
	numeric := false
	for _, cell := range cells {
		if missing(cell) {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return &Column{Name: name, Kind: KindString, Strings: cells}
		}
		numeric = true
	}
	if !numeric {
		return &Column{Name: name, Kind: KindString, Strings: cells}
	}

	floats := make([]float64, len(cells))
	for i, cell := range cells {
		if missing(cell) {
			floats[i] = math.NaN()
			continue
		}
		floats[i], _ = strconv.ParseFloat(cell, 64)
	}
	return &Column{Name: name, Kind: KindNumeric, Floats: floats}
}

// Len returns the number of rows
func (d *Dataset) Len() int { return d.rows }

// Shape returns rows and columns, gopandas style
func (d *Dataset) Shape() (rows, cols int) { return d.rows, len(d.cols) }

// Columns returns the column names in order
func (d *Dataset) Columns() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// NumericColumns returns the names of numeric columns in order
func (d *Dataset) NumericColumns() []string {
	var names []string
	for _, c := range d.cols {
		if c.Kind == KindNumeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// Column returns the named column or a not-found error
func (d *Dataset) Column(name string) (*Column, error) {
	for _, c := range d.cols {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errors.NewColumnNotFoundError(name)
}

// HasColumn reports whether the named column exists
func (d *Dataset) HasColumn(name string) bool {
	_, err := d.Column(name)
	return err == nil
}

// NumericColumn returns the values of a numeric column.
// A string column yields a type-mismatch error.
func (d *Dataset) NumericColumn(name string) ([]float64, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	if col.Kind != KindNumeric {
		return nil, errors.NewTypeMismatchError(name)
	}
	return col.Floats, nil
}

// DropColumn removes the named column from the dataset
func (d *Dataset) DropColumn(name string) error {
	for i, c := range d.cols {
		if c.Name == name {
			d.cols = append(d.cols[:i], d.cols[i+1:]...)
			return nil
		}
	}
	return errors.NewColumnNotFoundError(name)
}

// FilterRows keeps only rows where keep[i] is true and returns the number of
// rows removed. len(keep) must equal Len().
func (d *Dataset) FilterRows(keep []bool) int {
	if len(keep) != d.rows {
		return 0
	}
	kept := 0
	for _, k := range keep {
		if k {
			kept++
		}
	}
	if kept == d.rows {
		return 0
	}

	for _, c := range d.cols {
		switch c.Kind {
		case KindNumeric:
			out := c.Floats[:0]
			for i, k := range keep {
				if k {
					out = append(out, c.Floats[i])
				}
			}
			c.Floats = out
		case KindString:
			out := c.Strings[:0]
			for i, k := range keep {
				if k {
					out = append(out, c.Strings[i])
				}
			}
			c.Strings = out
		}
	}
	removed := d.rows - kept
	d.rows = kept
	return removed
}

// DropMissing removes rows that have a missing value in any column and
// returns the number of rows removed.
func (d *Dataset) DropMissing() int {
	keep := make([]bool, d.rows)
	for i := range keep {
		keep[i] = true
	}
	for _, c := range d.cols {
		for i := 0; i < d.rows; i++ {
			switch c.Kind {
			case KindNumeric:
				if math.IsNaN(c.Floats[i]) {
					keep[i] = false
				}
			case KindString:
				if missing(c.Strings[i]) {
					keep[i] = false
				}
			}
		}
	}
	return d.FilterRows(keep)
}

// DropDuplicates removes duplicate rows based on all columns and returns the
// number of rows removed. The first occurrence wins.
func (d *Dataset) DropDuplicates() int {
	seen := make(map[string]struct{}, d.rows)
	keep := make([]bool, d.rows)
	for i := 0; i < d.rows; i++ {
		key := strings.Join(d.row(i), "\x1f")
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keep[i] = true
		}
	}
	return d.FilterRows(keep)
}

// row renders row i as strings
func (d *Dataset) row(i int) []string {
	out := make([]string, len(d.cols))
	for j, c := range d.cols {
		switch c.Kind {
		case KindNumeric:
			out[j] = FormatFloat(c.Floats[i])
		case KindString:
			out[j] = c.Strings[i]
		}
	}
	return out
}

// Records returns the header and all rows rendered as strings, for export
func (d *Dataset) Records() (header []string, records [][]string) {
	header = d.Columns()
	records = make([][]string, d.rows)
	for i := 0; i < d.rows; i++ {
		records[i] = d.row(i)
	}
	return header, records
}

// Head returns up to n rows rendered as strings, for previews
func (d *Dataset) Head(n int) [][]string {
	if n > d.rows {
		n = d.rows
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		out[i] = d.row(i)
	}
	return out
}

// FormatFloat renders a float the way cells are exported: shortest exact form
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
