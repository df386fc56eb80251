// Package dataset provides the in-memory tabular dataset and its loaders.
//
// A Dataset is a set of ordered, named, typed columns over rows. Column types
// are inferred at load time: a column is numeric when every non-missing cell
// parses as a float64, otherwise it is a string column. Cells equal to "",
// "NA", "NaN", "nan" or "null" count as missing.
//
// Datasets are loaded from CSV files (with delimiter sniffing) or Excel
// workbooks via excelize, then mutated in place by the cleaning steps:
//
//	ds, err := dataset.LoadCSV("data/datasets/sales.csv")
//	removed := ds.DropMissing()
//	removed += ds.DropDuplicates()
//
// There is no persistence beyond the explicit exports in the exporter
// package; a Dataset lives for one interactive session.
package dataset
