// Package exporter writes cleaned datasets and statistic summaries to disk.
//
// Two writers are provided: CSVWriter (UTF-8 with optional BOM so Excel opens
// the files correctly) and ExcelWriter (single-sheet xlsx via excelize). Both
// create missing output directories and log what they write.
package exporter
