package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"datacli/internal/errors"
)

// LoadCSV reads a CSV file into a Dataset. The first record is the header.
// The delimiter is sniffed among comma, semicolon and tab.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open dataset", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = sniffDelimiter(path)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.NewParsingError("dataset is empty", nil)
		}
		return nil, errors.NewParsingError("failed to read header", err)
	}
	// files written for Excel carry a UTF-8 BOM
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewParsingError("failed to read row", err)
		}
		row := make([]string, len(rec))
		copy(row, rec)
		records = append(records, row)
	}

	return FromRecords(header, records)
}

// LoadExcel reads a sheet of an Excel workbook into a Dataset.
// An empty sheet name selects the first sheet.
func LoadExcel(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError("failed to open workbook", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.NewParsingError("workbook has no sheets", nil)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.NewParsingError("failed to read sheet "+sheet, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParsingError("sheet "+sheet+" is empty", nil)
	}

	return FromRecords(rows[0], rows[1:])
}

// sniffDelimiter inspects the first line of a CSV file and picks the most
// frequent of comma, semicolon and tab. Defaults to comma.
func sniffDelimiter(path string) rune {
	f, err := os.Open(path)
	if err != nil {
		return ','
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ','
	}
	line := scanner.Text()

	best, bestCount := ',', strings.Count(line, ",")
	if n := strings.Count(line, ";"); n > bestCount {
		best, bestCount = ';', n
	}
	if n := strings.Count(line, "\t"); n > bestCount {
		best = '\t'
	}
	return best
}
