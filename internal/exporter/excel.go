package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"datacli/internal/dataset"
)

// ExcelWriter exports datasets as Excel workbooks
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// WriteDataset writes the full dataset to a single-sheet xlsx workbook
func (w *ExcelWriter) WriteDataset(filePath string, ds *dataset.Dataset) error {
	w.logger.Info("writing excel file",
		slog.String("path", filePath),
		slog.Int("rows", ds.Len()))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers, records := ds.Records()

	if err := w.writeRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, record := range records {
		if err := w.writeRow(f, sheet, i+2, record); err != nil {
			return err
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeRow writes one row of cells starting at column A
func (w *ExcelWriter) writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to build cell name for row %d: %w", row, err)
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
