package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datacli/internal/dataset"
	"datacli/internal/describe"
)

func TestCSVWriter_WriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "data.csv")
	w := NewCSVWriter(nil)

	err := w.WriteCSV(path, WriteOptions{
		Headers:   []string{"name", "value"},
		Records:   [][]string{{"alpha", "1"}, {"beta", "2"}},
		BOMPrefix: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// UTF-8 BOM prefix
	require.True(t, len(data) > 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])

	r := csv.NewReader(strings.NewReader(string(data[3:])))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"name", "value"},
		{"alpha", "1"},
		{"beta", "2"},
	}, rows)
}

func TestCSVWriter_WriteDataset(t *testing.T) {
	ds, err := dataset.FromRecords(
		[]string{"name", "score"},
		[][]string{{"alice", "1.5"}, {"bob", "2"}},
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clean.csv")
	require.NoError(t, NewCSVWriter(nil).WriteDataset(path, ds))

	// round-trip through the loader preserves shape and values
	loaded, err := dataset.LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "score"}, loaded.Columns())
	score, err := loaded.NumericColumn("score")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2}, score)
}

func TestCSVWriter_WriteSummary(t *testing.T) {
	summaries := []describe.ColumnSummary{
		{Column: "age", Count: 3, Mean: 30, Std: 5, Min: 25, Q1: 27.5, Median: 30, Q3: 32.5, Max: 35},
	}

	path := filepath.Join(t.TempDir(), "summary.csv")
	require.NoError(t, NewCSVWriter(nil).WriteSummary(path, summaries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}, rows[0])
	assert.Equal(t, []string{"age", "3", "30", "5", "25", "27.5000", "30", "32.5000", "35"}, rows[1])
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "30", formatFloat(30))
	assert.Equal(t, "-2", formatFloat(-2))
	assert.Equal(t, "27.5000", formatFloat(27.5))
	assert.Equal(t, "0.3333", formatFloat(1.0/3.0))
}
