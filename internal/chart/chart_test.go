package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datacli/internal/dataset"
	apperrors "datacli/internal/errors"
)

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromRecords(
		[]string{"name", "age", "salary"},
		[][]string{
			{"alice", "25", "70000"},
			{"bob", "30", "50000"},
			{"carol", "35", "60000"},
			{"dave", "28", "55000"},
		},
	)
	require.NoError(t, err)
	return ds
}

// assertPNG checks the file exists and carries the PNG magic bytes
func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(data) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestRenderer_Scatter(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, 16, nil)

	path, err := r.Scatter(testDataset(t), "age", "salary")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "scatter_age_salary.png"), path)
	assertPNG(t, path)
}

func TestRenderer_Histogram(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, 8, nil)

	path, err := r.Histogram(testDataset(t), "age")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "histogram_age.png"), path)
	assertPNG(t, path)
}

func TestRenderer_BoxPlot(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, 16, nil)

	path, err := r.BoxPlot(testDataset(t), "salary")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "boxplot_salary.png"), path)
	assertPNG(t, path)
}

func TestRenderer_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "charts")
	r := NewRenderer(dir, 16, nil)

	_, err := r.Histogram(testDataset(t), "age")
	require.NoError(t, err)
}

func TestRenderer_ColumnErrors(t *testing.T) {
	r := NewRenderer(t.TempDir(), 16, nil)
	ds := testDataset(t)

	tests := []struct {
		name  string
		run   func() error
		check func(error) bool
	}{
		{
			name:  "scatter unknown x",
			run:   func() error { _, err := r.Scatter(ds, "height", "salary"); return err },
			check: apperrors.IsNotFound,
		},
		{
			name:  "scatter non-numeric y",
			run:   func() error { _, err := r.Scatter(ds, "age", "name"); return err },
			check: apperrors.IsTypeMismatch,
		},
		{
			name:  "histogram non-numeric",
			run:   func() error { _, err := r.Histogram(ds, "name"); return err },
			check: apperrors.IsTypeMismatch,
		},
		{
			name:  "boxplot unknown column",
			run:   func() error { _, err := r.BoxPlot(ds, "bonus"); return err },
			check: apperrors.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, tt.check(err))
		})
	}
}

func TestFileName_SanitizesColumns(t *testing.T) {
	assert.Equal(t, "histogram_unit_price_.png", fileName("histogram", "unit price$"))
	assert.Equal(t, "scatter_a_b.png", fileName("scatter", "a", "b"))
}
