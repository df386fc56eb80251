package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaths_BaseDirOverride(t *testing.T) {
	base := t.TempDir()

	paths, err := GetPaths(PathsConfig{BaseDir: base})
	require.NoError(t, err)

	assert.Equal(t, base, paths.BaseDir)
	assert.Equal(t, filepath.Join(base, "data", "datasets"), paths.DatasetDir)
	assert.Equal(t, filepath.Join(base, "data", "cleaned"), paths.CleanedDir)
	assert.Equal(t, filepath.Join(base, "data", "charts"), paths.ChartsDir)
	assert.Equal(t, filepath.Join(base, "logs"), paths.LogsDir)
}

func TestGetPaths_AbsoluteDirsKept(t *testing.T) {
	base := t.TempDir()
	charts := t.TempDir()

	paths, err := GetPaths(PathsConfig{BaseDir: base, ChartsDir: charts})
	require.NoError(t, err)

	assert.Equal(t, charts, paths.ChartsDir)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	base := t.TempDir()
	paths, err := GetPaths(PathsConfig{BaseDir: base})
	require.NoError(t, err)

	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DatasetDir, paths.CleanedDir, paths.ChartsDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestPaths_FileHelpers(t *testing.T) {
	base := t.TempDir()
	paths, err := GetPaths(PathsConfig{BaseDir: base})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(paths.DatasetDir, "sales.csv"), paths.DatasetPath("sales.csv"))
	assert.Equal(t, filepath.Join(paths.CleanedDir, "sales_clean.csv"), paths.CleanedPath("sales.csv", ".csv"))
	assert.Equal(t, filepath.Join(paths.CleanedDir, "sales_clean.xlsx"), paths.CleanedPath("sales.csv", ".xlsx"))
	assert.Equal(t, filepath.Join(paths.ChartsDir, "scatter.png"), paths.ChartPath("scatter.png"))
	assert.Equal(t, filepath.Join(paths.LogsDir, "analyzer.log"), paths.GetLogPath("analyzer.log"))
}
