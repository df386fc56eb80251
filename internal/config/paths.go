package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations: where datasets are
// picked up, where cleaned copies and charts are written, and where logs go.
type Paths struct {
	BaseDir    string
	DatasetDir string
	CleanedDir string
	ChartsDir  string
	LogsDir    string
}

// GetPaths returns the application paths.
// When cfg.BaseDir is empty, paths are resolved relative to the executable
// directory, never the current working directory.
func GetPaths(cfg PathsConfig) (*Paths, error) {
	base := cfg.BaseDir
	if base == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		exe, err = filepath.EvalSymlinks(exe)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
		}
		base = filepath.Dir(exe)
	}

	return &Paths{
		BaseDir:    base,
		DatasetDir: resolveDir(base, cfg.DatasetDir, "data/datasets"),
		CleanedDir: resolveDir(base, cfg.CleanedDir, "data/cleaned"),
		ChartsDir:  resolveDir(base, cfg.ChartsDir, "data/charts"),
		LogsDir:    resolveDir(base, cfg.LogsDir, "logs"),
	}, nil
}

// resolveDir joins dir onto base unless dir is already absolute
func resolveDir(base, dir, fallback string) string {
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DatasetDir, p.CleanedDir, p.ChartsDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DatasetPath returns the full path of a dataset file inside the dataset directory
func (p *Paths) DatasetPath(fileName string) string {
	return filepath.Join(p.DatasetDir, fileName)
}

// CleanedPath returns the output path for a cleaned copy of the named dataset.
// The extension of the original file name is replaced by "_clean" plus ext.
func (p *Paths) CleanedPath(fileName, ext string) string {
	stem := fileName
	if e := filepath.Ext(fileName); e != "" {
		stem = fileName[:len(fileName)-len(e)]
	}
	return filepath.Join(p.CleanedDir, stem+"_clean"+ext)
}

// ChartPath returns the output path for a rendered chart image
func (p *Paths) ChartPath(name string) string {
	return filepath.Join(p.ChartsDir, name)
}

// GetLogPath returns the full path of a log file inside the logs directory
func (p *Paths) GetLogPath(fileName string) string {
	return filepath.Join(p.LogsDir, fileName)
}
