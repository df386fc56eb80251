// Package validation checks dataset files and directories before loading.
package validation

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"datacli/internal/errors"
)

// SupportedExtensions lists the dataset formats the loader understands
var SupportedExtensions = []string{".csv", ".xlsx"}

// FileValidator validates dataset files before they reach the loader
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger}
}

// ValidateDatasetFile checks that the file exists, is readable and carries a
// supported extension.
func (v *FileValidator) ValidateDatasetFile(path string) error {
	if err := v.validateExtension(path); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Warn("dataset file does not exist", slog.String("file", path))
		return errors.NewAppError(errors.ErrTypeNotFound, "dataset file "+filepath.Base(path)+" not found", err)
	}
	if err != nil {
		return errors.NewStorageError("failed to stat dataset file", err)
	}
	if info.IsDir() {
		return errors.NewValidationError(path+" is a directory, not a file", nil)
	}

	f, err := os.Open(path)
	if err != nil {
		v.logger.Error("dataset file is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewStorageError("dataset file is not readable", err)
	}
	f.Close()

	return nil
}

// validateExtension checks the file extension against the supported formats
func (v *FileValidator) validateExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return nil
		}
	}
	return errors.NewValidationError(
		"unsupported file format "+ext+" (expected .csv or .xlsx)", nil)
}

// ListDatasets returns the names of loadable dataset files in dir, sorted
func (v *FileValidator) ListDatasets(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewStorageError("failed to read dataset directory", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if v.validateExtension(entry.Name()) == nil {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
