package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeParsing      ErrorType = "PARSING"
	ErrTypeValidation   ErrorType = "VALIDATION"
	ErrTypeNotFound     ErrorType = "NOT_FOUND"
	ErrTypeTypeMismatch ErrorType = "TYPE_MISMATCH"
	ErrTypeStorage      ErrorType = "STORAGE"
	ErrTypeConfig       ErrorType = "CONFIG"
	ErrTypeChart        ErrorType = "CHART"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Helper functions for common error types

// NewParsingError creates a dataset parsing error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewValidationError creates a validation error
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ErrTypeValidation, message, cause)
}

// NewStorageError creates a file I/O error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewChartError creates a chart rendering error
func NewChartError(message string, cause error) *AppError {
	return NewAppError(ErrTypeChart, message, cause)
}

// NewColumnNotFoundError reports a column name the dataset does not contain
func NewColumnNotFoundError(column string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("column %q not found", column), nil).
		WithContext("column", column)
}

// NewTypeMismatchError reports a non-numeric column used where a numeric one is required
func NewTypeMismatchError(column string) *AppError {
	return NewAppError(ErrTypeTypeMismatch, fmt.Sprintf("column %q is not numeric", column), nil).
		WithContext("column", column)
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// IsNotFound reports whether err is a column/file not-found error
func IsNotFound(err error) bool {
	return IsType(err, ErrTypeNotFound)
}

// IsTypeMismatch reports whether err is a numeric type-mismatch error
func IsTypeMismatch(err error) bool {
	return IsType(err, ErrTypeTypeMismatch)
}
