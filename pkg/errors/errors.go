// Package errors provides standardized error handling for protostage.
// It implements structured error types with proper wrapping and
// classification following Go 1.20+ error handling conventions.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// Staging-related errors
	ErrStagingFailed       = errors.New("staging failed")
	ErrDestinationConflict = errors.New("destination path exists and is not a directory")
	ErrSourceUnreadable    = errors.New("source directory cannot be read")

	// Generation-related errors
	ErrGenerationFailed  = errors.New("code generation failed")
	ErrProtocNotFound    = errors.New("protoc executable not found")
	ErrEntryFileNotFound = errors.New("entry proto file not found")
	ErrNoEntryFiles      = errors.New("no entry proto files configured")

	// System-related errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrFilesystemFailed = errors.New("filesystem operation failed")
)

// StageError represents an error raised while staging proto files
type StageError struct {
	Path      string
	Operation string
	Err       error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: operation %s: %v", e.Path, e.Operation, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// GenerateError represents an error raised by the code generator
type GenerateError struct {
	Entry     string
	Operation string
	Stderr    string
	Err       error
}

func (e *GenerateError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("generate %s: operation %s: %v: %s", e.Entry, e.Operation, e.Err, e.Stderr)
	}
	return fmt.Sprintf("generate %s: operation %s: %v", e.Entry, e.Operation, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}

// CleanError represents an error raised while removing previously
// generated files
type CleanError struct {
	Path      string
	Operation string
	Err       error
}

func (e *CleanError) Error() string {
	return fmt.Sprintf("clean %s: operation %s: %v", e.Path, e.Operation, e.Err)
}

func (e *CleanError) Unwrap() error {
	return e.Err
}

// ConfigError represents an error related to configuration
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Error wrapping constructors
func WrapStageError(path, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Path: path, Operation: operation, Err: err}
}

func WrapGenerateError(entry, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &GenerateError{Entry: entry, Operation: operation, Err: err}
}

func WrapCleanError(path, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &CleanError{Path: path, Operation: operation, Err: err}
}

func WrapConfigError(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigError{Field: field, Err: err}
}

// Error classification functions
func IsStageError(err error) bool {
	var se *StageError
	return errors.As(err, &se)
}

func IsGenerateError(err error) bool {
	var ge *GenerateError
	return errors.As(err, &ge)
}

func IsCleanError(err error) bool {
	var ce *CleanError
	return errors.As(err, &ce)
}

func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// Specific error type checks
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrProtocNotFound) ||
		errors.Is(err, ErrEntryFileNotFound)
}

func IsPermissionError(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// Error extraction helpers
func GetStagePath(err error) (string, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Path, true
	}
	return "", false
}

func GetGenerateEntry(err error) (string, bool) {
	var ge *GenerateError
	if errors.As(err, &ge) {
		return ge.Entry, true
	}
	return "", false
}

// Re-exported standard library helpers so callers only import one
// errors package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func New(text string) error {
	return errors.New(text)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
