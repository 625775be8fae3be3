package errors

import (
	"errors"
	"os"
)

// ErrorCategory groups errors by what kind of problem they represent.
type ErrorCategory string

const (
	CategoryConfiguration ErrorCategory = "configuration"
	CategoryFilesystem    ErrorCategory = "filesystem"
	CategoryGeneration    ErrorCategory = "generation"
	CategoryPermission    ErrorCategory = "permission"
	CategoryNotFound      ErrorCategory = "not_found"
	CategoryUnknown       ErrorCategory = "unknown"
)

// ErrorSeverity indicates how serious an error is.
type ErrorSeverity string

const (
	SeverityHigh   ErrorSeverity = "high"
	SeverityMedium ErrorSeverity = "medium"
	SeverityLow    ErrorSeverity = "low"
)

// ClassifiedError is a regular error with extra info attached: what kind
// of error it is, how serious, and what to tell the user.
type ClassifiedError struct {
	Err      error
	Category ErrorCategory
	Severity ErrorSeverity
	UserMsg  string
}

func (e *ClassifiedError) Error() string {
	return e.Err.Error()
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// ClassifyError classifies an error based on its type and content.
// Every category is terminal: the pipeline never retries (a failed build
// pass is re-run by the host build system, not by us).
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	switch {
	case IsConfigError(err) || errors.Is(err, ErrInvalidConfig):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryConfiguration,
			Severity: SeverityHigh,
			UserMsg:  "Configuration is invalid. Check protostage.yml.",
		}

	case errors.Is(err, ErrProtocNotFound):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryNotFound,
			Severity: SeverityHigh,
			UserMsg:  "protoc was not found. Install it or set generator.protoc_path.",
		}

	case errors.Is(err, ErrEntryFileNotFound):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryNotFound,
			Severity: SeverityHigh,
			UserMsg:  "An entry proto file is missing from the staged directory.",
		}

	case errors.Is(err, ErrPermissionDenied) || errors.Is(err, os.ErrPermission):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryPermission,
			Severity: SeverityHigh,
			UserMsg:  "Permission denied. Check directory ownership and modes.",
		}

	case IsGenerateError(err) || errors.Is(err, ErrGenerationFailed):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryGeneration,
			Severity: SeverityHigh,
			UserMsg:  "Code generation failed. See the protoc output above.",
		}

	case IsCleanError(err):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryFilesystem,
			Severity: SeverityHigh,
			UserMsg:  "A filesystem operation failed while removing generated files.",
		}

	case IsStageError(err) || errors.Is(err, ErrFilesystemFailed) || errors.Is(err, ErrDestinationConflict):
		return &ClassifiedError{
			Err:      err,
			Category: CategoryFilesystem,
			Severity: SeverityHigh,
			UserMsg:  "A filesystem operation failed while staging proto files.",
		}

	default:
		return &ClassifiedError{
			Err:      err,
			Category: CategoryUnknown,
			Severity: SeverityMedium,
			UserMsg:  "An unexpected error occurred.",
		}
	}
}

// UserMessage returns a short, human-oriented description for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return ClassifyError(err).UserMsg
}
