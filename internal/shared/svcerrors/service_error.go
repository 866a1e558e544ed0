package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryNotFound        = "not_found"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// Process exit codes reported by the CLI.
const (
	ExitCodeOK              = 0
	ExitCodeInternal        = 1
	ExitCodeInvalidArgument = 2
	ExitCodeNotFound        = 3
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeInvalidArgument,
	}
}

// NewNotFoundError creates a new ServiceError with category not_found.
func NewNotFoundError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryNotFound,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeNotFound,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: ExitCodeInternal,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// AsServiceError extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ExitCodeOf maps any error to a process exit code.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitCodeOK
	}
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr.ExitCode
	}
	return ExitCodeInternal
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_argument, not_found or internal
	Code     string // service-owned stable code (e.g. AGG_1000)
	Message  string // operator-facing, human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

// HttpStatusCode maps the category onto an HTTP status for the status listener.
func (e *ServiceError) HttpStatusCode() int {
	switch e.Category {
	case categoryInvalidArgument:
		return http.StatusBadRequest
	case categoryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
