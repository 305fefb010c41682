package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryUnavailable     = "unavailable"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
// Used for bad scopes, unsupported URL schemes and invalid configuration.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: 2,
	}
}

// NewUnavailableError creates a new ServiceError with category unavailable.
// Used when the sink itself cannot be reached; fatal for the whole run.
func NewUnavailableError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryUnavailable,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: 3,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: 1,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
//
// Only fatal categories abort a run: invalid_argument and unavailable before
// any fan-out, internal for bugs. Per-object write/read/decode failures are
// never ServiceErrors; they are counted at the object boundary and surfaced
// alongside the run result.
type ServiceError struct {
	Category string // invalid_argument, unavailable or internal
	Code     string // service-owned stable code (e.g. SNK_1000)
	Message  string // human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit code for CLI surfaces
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
