package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Schematic errors
	ErrFormat          ErrorCode = "FORMAT"
	ErrUnknownStrategy ErrorCode = "UNKNOWN_STRATEGY"
	ErrStaleAnalysis   ErrorCode = "STALE_ANALYSIS"
	ErrIndexMismatch   ErrorCode = "INDEX_MISMATCH"
	ErrProblemNotFound ErrorCode = "PROBLEM_NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"

	// Output errors
	ErrRender ErrorCode = "RENDER"
)

// SchannoError represents a structured error with code and details
type SchannoError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SchannoError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SchannoError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SchannoError) Is(target error) bool {
	var targetErr *SchannoError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SchannoError with the given code and message
func New(code ErrorCode, message string) *SchannoError {
	return &SchannoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SchannoError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SchannoError {
	return &SchannoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SchannoError
func Wrap(err error, code ErrorCode, message string) *SchannoError {
	if err == nil {
		return nil
	}
	return &SchannoError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SchannoError {
	if err == nil {
		return nil
	}
	return &SchannoError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SchannoError) WithDetail(key string, value interface{}) *SchannoError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var schErr *SchannoError
	if errors.As(err, &schErr) {
		return schErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SchannoError
func GetErrorCode(err error) ErrorCode {
	var schErr *SchannoError
	if errors.As(err, &schErr) {
		return schErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SchannoError
func GetErrorDetails(err error) map[string]interface{} {
	var schErr *SchannoError
	if errors.As(err, &schErr) {
		return schErr.Details
	}
	return nil
}
