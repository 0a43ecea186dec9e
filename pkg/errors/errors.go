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

	// Style errors
	ErrUnknownStyle ErrorCode = "UNKNOWN_STYLE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Help topic errors
	ErrTopicNotFound ErrorCode = "TOPIC_NOT_FOUND"
)

// GutterError represents a structured error with code and details
type GutterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GutterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GutterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GutterError) Is(target error) bool {
	var targetErr *GutterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GutterError with the given code and message
func New(code ErrorCode, message string) *GutterError {
	return &GutterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GutterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GutterError {
	return &GutterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GutterError
func Wrap(err error, code ErrorCode, message string) *GutterError {
	if err == nil {
		return nil
	}
	return &GutterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GutterError {
	if err == nil {
		return nil
	}
	return &GutterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GutterError) WithDetail(key string, value interface{}) *GutterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error, or any error it wraps, has a specific code
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var gutterErr *GutterError
		if !errors.As(err, &gutterErr) {
			return false
		}
		if gutterErr.Code == code {
			return true
		}
		err = gutterErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GutterError
func GetErrorCode(err error) ErrorCode {
	var gutterErr *GutterError
	if errors.As(err, &gutterErr) {
		return gutterErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GutterError
func GetErrorDetails(err error) map[string]interface{} {
	var gutterErr *GutterError
	if errors.As(err, &gutterErr) {
		return gutterErr.Details
	}
	return nil
}
