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

	// Structural input errors: the edited list cannot be turned into a
	// rename mapping. Nothing on disk has been touched.
	ErrLineCount       ErrorCode = "LINE_COUNT_MISMATCH"
	ErrDuplicateTarget ErrorCode = "DUPLICATE_TARGET"
	ErrTargetCollision ErrorCode = "TARGET_COLLISION"
	ErrMalformedPath   ErrorCode = "MALFORMED_PATH"

	// Planning errors
	ErrTempName ErrorCode = "TEMP_NAME_UNAVAILABLE"

	// Staleness errors: the filesystem no longer matches the snapshot
	// the user edited. Nothing on disk has been touched.
	ErrStaleSnapshot ErrorCode = "STALE_SNAPSHOT"

	// Execution errors: a precondition failed mid-run. Renames completed
	// before the failure stay completed.
	ErrSourceMissing ErrorCode = "SOURCE_MISSING"
	ErrTargetExists  ErrorCode = "TARGET_EXISTS"
	ErrRenameFailed  ErrorCode = "RENAME_FAILED"

	// Collaborator errors
	ErrEditor     ErrorCode = "EDITOR"
	ErrTraversal  ErrorCode = "TRAVERSAL"
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
	ErrJournal    ErrorCode = "JOURNAL_WRITE"
)

// BumvError represents a structured error with code and details
type BumvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BumvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BumvError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BumvError) Is(target error) bool {
	var targetErr *BumvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BumvError with the given code and message
func New(code ErrorCode, message string) *BumvError {
	return &BumvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BumvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BumvError {
	return &BumvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BumvError
func Wrap(err error, code ErrorCode, message string) *BumvError {
	if err == nil {
		return nil
	}
	return &BumvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BumvError {
	if err == nil {
		return nil
	}
	return &BumvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BumvError) WithDetail(key string, value interface{}) *BumvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bumvErr *BumvError
	if errors.As(err, &bumvErr) {
		return bumvErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BumvError
func GetErrorCode(err error) ErrorCode {
	var bumvErr *BumvError
	if errors.As(err, &bumvErr) {
		return bumvErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BumvError
func GetErrorDetails(err error) map[string]interface{} {
	var bumvErr *BumvError
	if errors.As(err, &bumvErr) {
		return bumvErr.Details
	}
	return nil
}
