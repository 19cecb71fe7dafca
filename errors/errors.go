package errors

import (
	"fmt"
)

// AppError is the unified library error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// InvalidArgument creates a construction error for a bad argument.
func InvalidArgument(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid argument: %s", reason),
		Details: details,
	}
}

// Validation creates a construction error from a pre-built message.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidArgument, Message: message}
}

// InvalidState creates a restore error for malformed snapshot state.
func InvalidState(kind, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidState, Message: fmt.Sprintf("invalid %s state: %s", kind, reason),
		Details: map[string]any{"kind": kind},
	}
}

// TypeMismatch creates a restore error for state of the wrong type.
func TypeMismatch(kind string, want string, got any) *AppError {
	return &AppError{
		Code: ErrCodeTypeMismatch, Message: fmt.Sprintf("%s state must be %s, got %T", kind, want, got),
		Details: map[string]any{"kind": kind, "want": want, "got": fmt.Sprintf("%T", got)},
	}
}

// OutOfRange creates a restore error for an index outside [lo, hi].
func OutOfRange(field string, value, lo, hi int) *AppError {
	return &AppError{
		Code: ErrCodeOutOfRange, Message: fmt.Sprintf("%s %d out of range [%d, %d]", field, value, lo, hi),
		Details: map[string]any{"field": field, "value": value, "min": lo, "max": hi},
	}
}

// Reentrant creates an error for a source re-entered during a pull.
func Reentrant(component string) *AppError {
	return &AppError{
		Code: ErrCodeReentrant, Message: fmt.Sprintf("cannot re-enter the %s iterator", component),
		Details: map[string]any{"component": component},
	}
}

// Internal creates an AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred", Cause: cause,
	}
}
