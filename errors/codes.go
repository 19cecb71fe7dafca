package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction errors
const (
	// ErrCodeInvalidArgument indicates a configuration argument is invalid.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Restore errors
const (
	// ErrCodeInvalidState indicates snapshot state is malformed.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
	// ErrCodeTypeMismatch indicates snapshot state has the wrong type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeOutOfRange indicates a snapshot index is out of bounds.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Runtime errors
const (
	// ErrCodeReentrant indicates a shared source was re-entered mid-pull.
	ErrCodeReentrant ErrorCode = "REENTRANT"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var restoreCodes = map[ErrorCode]bool{
	ErrCodeInvalidState: true,
	ErrCodeTypeMismatch: true,
	ErrCodeOutOfRange:   true,
}

// IsRestoreCode returns true if the code is raised by a rejected restore.
func IsRestoreCode(code ErrorCode) bool {
	return restoreCodes[code]
}
