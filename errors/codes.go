package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input validation errors (hard failures that abort the conversation)
const (
	// ErrCodeInvalidInput indicates a malformed diarization interval or conversation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field or file has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Soft metric-level errors
const (
	// ErrCodeInsufficientData indicates a metric lacks the turns or transitions
	// it needs for a given speaker or pair. The affected key is reported as
	// missing; other keys and metrics proceed normally.
	ErrCodeInsufficientData ErrorCode = "INSUFFICIENT_DATA"
)

// Lookup and internal errors
const (
	// ErrCodeNotFound indicates the requested resource (e.g. a metric name) was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// IsHardCode reports whether the code aborts an entire conversation's
// analysis. All convodyn errors are deterministic functions of the input,
// so nothing is retryable.
func IsHardCode(code ErrorCode) bool {
	return code != ErrCodeInsufficientData
}
