package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeLookupFailed indicates a host name could not be resolved.
	ErrCodeLookupFailed ErrorCode = "LOOKUP_FAILED"
	// ErrCodeInvalidInput indicates the caller passed an unusable value.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidFormat indicates a value does not have the expected shape.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeConfiguration indicates invalid or unreadable configuration.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeInternal indicates an error with no better classification.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
