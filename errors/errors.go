package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is an error with a code and details that the CLI can print as
// JSON.
type AppError struct {
	Code      ErrorCode      `json:"code"`
	Message   string         `json:"message"`
	Retryable bool           `json:"retryable"`
	Details   map[string]any `json:"details,omitempty"`
	Cause     error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// LookupFailed reports that host could not be resolved.
func LookupFailed(host string, cause error) *AppError {
	return &AppError{
		Code:      ErrCodeLookupFailed,
		Message:   fmt.Sprintf("Unable to resolve %s.", host),
		Retryable: true,
		Details:   map[string]any{"host": host},
		Cause:     cause,
	}
}

// InvalidInput reports an unusable value for field.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: "Invalid input: " + reason,
		Details: details,
	}
}

// Validation reports one or more failed field checks.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// InvalidFormat reports a value that does not match expectedFormat.
func InvalidFormat(field, expectedFormat string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidFormat,
		Message: fmt.Sprintf("Invalid format for %s. Expected: %s", field, expectedFormat),
		Details: map[string]any{"field": field, "expected_format": expectedFormat},
	}
}

// Configuration reports configuration that could not be loaded or used.
func Configuration(reason string, cause error) *AppError {
	return &AppError{Code: ErrCodeConfiguration, Message: reason, Cause: cause}
}

// Internal wraps an error with no better classification.
func Internal(cause error) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: "An unexpected error occurred.", Cause: cause}
}

// Wrap returns the first AppError in err's chain, or err wrapped as Internal.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}

// IsAppError reports whether err's chain holds an AppError.
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// AsAppError returns the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err's chain holds an AppError with code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsInvalidInput reports whether err is an INVALID_INPUT AppError.
func IsInvalidInput(err error) bool {
	return IsCode(err, ErrCodeInvalidInput)
}
