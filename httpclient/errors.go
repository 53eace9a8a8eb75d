package httpclient

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
)

// ErrorCode classifies failures that prevent a completed exchange.
type ErrorCode int

const (
	// ErrCodeTimeout indicates the request deadline passed.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeCanceled indicates the caller canceled the context.
	ErrCodeCanceled
	// ErrCodeConnection indicates a network failure (refused, DNS, reset, body read).
	ErrCodeConnection
	// ErrCodeInvalidRequest indicates the request could not be built.
	ErrCodeInvalidRequest
	// ErrCodeEncode indicates the body could not be serialized.
	ErrCodeEncode
	// ErrCodeDecode indicates a 2xx body could not be deserialized.
	ErrCodeDecode
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeCanceled:
		return "canceled"
	case ErrCodeConnection:
		return "connection"
	case ErrCodeInvalidRequest:
		return "invalid_request"
	case ErrCodeEncode:
		return "encode"
	case ErrCodeDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is a transport-level failure. The typed helpers turn every Error
// into the fixed failure envelope; Do returns it as is.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, err error) *Error {
	return &Error{Code: code, Message: err.Error(), Err: err}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(err error) *Error { return newError(ErrCodeTimeout, err) }

// NewCanceledError creates a cancellation error.
func NewCanceledError(err error) *Error { return newError(ErrCodeCanceled, err) }

// NewConnectionError creates a connection error.
func NewConnectionError(err error) *Error { return newError(ErrCodeConnection, err) }

// NewInvalidRequestError creates an error for a request that could not be built.
func NewInvalidRequestError(msg string) *Error {
	return &Error{Code: ErrCodeInvalidRequest, Message: msg}
}

// NewEncodeError creates a body serialization error.
func NewEncodeError(err error) *Error { return newError(ErrCodeEncode, err) }

// NewDecodeError creates a response deserialization error.
func NewDecodeError(err error) *Error { return newError(ErrCodeDecode, err) }

// classifyTransportError maps an error from Doer.Do to an Error.
func classifyTransportError(ctx context.Context, err error) *Error {
	switch {
	case stderrors.Is(ctx.Err(), context.Canceled), stderrors.Is(err, context.Canceled):
		return NewCanceledError(err)
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded), stderrors.Is(err, context.DeadlineExceeded):
		return NewTimeoutError(err)
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return NewTimeoutError(err)
	}
	return NewConnectionError(err)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Code == code
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool { return hasCode(err, ErrCodeTimeout) }

// IsCanceled checks if an error is a cancellation error.
func IsCanceled(err error) bool { return hasCode(err, ErrCodeCanceled) }

// IsConnection checks if an error is a connection error.
func IsConnection(err error) bool { return hasCode(err, ErrCodeConnection) }

// IsInvalidRequest checks if an error is a request-building error.
func IsInvalidRequest(err error) bool { return hasCode(err, ErrCodeInvalidRequest) }

// IsDecode checks if an error is a response deserialization error.
func IsDecode(err error) bool { return hasCode(err, ErrCodeDecode) }
