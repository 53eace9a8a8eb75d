package httpclient

const (
	// FailureStatusCode is reported when no exchange completed.
	FailureStatusCode = 500
	// FailureMessage is reported when no exchange completed.
	FailureMessage = "An unexpected error occurred."
)

// Result is the envelope every typed call returns.
//
// Data is set only when Success is true and the response body was not blank.
type Result[T any] struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
	Data       *T     `json:"data,omitempty"`
}

// Failure returns the fixed envelope for a call that never completed an
// exchange: network errors, timeouts, cancellation and undecodable 2xx bodies.
func Failure[T any]() *Result[T] {
	return &Result[T]{
		Success:    false,
		StatusCode: FailureStatusCode,
		Message:    FailureMessage,
	}
}

// Value returns the payload and whether one is present.
func (r *Result[T]) Value() (T, bool) {
	if r == nil || r.Data == nil {
		var zero T
		return zero, false
	}
	return *r.Data, true
}
