package httpclient

import "github.com/kbukum/netclient/jsoncodec"

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE).
	Method string
	// URL is absolute, or relative to Config.BaseURL.
	URL string
	// Headers are sent as given: names are not canonicalized or validated
	// and an empty value is sent as an empty header.
	Headers map[string]string
	// Body is nil for no body. A map[string]string or url.Values is sent
	// form-urlencoded; anything else is JSON-encoded with the effective codec.
	Body any
	// JSON replaces the client codec options for this request when set.
	JSON *jsoncodec.Options
}

// Response is a completed HTTP exchange, whatever its status.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Reason is the reason phrase from the status line.
	Reason string
	// Headers are the response headers, first value per name.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
