package httpclient

import (
	"context"
	"net/http"

	"github.com/kbukum/netclient/jsoncodec"
	"github.com/kbukum/netclient/logger"
)

// RequestOption configures a single request.
type RequestOption func(*Request)

// WithHeader sets a header on the request under its exact name.
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithHeaders sets every header in the map on the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *Request) {
		for k, v := range headers {
			WithHeader(k, v)(r)
		}
	}
}

// WithJSONOptions replaces the codec options for this request only.
func WithJSONOptions(opts jsoncodec.Options) RequestOption {
	return func(r *Request) {
		r.JSON = &opts
	}
}

// Get performs a GET request and decodes a 2xx JSON response into T.
func Get[T any](ctx context.Context, a *Adapter, url string, opts ...RequestOption) *Result[T] {
	return send[T](ctx, a, http.MethodGet, url, nil, opts...)
}

// Post performs a POST request with body and decodes a 2xx JSON response into T.
func Post[T any](ctx context.Context, a *Adapter, url string, body any, opts ...RequestOption) *Result[T] {
	return send[T](ctx, a, http.MethodPost, url, body, opts...)
}

// Put performs a PUT request with body and decodes a 2xx JSON response into T.
func Put[T any](ctx context.Context, a *Adapter, url string, body any, opts ...RequestOption) *Result[T] {
	return send[T](ctx, a, http.MethodPut, url, body, opts...)
}

// Patch performs a PATCH request with body and decodes a 2xx JSON response into T.
func Patch[T any](ctx context.Context, a *Adapter, url string, body any, opts ...RequestOption) *Result[T] {
	return send[T](ctx, a, http.MethodPatch, url, body, opts...)
}

// Delete performs a DELETE request and decodes a 2xx JSON response into T.
func Delete[T any](ctx context.Context, a *Adapter, url string, opts ...RequestOption) *Result[T] {
	return send[T](ctx, a, http.MethodDelete, url, nil, opts...)
}

// send runs one request and folds the outcome into a Result. Errors never
// escape: anything that prevents a decoded exchange becomes Failure.
func send[T any](ctx context.Context, a *Adapter, method, url string, body any, opts ...RequestOption) *Result[T] {
	req := Request{
		Method: method,
		URL:    url,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}

	resp, err := a.Do(ctx, req)
	if err != nil {
		return Failure[T]()
	}

	result := &Result[T]{
		Success:    resp.IsSuccess(),
		StatusCode: resp.StatusCode,
		Message:    resp.Reason,
	}
	if !result.Success || isBlank(resp.Body) {
		return result
	}

	var data T
	if err := a.codecFor(req).Unmarshal(resp.Body, &data); err != nil {
		a.log.Debug("response decode failed", logger.MergeWithError(logger.Fields(
			logger.FieldMethod, method,
			logger.FieldURL, url,
			logger.FieldStatus, resp.StatusCode,
		), NewDecodeError(err)))
		return Failure[T]()
	}
	result.Data = &data
	return result
}
