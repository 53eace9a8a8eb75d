package httpclient

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/netclient/jsoncodec"
	"github.com/kbukum/netclient/logger"
	"github.com/kbukum/netclient/observability"
	"github.com/kbukum/netclient/provider"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithTransport replaces the default *http.Client.
func WithTransport(d Doer) Option {
	return func(a *Adapter) { a.doer = d }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(a *Adapter) { a.log = l }
}

// WithMetrics records request metrics on the given instruments.
func WithMetrics(m *observability.Metrics) Option {
	return func(a *Adapter) { a.metrics = m }
}

// Adapter sends requests through a Doer and wraps every call in the
// configured provider middlewares. It satisfies
// provider.RequestResponse[Request, *Response].
type Adapter struct {
	config  Config
	doer    Doer
	client  *http.Client
	log     *logger.Logger
	metrics *observability.Metrics
	exec    provider.RequestResponse[Request, *Response]
}

// New creates a new HTTP adapter with the given configuration.
func New(cfg Config, opts ...Option) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Adapter{config: cfg}
	for _, opt := range opts {
		opt(a)
	}

	if a.doer == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
		a.client = &http.Client{Transport: transport}
		a.doer = a.client
	}
	if a.log == nil {
		a.log = logger.Get("httpclient")
	}
	a.exec = a.chain()

	return a, nil
}

// chain composes the middlewares enabled by config around the raw executor.
func (a *Adapter) chain() provider.RequestResponse[Request, *Response] {
	var mws []provider.Middleware[Request, *Response]
	if a.config.Tracing {
		mws = append(mws, provider.WithTracing[Request, *Response]("httpclient"))
	}
	if a.config.Logging {
		mws = append(mws, provider.WithLogging[Request, *Response](a.log))
	}
	if a.metrics != nil {
		mws = append(mws, provider.WithMetrics(a.metrics, metricLabels))
	}
	if rc := a.config.Resilience; !rc.IsEmpty() {
		if rc.Retry != nil {
			retry := *rc.Retry
			if retry.RetryIf == nil {
				retry.RetryIf = isRetryable
			}
			if retry.OnRetry == nil {
				retry.OnRetry = a.logRetry
			}
			rc.Retry = &retry
		}
		mws = append(mws, provider.WithResilience[Request, *Response](rc))
	}
	return provider.Chain(mws...)(provider.Func(a.config.Name, a.execute))
}

// isRetryable limits retries to failures where no exchange completed and
// sending again may succeed.
func isRetryable(err error) bool {
	return IsConnection(err) || IsTimeout(err)
}

func (a *Adapter) logRetry(attempt int, err error, wait time.Duration) {
	a.log.Debug("retrying request", logger.MergeWithError(logger.Fields(
		"attempt", attempt,
		"backoff_ms", wait.Milliseconds(),
	), err))
}

func metricLabels(req Request, resp *Response, err error) (string, string) {
	if err != nil {
		var e *Error
		if stderrors.As(err, &e) {
			return req.Method, e.Code.String()
		}
		return req.Method, "error"
	}
	return req.Method, strconv.Itoa(resp.StatusCode)
}

// Do executes an HTTP request and returns the complete response.
// Every completed exchange returns a Response and a nil error, whatever
// the status code. Failures before a response is read return an *Error.
func (a *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	return a.exec.Execute(ctx, req)
}

// execute is the raw executor under the middleware chain.
func (a *Adapter) execute(ctx context.Context, req Request) (*Response, error) {
	log := a.log.WithFields(logger.Fields(
		logger.FieldRequestID, uuid.NewString(),
		logger.FieldMethod, req.Method,
		logger.FieldURL, req.URL,
	))
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	resp, err := a.roundTrip(ctx, req)
	if err != nil {
		observability.SetSpanError(ctx, err)
		log.Debug("request failed", logger.MergeWithDuration(logger.MergeWithError(nil, err), time.Since(start)))
		return nil, err
	}

	observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, resp.StatusCode)
	log.Debug("request completed", logger.MergeWithDuration(
		logger.Fields(logger.FieldStatus, resp.StatusCode), time.Since(start)))
	return resp, nil
}

func (a *Adapter) roundTrip(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := a.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, httpReq.Method)
	observability.SetSpanAttribute(ctx, observability.AttrHTTPURL, httpReq.URL.String())

	resp, err := a.doer.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}

	var body []byte
	if resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			if ctx.Err() != nil {
				return nil, classifyTransportError(ctx, err)
			}
			return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

// buildRequest constructs an *http.Request from the adapter config and request.
func (a *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	target, err := a.resolveURL(req.URL)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeBody(req.Body, a.codecFor(req))
	if err != nil {
		return nil, NewEncodeError(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, NewInvalidRequestError(fmt.Sprintf("create request: %v", err))
	}

	// Request headers replace default headers of the same name.
	applyHeaders(httpReq, a.config.Headers)
	applyHeaders(httpReq, req.Headers)

	if contentType != "" {
		for k := range httpReq.Header {
			if strings.EqualFold(k, contentTypeHeader) {
				delete(httpReq.Header, k)
			}
		}
		httpReq.Header[contentTypeHeader] = []string{contentType}
	}

	return httpReq, nil
}

func (a *Adapter) resolveURL(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", NewInvalidRequestError("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", NewInvalidRequestError(fmt.Sprintf("parse url: %v", err))
	}
	if u.IsAbs() || a.config.BaseURL == "" {
		return raw, nil
	}
	return strings.TrimRight(a.config.BaseURL, "/") + "/" + strings.TrimLeft(raw, "/"), nil
}

// codecFor returns the codec for a request: the request's own options,
// else the client's, else the defaults. Options are never merged.
func (a *Adapter) codecFor(req Request) *jsoncodec.Codec {
	if req.JSON != nil {
		return jsoncodec.New(*req.JSON)
	}
	return jsoncodec.New(a.config.jsonOptions())
}

// applyHeaders writes headers under their exact names. Host is routed to
// the request's Host field since net/http ignores it in the header map.
func applyHeaders(r *http.Request, headers map[string]string) {
	for k, v := range headers {
		if strings.EqualFold(k, "Host") {
			r.Host = v
			continue
		}
		r.Header[k] = []string{v}
	}
}

// reasonPhrase extracts the phrase from a status line such as "404 Not Found".
func reasonPhrase(resp *http.Response) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase == "" {
		return http.StatusText(resp.StatusCode)
	}
	return phrase
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

// Name returns the adapter name (implements provider.Provider).
func (a *Adapter) Name() string {
	return a.config.Name
}

// IsAvailable reports whether the adapter can send requests. It is false
// while a configured circuit breaker is open.
func (a *Adapter) IsAvailable(ctx context.Context) bool {
	return a.doer != nil && a.exec.IsAvailable(ctx)
}

// Execute is Do under the provider.RequestResponse name.
func (a *Adapter) Execute(ctx context.Context, req Request) (*Response, error) {
	return a.Do(ctx, req)
}

// Close releases idle connections when the adapter owns its transport.
func (a *Adapter) Close(_ context.Context) error {
	if a.client != nil {
		a.client.CloseIdleConnections()
	}
	return nil
}

// Config returns the adapter's configuration with defaults applied.
func (a *Adapter) Config() Config {
	return a.config
}
