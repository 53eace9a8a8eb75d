// Package httpclient sends HTTP requests and folds every outcome into a
// typed result envelope.
//
// The typed helpers never return an error. A completed exchange reports its
// real status code and reason phrase; a 2xx JSON body is decoded into T.
// Anything that prevents a completed exchange (connection refused, timeout,
// cancellation, an undecodable 2xx body) yields the fixed Failure envelope
// with status 500.
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.example.com",
//	    Timeout: 10 * time.Second,
//	})
//
//	res := httpclient.Get[User](ctx, client, "/users/1",
//	    httpclient.WithHeader("X-Api-Key", key))
//	if user, ok := res.Value(); ok {
//	    ...
//	}
//
// A map[string]string body is sent form-urlencoded; any other body is sent
// as JSON. JSON naming follows jsoncodec.Default (camelCase) unless the
// client config or a WithJSONOptions request option replaces it.
//
// Config.Resilience adds retries, a circuit breaker, a rate limit and a
// concurrency cap. Only transport failures are retried or counted by the
// breaker; a 503 is still a completed exchange. Config.TLS sets the CA
// bundle and client certificate of the default transport.
//
// Adapter.Do is the explicit-error path underneath and returns *Error for
// transport failures.
package httpclient
