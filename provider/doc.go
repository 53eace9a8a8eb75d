// Package provider defines the RequestResponse abstraction the HTTP client
// executes through, and the middlewares that wrap it.
//
// Middleware[I, O] is a function that wraps a RequestResponse provider.
// Use Chain to compose multiple middlewares:
//
//	wrapped := provider.Chain(
//	    provider.WithLogging[In, Out](log),
//	    provider.WithMetrics[In, Out](metrics, nil),
//	    provider.WithTracing[In, Out]("my-service"),
//	)(provider.Func("raw", execute))
package provider
