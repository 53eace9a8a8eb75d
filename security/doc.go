// Package security builds the client-side TLS configuration used by the
// HTTP transport: custom CA bundles, mutual TLS client certificates,
// server name overrides and a minimum protocol version.
package security
