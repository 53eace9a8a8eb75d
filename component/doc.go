// Package component defines the lifecycle interfaces shared by the HTTP
// client and the resolver, and a Registry that starts and stops them in
// order.
package component
