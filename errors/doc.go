// Package errors provides the structured error type shared by netclient
// packages. Argument errors, configuration errors and CLI failures are
// reported as *AppError with a machine-readable code.
package errors
