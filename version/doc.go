// Package version reports build information for the netclient binary.
//
// Version, commit and build time are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/netclient/version.Version=1.0.0" ./cmd/netclient
package version
