// Package network resolves host names to IPv4 addresses.
//
//	ips, err := network.ResolveIPv4(ctx, "example.com")
//
// Unicode host names are converted with the IDNA lookup profile first.
// Lookup errors such as *net.DNSError reach the caller unwrapped.
package network
