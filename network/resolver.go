package network

import (
	"context"
	"net"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"

	"github.com/kbukum/netclient/errors"
	"github.com/kbukum/netclient/logger"
)

// LookupResolver looks up the addresses of a host. *net.Resolver satisfies it.
type LookupResolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookupResolver replaces net.DefaultResolver.
func WithLookupResolver(lr LookupResolver) Option {
	return func(r *Resolver) { r.lookup = lr }
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

// Resolver resolves host names to IPv4 addresses.
type Resolver struct {
	lookup LookupResolver
	log    *logger.Logger
}

// NewResolver creates a Resolver backed by net.DefaultResolver unless
// WithLookupResolver says otherwise.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.lookup == nil {
		r.lookup = net.DefaultResolver
	}
	return r
}

// debug logs through the configured logger, or the "network" logger as
// registered at call time.
func (r *Resolver) debug(msg string, fields map[string]interface{}) {
	l := r.log
	if l == nil {
		l = logger.Get("network")
	}
	l.Debug(msg, fields)
}

// ResolveIPv4 returns the IPv4 addresses of host in the order the lookup
// returned them. IPv6 entries are dropped, so the result may be empty.
//
// A blank host is rejected with an INVALID_INPUT AppError before any lookup.
// Lookup failures are returned unwrapped.
func (r *Resolver) ResolveIPv4(ctx context.Context, host string) ([]string, error) {
	if strings.TrimSpace(host) == "" {
		return nil, errors.InvalidInput("host", "host name cannot be empty")
	}

	ascii, err := lookupName(host)
	if err != nil {
		return nil, err
	}

	addrs, err := r.lookup.LookupIPAddr(ctx, ascii)
	if err != nil {
		r.debug("lookup failed", logger.MergeWithError(logger.Fields(logger.FieldHost, ascii), err))
		return nil, err
	}

	ips := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		if v4 := addr.IP.To4(); v4 != nil {
			ips = append(ips, v4.String())
		}
	}

	r.debug("lookup completed", logger.Fields(
		logger.FieldHost, ascii,
		"addresses", len(addrs),
		"ipv4", len(ips),
	))
	return ips, nil
}

// hostProfile maps Unicode names for lookup without the STD3 letter-digit-
// hyphen rule, so labels such as "_srv" or "my_host" still reach the resolver.
var hostProfile = idna.New(idna.MapForLookup(), idna.StrictDomainName(false))

// lookupName returns the name handed to the resolver. IP literals and ASCII
// names pass through unchanged; only non-ASCII names are converted.
func lookupName(host string) (string, error) {
	if net.ParseIP(host) != nil || isASCII(host) {
		return host, nil
	}
	return hostProfile.ToASCII(host)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

var defaultResolver = NewResolver()

// ResolveIPv4 resolves host with the default resolver.
func ResolveIPv4(ctx context.Context, host string) ([]string, error) {
	return defaultResolver.ResolveIPv4(ctx, host)
}
