package httpclient

import (
	"time"

	"github.com/kbukum/netclient/jsoncodec"
	"github.com/kbukum/netclient/provider"
	"github.com/kbukum/netclient/security"
	"github.com/kbukum/netclient/validation"
)

const (
	defaultName    = "http"
	defaultTimeout = 30 * time.Second
)

// Config configures the HTTP client.
type Config struct {
	// Name identifies the client in logs, spans and metrics. Defaults to "http".
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is joined with relative request URLs. Absolute URLs pass through.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty,url"`

	// Timeout bounds a whole exchange including the body read. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gt=0"`

	// Headers are sent with every request. Per-request headers of the same
	// name replace them.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// JSON replaces the default codec options for every request.
	// Nil means jsoncodec.Default().
	JSON *jsoncodec.Options `yaml:"json" mapstructure:"json"`

	// Tracing wraps each call in an OpenTelemetry span.
	Tracing bool `yaml:"tracing" mapstructure:"tracing"`

	// Logging logs every call outcome through the provider middleware.
	Logging bool `yaml:"logging" mapstructure:"logging"`

	// TLS configures server verification and client certificates. Ignored
	// when a custom transport is supplied with WithTransport.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Resilience applies retry, circuit breaking, rate limiting and a
	// concurrency cap to every call. Only transport failures count as
	// failures; any HTTP status is a completed exchange.
	Resilience provider.ResilienceConfig `yaml:"resilience" mapstructure:"resilience"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.TLS.Validate()
}

// jsonOptions returns the client-wide codec options.
func (c *Config) jsonOptions() jsoncodec.Options {
	if c.JSON != nil {
		return *c.JSON
	}
	return jsoncodec.Default()
}
