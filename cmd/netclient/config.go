package main

import (
	"fmt"
	"strings"

	"github.com/kbukum/netclient/config"
	"github.com/kbukum/netclient/httpclient"
	"github.com/kbukum/netclient/jsoncodec"
	"github.com/kbukum/netclient/version"
)

const (
	serviceName = "netclient"
	envPrefix   = "NETCLIENT"
)

// Config is the netclient configuration file layout.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	HTTP                 httpclient.Config `yaml:"http" mapstructure:"http"`
}

// ApplyDefaults fills in defaults for the service and the HTTP client.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	c.ServiceConfig.ApplyDefaults()

	if c.HTTP.Name == "" {
		c.HTTP.Name = serviceName
	}
	if !hasHeader(c.HTTP.Headers, "User-Agent") {
		if c.HTTP.Headers == nil {
			c.HTTP.Headers = make(map[string]string)
		}
		c.HTTP.Headers["User-Agent"] = version.UserAgent()
	}
	c.HTTP.ApplyDefaults()
}

// Validate validates the service and HTTP client sections.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("config.http: %w", err)
	}
	return nil
}

// loadConfig reads config.yml, .env and NETCLIENT_* variables. An empty
// path searches the default locations.
func loadConfig(path string) (*Config, error) {
	opts := []config.LoaderOption{config.WithEnvPrefix(envPrefix)}
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}

	cfg := &Config{}
	if err := config.LoadConfig(serviceName, cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setNaming replaces the naming policy while keeping the other codec options.
func (c *Config) setNaming(policy jsoncodec.NamingPolicy) {
	opts := jsoncodec.Default()
	if c.HTTP.JSON != nil {
		opts = *c.HTTP.JSON
	}
	opts.NamingPolicy = policy
	c.HTTP.JSON = &opts
}

func hasHeader(headers map[string]string, name string) bool {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}
