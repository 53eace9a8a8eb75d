package config

import (
	"fmt"

	"github.com/kbukum/netclient/logger"
	"github.com/kbukum/netclient/observability"
)

var validEnvironments = []string{"development", "staging", "production"}

// ServiceConfig contains the fields every netclient binary needs.
// Embed it in a larger config struct:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    HTTP httpclient.Config `yaml:"http" mapstructure:"http"`
//	}
type ServiceConfig struct {
	Name        string                     `yaml:"name" mapstructure:"name"`
	Environment string                     `yaml:"environment" mapstructure:"environment"`
	Version     string                     `yaml:"version" mapstructure:"version"`
	Debug       bool                       `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config              `yaml:"logging" mapstructure:"logging"`
	Tracing     observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics     observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
}

// GetServiceConfig returns the base ServiceConfig. Promoted when embedded.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults applies default values to the base configuration.
// Embedding structs call c.ServiceConfig.ApplyDefaults() first.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()

	c.Tracing = withTracerDefaults(c.Tracing, c)
	c.Metrics = withMeterDefaults(c.Metrics, c)
}

func withTracerDefaults(t observability.TracerConfig, c *ServiceConfig) observability.TracerConfig {
	d := observability.DefaultTracerConfig(c.Name)
	d.Enabled = t.Enabled
	d.Environment = c.Environment
	if c.Version != "" {
		d.ServiceVersion = c.Version
	}
	if t.Endpoint != "" {
		d.Endpoint = t.Endpoint
		d.Insecure = t.Insecure
	}
	if t.SampleRate > 0 {
		d.SampleRate = t.SampleRate
	}
	return d
}

func withMeterDefaults(m observability.MeterConfig, c *ServiceConfig) observability.MeterConfig {
	d := observability.DefaultMeterConfig(c.Name)
	d.Enabled = m.Enabled
	d.Environment = c.Environment
	if c.Version != "" {
		d.ServiceVersion = c.Version
	}
	if m.Endpoint != "" {
		d.Endpoint = m.Endpoint
		d.Insecure = m.Insecure
	}
	if m.Interval > 0 {
		d.Interval = m.Interval
	}
	return d
}

// Validate validates the base configuration fields.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	found := false
	for _, v := range validEnvironments {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvironments, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
