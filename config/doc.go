// Package config loads YAML configuration with .env and environment
// overrides into a caller-defined struct.
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    HTTP httpclient.Config `yaml:"http" mapstructure:"http"`
//	}
//
//	var cfg Config
//	err := config.LoadConfig("netclient", &cfg, config.WithEnvPrefix("NETCLIENT"))
//
// NETCLIENT_HTTP_BASE_URL then overrides http.base_url. Durations parse
// from strings such as "5s", and any field implementing
// encoding.TextUnmarshaler parses from its text form.
package config
