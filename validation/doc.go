// Package validation provides input validation for netclient configuration
// and CLI arguments.
//
// Struct tag validation (go-playground/validator) is used for config
// structs; the programmatic Validator collects errors for ad-hoc checks.
//
// # Struct Tag Validation
//
//	type Config struct {
//	    Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Required("logging.level", c.Level).
//	    OneOf("logging.format", c.Format, []string{"json", "console"}).
//	    Validate()
package validation
