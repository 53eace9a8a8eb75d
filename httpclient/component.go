package httpclient

import (
	"context"
	"fmt"

	"github.com/kbukum/netclient/component"
)

// Component wraps an Adapter with lifecycle management.
type Component struct {
	adapter *Adapter
	config  Config
	opts    []Option
}

var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a new HTTP adapter component.
// The adapter is created in Start().
func NewComponent(cfg Config, opts ...Option) *Component {
	return &Component{config: cfg, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	if c.config.Name == "" {
		return defaultName
	}
	return c.config.Name
}

// Start builds the HTTP adapter.
func (c *Component) Start(_ context.Context) error {
	a, err := New(c.config, c.opts...)
	if err != nil {
		return fmt.Errorf("httpclient %s: %w", c.Name(), err)
	}
	c.adapter = a
	return nil
}

// Stop releases idle connections.
func (c *Component) Stop(ctx context.Context) error {
	if c.adapter != nil {
		return c.adapter.Close(ctx)
	}
	return nil
}

// Health reports healthy once the adapter is built.
func (c *Component) Health(ctx context.Context) component.Health {
	if c.adapter == nil || !c.adapter.IsAvailable(ctx) {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Describe summarizes the client configuration.
func (c *Component) Describe() component.Description {
	cfg := c.config
	cfg.ApplyDefaults()
	details := fmt.Sprintf("timeout=%s naming=%s", cfg.Timeout, cfg.jsonOptions().NamingPolicy)
	if cfg.BaseURL != "" {
		details = cfg.BaseURL + " " + details
	}
	return component.Description{
		Name:    c.Name(),
		Type:    "http-client",
		Details: details,
	}
}

// Adapter returns the underlying HTTP adapter. Nil before Start().
func (c *Component) Adapter() *Adapter {
	return c.adapter
}
