package network

import (
	"context"

	"github.com/kbukum/netclient/component"
)

// Component exposes a Resolver through the component lifecycle.
type Component struct {
	resolver *Resolver
	opts     []Option
}

var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a resolver component. The resolver is built in Start().
func NewComponent(opts ...Option) *Component {
	return &Component{opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string { return "resolver" }

// Start builds the resolver.
func (c *Component) Start(_ context.Context) error {
	c.resolver = NewResolver(c.opts...)
	return nil
}

// Stop is a no-op; the resolver holds no resources.
func (c *Component) Stop(_ context.Context) error { return nil }

// Health reports healthy once the resolver is built.
func (c *Component) Health(_ context.Context) component.Health {
	if c.resolver == nil {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Describe summarizes the component.
func (c *Component) Describe() component.Description {
	return component.Description{Type: "resolver", Details: "ipv4"}
}

// Resolver returns the resolver. Nil before Start().
func (c *Component) Resolver() *Resolver {
	return c.resolver
}
