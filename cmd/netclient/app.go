package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kbukum/netclient/component"
	"github.com/kbukum/netclient/httpclient"
	"github.com/kbukum/netclient/jsoncodec"
	"github.com/kbukum/netclient/logger"
	"github.com/kbukum/netclient/network"
	"github.com/kbukum/netclient/observability"
)

// app holds the components one CLI invocation runs with.
type app struct {
	cfg      *Config
	out      io.Writer
	registry *component.Registry
	http     *httpclient.Component
	resolver *network.Component
	shutdown []func(context.Context) error
}

// start initializes logging and telemetry, then starts the components.
func (a *app) start(ctx context.Context) error {
	logger.Init(a.cfg.Logging)
	logger.RegisterDefaults("httpclient", "network")

	var opts []httpclient.Option
	if a.cfg.Tracing.Enabled {
		tp, err := observability.InitTracer(ctx, a.cfg.Tracing)
		if err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
		a.shutdown = append(a.shutdown, tp.Shutdown)
		a.cfg.HTTP.Tracing = true
	}
	if a.cfg.Metrics.Enabled {
		mp, err := observability.InitMeter(ctx, a.cfg.Metrics)
		if err != nil {
			return fmt.Errorf("init meter: %w", err)
		}
		a.shutdown = append(a.shutdown, mp.Shutdown)
		metrics, err := observability.NewMetrics(observability.Meter(serviceName))
		if err != nil {
			return err
		}
		opts = append(opts, httpclient.WithMetrics(metrics))
	}

	a.http = httpclient.NewComponent(a.cfg.HTTP, opts...)
	a.resolver = network.NewComponent()
	a.registry = component.NewRegistry()
	for _, c := range []component.Component{a.http, a.resolver} {
		if err := a.registry.Register(c); err != nil {
			return err
		}
	}
	if err := a.registry.StartAll(ctx); err != nil {
		return err
	}

	for _, d := range a.registry.Describe() {
		logger.Debug("component ready", logger.Fields("name", d.Name, "type", d.Type, "details", d.Details))
	}
	return nil
}

// stop stops the components and flushes telemetry.
func (a *app) stop(ctx context.Context) error {
	var errs []error
	if a.registry != nil {
		errs = append(errs, a.registry.StopAll(ctx))
	}
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		errs = append(errs, a.shutdown[i](ctx))
	}
	return errors.Join(errs...)
}

// print writes v as indented JSON with sorted keys.
func (a *app) print(v any) error {
	data, err := jsoncodec.New(jsoncodec.Options{SortMapKeys: true}).MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}
