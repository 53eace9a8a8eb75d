package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/netclient/errors"
	"github.com/kbukum/netclient/httpclient"
	"github.com/kbukum/netclient/jsoncodec"
	"github.com/kbukum/netclient/version"
)

// errUnsuccessful is returned after a non-2xx or failed call has been
// printed, so main exits non-zero without repeating it.
var errUnsuccessful = stderrors.New("request was not successful")

type rootFlags struct {
	configFile string
	verbose    bool
	headers    []string
	naming     string
	timeout    time.Duration
}

type bodyFlags struct {
	data string
	form []string
}

// run executes one CLI invocation and always releases what it started.
func run(ctx context.Context, args []string, out io.Writer) error {
	a := &app{out: out}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(out)

	err := root.ExecuteContext(ctx)
	if stopErr := a.stop(context.WithoutCancel(ctx)); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}

func newRootCommand(a *app) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "netclient",
		Short:         "Send HTTP requests and print the result envelope as JSON",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  netclient get https://api.example.com/users/1 -H "X-Api-Key: secret"
  netclient post https://api.example.com/users --data '{"name":"Ann"}'
  netclient post https://example.com/login --form user=ann --form pass=x
  netclient resolve example.com`),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" {
				return nil
			}
			cfg, err := loadConfig(flags.configFile)
			if err != nil {
				return errors.Configuration("load config", err)
			}
			if err := applyFlags(cmd, cfg, flags); err != nil {
				return err
			}
			cfg.ApplyDefaults()
			if err := cfg.Validate(); err != nil {
				return errors.Configuration("invalid config", err)
			}
			a.cfg = cfg
			return a.start(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "config file (default: search ./config.yml and friends)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log at debug level to stderr")
	pf.StringArrayVarP(&flags.headers, "header", "H", nil, `request header "Name: value" (repeatable)`)
	pf.StringVar(&flags.naming, "naming", "", "JSON naming policy: none|camel|snake|snake_upper|kebab|kebab_upper")
	pf.DurationVar(&flags.timeout, "timeout", 0, "request timeout (default 30s)")

	root.AddCommand(
		newNoBodyCommand(a, flags, http.MethodGet),
		newNoBodyCommand(a, flags, http.MethodDelete),
		newBodyCommand(a, flags, http.MethodPost),
		newBodyCommand(a, flags, http.MethodPut),
		newBodyCommand(a, flags, http.MethodPatch),
		newResolveCommand(a),
		newVersionCommand(a),
	)
	return root
}

// applyFlags overrides loaded config with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *Config, flags *rootFlags) error {
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}
	if cmd.Flags().Changed("timeout") {
		cfg.HTTP.Timeout = flags.timeout
	}
	if flags.naming != "" {
		policy, err := jsoncodec.ParseNamingPolicy(flags.naming)
		if err != nil {
			return err
		}
		cfg.setNaming(policy)
	}
	return nil
}

func newNoBodyCommand(a *app, flags *rootFlags, method string) *cobra.Command {
	return &cobra.Command{
		Use:   strings.ToLower(method) + " URL",
		Short: "Send a " + method + " request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(cmd.Context(), method, args[0], nil, flags)
		},
	}
}

func newBodyCommand(a *app, flags *rootFlags, method string) *cobra.Command {
	bf := &bodyFlags{}
	cmd := &cobra.Command{
		Use:   strings.ToLower(method) + " URL",
		Short: "Send a " + method + " request with a JSON or form body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := parseBody(bf.data, bf.form)
			if err != nil {
				return a.fail(err)
			}
			return a.send(cmd.Context(), method, args[0], body, flags)
		},
	}
	cmd.Flags().StringVarP(&bf.data, "data", "d", "", "JSON request body")
	cmd.Flags().StringArrayVarP(&bf.form, "form", "F", nil, "form field key=value (repeatable)")
	return cmd
}

// send runs one typed call and prints the envelope.
func (a *app) send(ctx context.Context, method, url string, body any, flags *rootFlags) error {
	headers, err := parseHeaders(flags.headers)
	if err != nil {
		return a.fail(err)
	}
	client := a.http.Adapter()
	opt := httpclient.WithHeaders(headers)

	var res *httpclient.Result[any]
	switch method {
	case http.MethodGet:
		res = httpclient.Get[any](ctx, client, url, opt)
	case http.MethodDelete:
		res = httpclient.Delete[any](ctx, client, url, opt)
	case http.MethodPost:
		res = httpclient.Post[any](ctx, client, url, body, opt)
	case http.MethodPut:
		res = httpclient.Put[any](ctx, client, url, body, opt)
	case http.MethodPatch:
		res = httpclient.Patch[any](ctx, client, url, body, opt)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}

	if err := a.print(res); err != nil {
		return err
	}
	if !res.Success {
		return errUnsuccessful
	}
	return nil
}

// fail prints err as an error document and marks the command unsuccessful.
func (a *app) fail(err error) error {
	if printErr := a.print(errors.Wrap(err).ToResponse()); printErr != nil {
		return printErr
	}
	return errUnsuccessful
}

func newResolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve HOST",
		Short: "Print the IPv4 addresses of a host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ips, err := a.resolver.Resolver().ResolveIPv4(cmd.Context(), args[0])
			if err != nil {
				if !errors.IsAppError(err) {
					err = errors.LookupFailed(args[0], err)
				}
				return a.fail(err)
			}
			return a.print(ips)
		},
	}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.print(version.Get())
		},
	}
}
