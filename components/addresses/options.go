package addresses

import (
	"net/http"

	"github.com/goliatone/go-quoteform/pkg/lookup"
)

// GuardFunc inspects an incoming request before the lookup runs. Returning a
// non-nil error rejects the request.
type GuardFunc func(r *http.Request) error

// Options configures the addresses component.
type Options struct {
	RoutePath     string
	PostcodeParam string
	Guard         GuardFunc

	Provider lookup.AddressProvider
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		RoutePath:     "/api/addresses",
		PostcodeParam: "postcode",
	}
}

// NewOptions applies overrides on top of DefaultOptions and normalizes the
// result.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/addresses"
	}
	if opts.PostcodeParam == "" {
		opts.PostcodeParam = "postcode"
	}
	return opts
}

// WithRoutePath sets the route the handler mounts under.
func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

// WithPostcodeParam sets the query parameter carrying the postcode.
func WithPostcodeParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PostcodeParam = name
	}
}

// WithGuard installs a request guard.
func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithProvider sets the lookup provider the handler proxies to.
func WithProvider(provider lookup.AddressProvider) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Provider = provider
	}
}
