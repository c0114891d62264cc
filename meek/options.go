package meek

import "github.com/go-logr/logr"

// Option configures a Close invocation.
type Option func(*options)

type options struct {
	logger   logr.Logger
	enableR4 bool
}

func defaultOptions() options {
	return options{logger: logr.Discard()}
}

// WithLogger attaches a structured logger; skipped bidirected-conflict
// writes are logged at V(0), individual orientations at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithR4 enables Meek's rule R4. Not required for PC correctness; off by
// default.
func WithR4() Option {
	return func(o *options) { o.enableR4 = true }
}

func resolveOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
