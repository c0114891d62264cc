package pcdriver

import (
	"github.com/causalkit/pcalg/internal/metrics"
	"github.com/go-logr/logr"
)

// Option configures a Run invocation.
type Option func(*options)

type options struct {
	logger   logr.Logger
	enableR4 bool
	maxDepth int
	recorder *metrics.Recorder
}

func defaultOptions() options {
	return options{logger: logr.Discard()}
}

// WithLogger attaches a structured logger, propagated to both the adjacency
// and Meek-closure phases.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithR4 enables Meek's optional rule R4.
func WithR4() Option {
	return func(o *options) { o.enableR4 = true }
}

// WithMaxDepth caps the adjacency phase's conditioning depth; see
// skeleton.WithMaxDepth.
func WithMaxDepth(d int) Option {
	return func(o *options) { o.maxDepth = d }
}

// WithMetrics attaches a metrics.Recorder: CI-test counts, edges removed per
// depth, and phase timing are reported to it over the run.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func resolveOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
