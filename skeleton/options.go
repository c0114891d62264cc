package skeleton

import "github.com/go-logr/logr"

// Option configures a Run invocation. Safe to apply in any order.
type Option func(*options)

type options struct {
	logger      logr.Logger
	maxDepth    int // <=0 means unbounded (driven by stop condition only)
	onDepthDone func(depth int, removed int)
}

func defaultOptions() options {
	return options{
		logger:   logr.Discard(),
		maxDepth: 0,
	}
}

// WithLogger attaches a structured logger; each depth transition and edge
// removal is logged at V(1). The zero value (logr.Discard) is silent.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxDepth caps the conditioning-set depth the engine will reach, even if
// the stop condition has not yet fired. A value <= 0 leaves the depth
// unbounded (natural termination at n-2 applies). Intended for callers who
// know in advance that higher-order conditioning sets are not of interest,
// trading completeness for speed.
func WithMaxDepth(d int) Option {
	return func(o *options) { o.maxDepth = d }
}

// WithDepthObserver registers a callback invoked after each depth completes,
// reporting how many edges were removed at that depth. Used by pcdriver to
// feed internal/metrics without skeleton importing it directly.
func WithDepthObserver(fn func(depth, removed int)) Option {
	return func(o *options) { o.onDepthDone = fn }
}

func resolveOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
