package voronoi

import (
	"runtime"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/dvoronoi/grid"
	"github.com/katalvlaran/dvoronoi/metric"
)

// Option configures a Builder via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Build.
type Option func(*Options)

// Options holds the tessellation configuration.
type Options struct {
	// Metric arbitrates contested cells.
	Metric metric.Metric

	// Bounds is the grid domain. Nil fits the domain tightly to the sites.
	Bounds *grid.BoundingBox

	// Logger receives build and round events. Rounds log at debug level.
	Logger *zap.Logger

	// Workers bounds the fan-out of the boundary-chain phase.
	// 1 keeps the whole round on the calling goroutine.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - the Euclidean metric
//   - bounds fitted to the sites
//   - a no-op logger
//   - one worker per GOMAXPROCS.
func DefaultOptions() Options {
	return Options{
		Metric:  metric.Default(),
		Logger:  zap.NewNop(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithMetric selects the distance metric. A nil metric is an option violation.
func WithMetric(m metric.Metric) Option {
	return func(o *Options) {
		if m == nil {
			o.err = errors.Wrap(ErrOptionViolation, "metric cannot be nil")
			return
		}
		o.Metric = m
	}
}

// WithBounds fixes the grid domain instead of fitting it to the sites.
// Sites outside b are dropped by Build. An empty box is an option violation.
func WithBounds(b grid.BoundingBox) Option {
	return func(o *Options) {
		if b.Len() == 0 {
			o.err = errors.Wrap(ErrOptionViolation, "bounds cannot be empty")
			return
		}
		o.Bounds = &b
	}
}

// WithLogger routes build and round events to l. Nil keeps the current logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers bounds the boundary-chain fan-out.
//
//	n > 0:  at most n goroutines
//	n == 0: one per GOMAXPROCS
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = errors.Wrapf(ErrOptionViolation, "workers cannot be negative (%d)", n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}
