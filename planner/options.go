package planner

import (
	"runtime"

	"github.com/katalvlaran/routeplanner/metrics"
	"go.uber.org/zap"
)

// DefaultCacheSize is the number of (start, end) shortest paths memoised
// when WithCacheSize is not given.
const DefaultCacheSize = 1024

type options struct {
	logger    *zap.Logger
	metrics   *metrics.Registry
	cacheSize int
	workers   int
}

func defaultOptions() options {
	return options{
		logger:    zap.NewNop(),
		cacheSize: DefaultCacheSize,
		workers:   runtime.GOMAXPROCS(0),
	}
}

// Option configures a Planner.
type Option func(*options)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics records planning metrics into reg.
func WithMetrics(reg *metrics.Registry) Option {
	return func(o *options) {
		o.metrics = reg
	}
}

// WithCacheSize sets the shortest-path cache capacity. Zero or negative
// disables caching.
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// WithWorkers bounds the number of concurrent requests in PlanBatch.
// Values below 1 are raised to 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
