package colorspace

import (
	"log/slog"
	"time"
)

// EvaluatorOption configures an Evaluator during creation.
//
// Example:
//
//	// Default: 256 entries per shard, no expiry, silent
//	ev := colorspace.NewEvaluator()
//
//	// Bounded lifetime with a test clock and debug logging
//	ev := colorspace.NewEvaluator(
//	    colorspace.WithCacheTTL(time.Minute),
//	    colorspace.WithClock(clock.Now),
//	    colorspace.WithLogger(slog.Default()),
//	)
type EvaluatorOption func(*evaluatorOptions)

// evaluatorOptions holds optional configuration for Evaluator creation.
type evaluatorOptions struct {
	capacity int
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// defaultEvaluatorOptions returns the default evaluator options.
func defaultEvaluatorOptions() evaluatorOptions {
	return evaluatorOptions{
		capacity: 0, // cache.DefaultCapacity
		ttl:      0, // never expire
		now:      time.Now,
		logger:   nil, // silent
	}
}

// WithCacheCapacity sets the number of memoised luminances per cache shard.
// Values <= 0 select the cache default.
func WithCacheCapacity(n int) EvaluatorOption {
	return func(o *evaluatorOptions) {
		o.capacity = n
	}
}

// WithCacheTTL bounds how long a memoised luminance is reused.
// Zero (the default) keeps entries until they are evicted.
func WithCacheTTL(d time.Duration) EvaluatorOption {
	return func(o *evaluatorOptions) {
		o.ttl = d
	}
}

// WithClock sets the time source used for cache expiry.
// A nil function is ignored.
func WithClock(now func() time.Time) EvaluatorOption {
	return func(o *evaluatorOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger for cache diagnostics.
// By default an Evaluator produces no log output; nil restores that.
func WithLogger(l *slog.Logger) EvaluatorOption {
	return func(o *evaluatorOptions) {
		o.logger = l
	}
}
