package cache

import "time"

// Option configures a ShardedCache during creation.
type Option func(*options)

type options struct {
	ttl time.Duration
	now func() time.Time
}

func defaultOptions() options {
	return options{
		ttl: 0, // entries never expire
		now: time.Now,
	}
}

// WithTTL makes entries expire d after they were stored.
// A zero or negative d disables expiry.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		o.ttl = d
	}
}

// WithClock replaces time.Now as the source of the current time.
// Tests use it to drive expiry without sleeping.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
