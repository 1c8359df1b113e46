package calculator

import "time"

const (
	// DefaultMaxPayoffMonths bounds a payoff simulation at 100 years
	DefaultMaxPayoffMonths = 1200
	// DefaultSavingsHorizonMonths bounds a savings simulation at 50 years
	DefaultSavingsHorizonMonths = 600
)

type options struct {
	now           func() time.Time
	maxMonths     int
	horizonMonths int
}

// Option tunes a simulation run.
type Option func(*options)

// WithStartDate anchors schedule dates: month n is dated start + n months.
func WithStartDate(start time.Time) Option {
	return func(o *options) {
		o.now = func() time.Time { return start }
	}
}

// WithMaxMonths caps a payoff simulation. Non-positive values keep the default.
func WithMaxMonths(months int) Option {
	return func(o *options) {
		if months > 0 {
			o.maxMonths = months
		}
	}
}

// WithHorizonMonths caps a savings simulation. Non-positive values keep the default.
func WithHorizonMonths(months int) Option {
	return func(o *options) {
		if months > 0 {
			o.horizonMonths = months
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		now:           time.Now,
		maxMonths:     DefaultMaxPayoffMonths,
		horizonMonths: DefaultSavingsHorizonMonths,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
