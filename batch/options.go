package batch

import (
	"runtime"

	"github.com/hupe1980/euclid"
)

type options struct {
	concurrency int
	logger      *euclid.Logger
}

// Option configures an Evaluator.
type Option func(*options)

// WithConcurrency limits how many pairs are evaluated at once.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *euclid.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = euclid.NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      euclid.NoopLogger(),
	}
}
