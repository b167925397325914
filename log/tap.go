package log

import (
	"github.com/go-logr/logr"
	"github.com/miruken-go/either"
)

type (
	// Options configures a Tap.
	Options struct {
		verbosity int
		name      string
	}

	// Option sets a Tap option.
	Option func(*Options)
)

// Verbosity sets the V level used when logging right values.
func Verbosity(verbosity int) Option {
	return func(o *Options) {
		o.verbosity = verbosity
	}
}

// WithName appends name to the logger used by the Tap.
func WithName(name string) Option {
	return func(o *Options) {
		o.name = name
	}
}

// Tap returns a func that logs the held value of an Either and
// returns it unchanged.
// Right values are logged at the configured verbosity (default 1).
// Left values are logged at level 0, or as errors if they are errors.
func Tap[L, R any](
	logger logr.Logger,
	msg string,
	opts ...Option,
) func(either.Either[L, R]) either.Either[L, R] {
	options := Options{verbosity: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	if options.name != "" {
		logger = logger.WithName(options.name)
	}
	return func(e either.Either[L, R]) either.Either[L, R] {
		return e.Peek(func(l L) {
			if err, ok := any(l).(error); ok && err != nil {
				logger.Error(err, msg)
			} else {
				logger.Info(msg, "left", l)
			}
		}, func(r R) {
			logger.V(options.verbosity).Info(msg, "right", r)
		})
	}
}
