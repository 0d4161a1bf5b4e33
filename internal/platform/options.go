package platform

import (
	"log/slog"
)

// options holds the internal configuration for a Runtime.
type options struct {
	config Config
	logger *slog.Logger
	newID  func() string
}

// Option defines a functional option for configuring a Runtime.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the whole configuration, e.g. one read by LoadConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithFile sets the note document path.
func WithFile(path string) Option {
	return func(o *options) {
		o.config.File = path
	}
}

// WithWatch enables reporting of foreign edits to the note document.
func WithWatch(enabled bool) Option {
	return func(o *options) {
		o.config.Watch = enabled
	}
}

// WithBackgroundIO runs import and export on a separate goroutine.
// Results are still applied on the event loop.
func WithBackgroundIO(enabled bool) Option {
	return func(o *options) {
		o.config.BackgroundIO = enabled
	}
}

// WithLogger sets the logger for the runtime.
// If nil, a logger is built from the configuration.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIDs overrides how note identifiers are generated. Useful for tests.
func WithIDs(next func() string) Option {
	return func(o *options) {
		o.newID = next
	}
}
