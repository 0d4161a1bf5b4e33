package notepad

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/notepad/internal/platform"
)

// Version exposes the version of the module.
//
//go:embed VERSION
var Version string

// --- Types ---

// Runtime is a wired note store: model, JSON file and logger.
type Runtime = platform.Runtime

// Loop is the single-owner event loop that applies messages.
type Loop = platform.Loop

// Config is the application configuration.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring a Runtime.
type Option = platform.Option

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return platform.WithConfig(cfg)
}

// WithFile sets the note document path (default "notes.json").
func WithFile(path string) Option {
	return platform.WithFile(path)
}

// WithWatch reports foreign edits to the note document.
func WithWatch(enabled bool) Option {
	return platform.WithWatch(enabled)
}

// WithBackgroundIO runs import and export off the event loop.
func WithBackgroundIO(enabled bool) Option {
	return platform.WithBackgroundIO(enabled)
}

// WithLogger sets the logger for the runtime.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// --- Factory ---

// New creates a Runtime.
func New(opts ...Option) (*Runtime, error) {
	return platform.New(opts...)
}

// LoadConfig reads a YAML configuration file. A missing file yields defaults.
func LoadConfig(path string) (Config, error) {
	return platform.LoadConfig(path)
}
