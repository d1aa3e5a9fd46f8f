package app

import (
	"io"
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	closer io.Closer
	newRef func() string
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithCloser hands ownership of c (usually the *sql.DB) to the App
func WithCloser(c io.Closer) Option {
	return func(cfg *appConfig) {
		cfg.closer = c
	}
}

// WithReferenceFunc replaces the booking reference generator
func WithReferenceFunc(fn func() string) Option {
	return func(cfg *appConfig) {
		cfg.newRef = fn
	}
}
