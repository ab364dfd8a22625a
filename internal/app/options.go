package app

import (
	"log/slog"

	"github.com/thenoetrevino/nexus/internal/advisor"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	generator advisor.Generator
	logger    *slog.Logger
}

// WithGenerator sets the model used by the advisor. Without one the advisor
// reports itself unavailable.
func WithGenerator(gen advisor.Generator) Option {
	return func(cfg *appConfig) {
		cfg.generator = gen
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
