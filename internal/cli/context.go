package cli

import (
	"context"

	"github.com/thenoetrevino/nexus/internal/app"
	"github.com/thenoetrevino/nexus/internal/config"
)

type contextKey string

const (
	appKey     contextKey = "app"
	optionsKey contextKey = "options"
)

// WithApp injects an already built App. Commands run against it and leave
// closing it to the caller.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithOptions records how commands should open the database
func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsKey, opts)
}

// OptionsFromContext returns the options stored by WithOptions
func OptionsFromContext(ctx context.Context) Options {
	opts, _ := ctx.Value(optionsKey).(Options)
	return opts
}

// GetCLIFromContext returns a CLI for the injected App, or opens a new one
// from the stored Options
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		opts := OptionsFromContext(ctx)
		cfg := opts.Config
		if cfg == nil {
			cfg = config.Default()
		}
		return &CLI{App: a, Config: cfg}, nil
	}
	return NewCLI(ctx, OptionsFromContext(ctx))
}
