package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/nexus/internal/advisor"
	"github.com/thenoetrevino/nexus/internal/app"
	"github.com/thenoetrevino/nexus/internal/config"
	"github.com/thenoetrevino/nexus/internal/database"
)

// Options selects the database and settings a command runs against
type Options struct {
	// DBPath overrides the configured database file
	DBPath string
	// Memory runs against a throwaway seeded database
	Memory bool
	// Config is loaded from disk when nil
	Config *config.Config
}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	owned bool // App was opened by this CLI and is closed with it
}

// NewCLI opens the database and builds the application container
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	path := cfg.Database.Path
	if opts.DBPath != "" {
		path = opts.DBPath
	}
	if opts.Memory {
		path = database.MemoryPath
	}

	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gen := advisor.NewGenerator(ctx, advisor.GeminiConfig{
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
	})

	application := app.New(db, app.WithGenerator(gen), app.WithLogger(slog.Default()))

	return &CLI{
		App:    application,
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
