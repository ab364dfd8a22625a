package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/nexus/internal/advisor"
	"github.com/thenoetrevino/nexus/internal/board"
	"github.com/thenoetrevino/nexus/internal/database"
	taskservice "github.com/thenoetrevino/nexus/internal/services/task"
	teamservice "github.com/thenoetrevino/nexus/internal/services/team"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	repo   database.DataStore
	logger *slog.Logger

	// Service layer (business logic)
	TaskService taskservice.Service
	TeamService teamservice.Service

	// Advisor drafts descriptions and board insights
	Advisor *advisor.Advisor
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	return &App{
		db:          db,
		repo:        repo,
		logger:      cfg.logger,
		TaskService: taskservice.NewService(repo),
		TeamService: teamservice.NewService(repo),
		Advisor:     advisor.New(cfg.generator, cfg.logger),
	}
}

// NewBoard returns a fresh drag-and-drop machine over the task service
func (a *App) NewBoard(opts ...board.Option) *board.Machine {
	return board.NewMachine(a.TaskService, opts...)
}

// Logger returns the logger the app was built with
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database connection
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
