package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// DefaultDir returns ~/.nexus/logs
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".nexus", "logs"), nil
}

// Init initializes the logging system, writing logs to logDir/nexus.log.
// An empty logDir uses DefaultDir. Uses text format for human readability.
func Init(logDir string) error {
	if logDir == "" {
		var err error
		if logDir, err = DefaultDir(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "nexus.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler).With("app", "nexus")
	slog.SetDefault(Logger)

	// Redirect standard log package output (used by golang-migrate) to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}
