// Package testutil provides shared fixtures for tests outside the database
// package
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/nexus/internal/database"
	"github.com/thenoetrevino/nexus/internal/models"
)

// SetupTestDB creates a migrated in-memory database holding the sample team
// and tasks
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupEmptyTestDB is SetupTestDB without the sample tasks. The team is kept
// so assignees still resolve.
func SetupEmptyTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := SetupTestDB(t)
	if _, err := db.ExecContext(context.Background(), "DELETE FROM tasks"); err != nil {
		t.Fatalf("Failed to clear tasks: %v", err)
	}
	return db
}

// CreateTestTask inserts a task in status and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, title string, status models.TaskStatus) string {
	t.Helper()
	task := &models.Task{
		ID:       "test-" + title,
		Title:    title,
		Status:   status,
		Priority: models.PriorityMedium,
	}
	created, err := database.NewRepository(db).CreateTask(context.Background(), task)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return created.ID
}
