package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/nexus/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the full schema and the
// sample workspace
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// setupEmptyTestDB is setupTestDB without the sample tasks and users
func setupEmptyTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := setupTestDB(t)
	for _, table := range []string{"task_tags", "tasks", "users"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("Failed to clear %s: %v", table, err)
		}
	}
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "nexus-test.db")
	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, path
}

// ============================================================================
// FIXTURES
// ============================================================================

func createTestTask(t *testing.T, repo *Repository, id string, status models.TaskStatus, tags ...string) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), &models.Task{
		ID:       id,
		Title:    "Task " + id,
		Status:   status,
		Priority: models.PriorityMedium,
		Tags:     tags,
	})
	if err != nil {
		t.Fatalf("Failed to create task %s: %v", id, err)
	}
	return task
}

func taskIDs(tasks []*models.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
