package database

import (
	"context"

	"github.com/thenoetrevino/nexus/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTasksByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	GetTaskCounts(ctx context.Context) (map[models.TaskStatus]int, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) error
	DeleteTask(ctx context.Context, id string) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
