package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/nexus/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
	*UserRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TaskRepo: &TaskRepo{db: db},
		UserRepo: &UserRepo{db: db},
	}
}

// Wrapper methods for TaskRepo
func (r *Repository) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	return r.TaskRepo.GetAll(ctx)
}

func (r *Repository) GetTasksByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error) {
	return r.TaskRepo.GetByStatus(ctx, status)
}

func (r *Repository) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) GetTaskCounts(ctx context.Context) (map[models.TaskStatus]int, error) {
	return r.TaskRepo.Count(ctx)
}

func (r *Repository) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, task)
}

func (r *Repository) UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) error {
	return r.TaskRepo.UpdateStatus(ctx, id, status)
}

func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	return r.TaskRepo.Delete(ctx, id)
}

// Wrapper methods for UserRepo
func (r *Repository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return r.UserRepo.GetAll(ctx)
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return r.UserRepo.GetByID(ctx, id)
}
