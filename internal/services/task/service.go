package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/nexus/internal/board"
	"github.com/thenoetrevino/nexus/internal/database"
	"github.com/thenoetrevino/nexus/internal/models"
)

const (
	maxTitleLength = 255
	maxTags        = 20
)

// Service defines all task-related business operations.
// It is also the board's canonical TaskStore.
type Service interface {
	board.TaskStore

	// Read operations
	TasksByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error)
	CountByStatus(ctx context.Context) (map[models.TaskStatus]int, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// CreateTaskRequest encapsulates all data needed to create a task.
// Zero Status and Priority fall back to todo and medium.
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.Priority
	AssigneeID  string // Optional: must name a team member when set
	DueDate     string // Optional: YYYY-MM-DD
	Tags        []string
}

// service implements Service interface
type service struct {
	repo  database.DataStore
	newID func() string
}

// NewService creates a new task service
func NewService(repo database.DataStore) Service {
	return &service{
		repo:  repo,
		newID: uuid.NewString,
	}
}

// Tasks returns every task in insertion order
func (s *service) Tasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns models.ErrTaskNotFound for unknown or empty ids
func (s *service) GetTask(ctx context.Context, taskID string) (*models.Task, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, models.ErrTaskNotFound
	}
	return s.repo.GetTaskByID(ctx, taskID)
}

func (s *service) TasksByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	return s.repo.GetTasksByStatus(ctx, status)
}

func (s *service) CountByStatus(ctx context.Context) (map[models.TaskStatus]int, error) {
	return s.repo.GetTaskCounts(ctx)
}

// CreateTask handles task creation with validation and defaults
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	task, err := s.buildTask(ctx, req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// UpdateTaskStatus sets the status with no transition rules. Writing the
// current status is accepted.
func (s *service) UpdateTaskStatus(ctx context.Context, taskID string, status models.TaskStatus) error {
	if strings.TrimSpace(taskID) == "" {
		return ErrInvalidTaskID
	}
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	return s.repo.UpdateTaskStatus(ctx, taskID, status)
}

// DeleteTask removes a task
func (s *service) DeleteTask(ctx context.Context, taskID string) error {
	if strings.TrimSpace(taskID) == "" {
		return ErrInvalidTaskID
	}
	return s.repo.DeleteTask(ctx, taskID)
}

// buildTask validates req and applies defaults
func (s *service) buildTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}

	status := req.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}

	priority := req.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidPriority, priority)
	}

	dueDate := strings.TrimSpace(req.DueDate)
	if dueDate != "" {
		if _, err := time.Parse(models.DueDateLayout, dueDate); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDueDate, dueDate)
		}
	}

	tags := models.NormalizeTags(req.Tags)
	if len(tags) > maxTags {
		return nil, ErrTooManyTags
	}

	assignee := strings.TrimSpace(req.AssigneeID)
	if assignee != "" {
		if _, err := s.repo.GetUserByID(ctx, assignee); err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				return nil, fmt.Errorf("%w: %q", ErrUnknownAssignee, assignee)
			}
			return nil, fmt.Errorf("failed to look up assignee: %w", err)
		}
	}

	return &models.Task{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		Priority:    priority,
		AssigneeID:  assignee,
		DueDate:     dueDate,
		Tags:        tags,
	}, nil
}

var _ board.TaskStore = (*service)(nil)
