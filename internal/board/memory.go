package board

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/nexus/internal/models"
)

// MemoryStore is a TaskStore kept entirely in process memory.
// Returned tasks are copies; the store owns its records.
type MemoryStore struct {
	tasks []*models.Task
}

// NewMemoryStore seeds a store with copies of tasks, keeping their order
func NewMemoryStore(tasks []*models.Task) *MemoryStore {
	s := &MemoryStore{tasks: make([]*models.Task, 0, len(tasks))}
	for _, t := range tasks {
		s.tasks = append(s.tasks, t.Clone())
	}
	return s
}

// Tasks returns every task in insertion order
func (s *MemoryStore) Tasks(_ context.Context) ([]*models.Task, error) {
	out := make([]*models.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out, nil
}

// GetTask returns a copy of the task with id
func (s *MemoryStore) GetTask(_ context.Context, id string) (*models.Task, error) {
	if t := s.find(id); t != nil {
		return t.Clone(), nil
	}
	return nil, models.ErrTaskNotFound
}

// UpdateTaskStatus sets the status of an existing task
func (s *MemoryStore) UpdateTaskStatus(_ context.Context, id string, status models.TaskStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	t := s.find(id)
	if t == nil {
		return models.ErrTaskNotFound
	}
	t.Status = status
	return nil
}

// Add appends a copy of task
func (s *MemoryStore) Add(task *models.Task) {
	s.tasks = append(s.tasks, task.Clone())
}

func (s *MemoryStore) find(id string) *models.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

var _ TaskStore = (*MemoryStore)(nil)
