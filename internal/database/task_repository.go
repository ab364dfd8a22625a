package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/nexus/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = `id, title, description, status, priority, assignee_id, due_date`

// ============================================================================
// Reads
// ============================================================================

// GetAll returns every task in insertion order
func (r *TaskRepo) GetAll(ctx context.Context) ([]*models.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY position`)
}

// GetByStatus returns the tasks of one column in insertion order
func (r *TaskRepo) GetByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE status = ? ORDER BY position`, string(status))
}

// GetByID returns models.ErrTaskNotFound when no row matches
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	tasks, err := r.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, models.ErrTaskNotFound
	}
	return tasks[0], nil
}

// Count returns the number of tasks per status
func (r *TaskRepo) Count(ctx context.Context) (map[models.TaskStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.TaskStatus]int, 4)
	for _, s := range models.Statuses() {
		counts[s] = 0
	}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[models.TaskStatus(status)] = n
	}
	return counts, rows.Err()
}

func (r *TaskRepo) query(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		var (
			task             models.Task
			status, priority string
		)
		if err := rows.Scan(
			&task.ID, &task.Title, &task.Description, &status, &priority,
			&task.AssigneeID, &task.DueDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		task.Status = models.TaskStatus(status)
		task.Priority = models.Priority(priority)
		task.Tags = []string{}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := r.attachTags(ctx, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// attachTags loads tags for tasks with one query
func (r *TaskRepo) attachTags(ctx context.Context, tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	byID := make(map[string]*models.Task, len(tasks))
	args := make([]any, 0, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
		args = append(args, t.ID)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(tasks)), ",")

	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, tag FROM task_tags
		 WHERE task_id IN (`+placeholders+`)
		 ORDER BY task_id, position`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, tag string
		if err := rows.Scan(&taskID, &tag); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		if t, ok := byID[taskID]; ok {
			t.Tags = append(t.Tags, tag)
		}
	}
	return rows.Err()
}

// ============================================================================
// Writes
// ============================================================================

// Create inserts task at the end of the board. The caller supplies the ID.
func (r *TaskRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task == nil || task.ID == "" {
		return nil, errors.New("task id is required")
	}
	tags := models.NormalizeTags(task.Tags)

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		pos, err := nextPosition(ctx, tx, "tasks")
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (`+taskColumns+`, position)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			task.ID, task.Title, task.Description, string(task.Status), string(task.Priority),
			task.AssigneeID, task.DueDate, pos,
		); err != nil {
			return fmt.Errorf("failed to insert task: %w", err)
		}

		for i, tag := range tags {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO task_tags (task_id, tag, position) VALUES (?, ?, ?)`,
				task.ID, tag, i,
			); err != nil {
				return fmt.Errorf("failed to insert tag %q: %w", tag, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, task.ID)
}

// UpdateStatus moves a task to another column. Writing the current status is
// accepted and only touches updated_at.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return requireAffected(result, models.ErrTaskNotFound)
}

// Delete removes a task and its tags
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireAffected(result, models.ErrTaskNotFound)
}
