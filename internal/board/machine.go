// Package board implements the drag-and-drop status transition protocol of
// the kanban board.
//
// A Machine holds the only mutable state of the board: which task is being
// dragged and which column the pointer is over. Canonical task data lives in
// a TaskStore; the Machine only reads from it and issues status updates to it
// when a drag ends with a drop.
//
// A Machine is not safe for concurrent use. Gestures are expected to arrive
// one at a time from a single event loop.
package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/thenoetrevino/nexus/internal/models"
)

// ErrNoActiveDrag is returned by operations that need a drag in progress
var ErrNoActiveDrag = errors.New("no drag in progress")

// TaskStore is the canonical, externally owned task collection.
type TaskStore interface {
	// Tasks returns every task in insertion order
	Tasks(ctx context.Context) ([]*models.Task, error)

	// GetTask returns models.ErrTaskNotFound when id does not resolve
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// UpdateTaskStatus applies the change unconditionally; there are no
	// transition rules, and setting the current status is a legal no-op
	UpdateTaskStatus(ctx context.Context, id string, status models.TaskStatus) error
}

// Phase is the state tag of a drag session
type Phase int

const (
	// PhaseIdle means no drag is in progress
	PhaseIdle Phase = iota
	// PhaseDragging means a task was picked up but no column is targeted
	PhaseDragging
	// PhaseDraggingOver means a task is held over a candidate column
	PhaseDraggingOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseDraggingOver:
		return "dragging-over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Payload is the identity carried by a drag gesture from the source card to
// the drop target. On drop it is authoritative over the Machine's own record.
type Payload struct {
	TaskID string
}

// DropResult describes what a drop did
type DropResult struct {
	TaskID    string
	From      models.TaskStatus
	To        models.TaskStatus
	Committed bool // false when the payload did not resolve to a task
}

// Option configures a Machine
type Option func(*Machine)

// WithAddTaskHandler registers the callback fired by AddTask
func WithAddTaskHandler(fn func(models.TaskStatus)) Option {
	return func(m *Machine) {
		m.onAddTask = fn
	}
}

// Machine is the board state machine
type Machine struct {
	store TaskStore

	draggedTaskID string
	overColumn    models.TaskStatus

	onAddTask func(models.TaskStatus)
}

// NewMachine creates an idle Machine over store
func NewMachine(store TaskStore, opts ...Option) *Machine {
	m := &Machine{store: store}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Phase returns the current state tag
func (m *Machine) Phase() Phase {
	switch {
	case m.draggedTaskID == "":
		return PhaseIdle
	case m.overColumn == "":
		return PhaseDragging
	default:
		return PhaseDraggingOver
	}
}

// DraggedTaskID returns the task being dragged, if any
func (m *Machine) DraggedTaskID() (string, bool) {
	return m.draggedTaskID, m.draggedTaskID != ""
}

// OverColumn returns the column currently targeted, if any
func (m *Machine) OverColumn() (models.TaskStatus, bool) {
	return m.overColumn, m.overColumn != ""
}

// IsDragged reports whether taskID is the card currently picked up.
// The presentation layer dims that card for the duration of the drag.
func (m *Machine) IsDragged(taskID string) bool {
	return taskID != "" && m.draggedTaskID == taskID
}

// IsOver reports whether column is the current drop target
func (m *Machine) IsOver(column models.TaskStatus) bool {
	return m.overColumn != "" && m.overColumn == column
}

// BeginDrag picks up taskID. A drag already in progress is replaced.
// The session is left untouched when taskID does not resolve.
func (m *Machine) BeginDrag(ctx context.Context, taskID string) (Payload, error) {
	if taskID == "" {
		return Payload{}, models.ErrTaskNotFound
	}
	if _, err := m.store.GetTask(ctx, taskID); err != nil {
		return Payload{}, fmt.Errorf("begin drag %q: %w", taskID, err)
	}

	m.draggedTaskID = taskID
	m.overColumn = ""
	return Payload{TaskID: taskID}, nil
}

// HoverColumn records column as the drop target. Repeating the same column is
// a no-op.
func (m *Machine) HoverColumn(column models.TaskStatus) error {
	if m.draggedTaskID == "" {
		return ErrNoActiveDrag
	}
	if !column.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, column)
	}
	m.overColumn = column
	return nil
}

// LeaveColumn clears the drop target without ending the drag
func (m *Machine) LeaveColumn() {
	m.overColumn = ""
}

// Drop ends the drag over column. When the payload resolves to a task, its
// status is set to column even if it already has that status. A payload that
// is empty or unknown is ignored without error. The session is always reset
// to idle, including when an error is returned.
func (m *Machine) Drop(ctx context.Context, payload Payload, column models.TaskStatus) (DropResult, error) {
	active := m.draggedTaskID != ""
	m.reset()

	if !active {
		return DropResult{}, ErrNoActiveDrag
	}
	if !column.IsValid() {
		return DropResult{}, fmt.Errorf("%w: %q", models.ErrInvalidStatus, column)
	}

	result := DropResult{TaskID: payload.TaskID, To: column}
	if payload.TaskID == "" {
		return result, nil
	}

	task, err := m.store.GetTask(ctx, payload.TaskID)
	if errors.Is(err, models.ErrTaskNotFound) {
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("resolve dropped task %q: %w", payload.TaskID, err)
	}
	result.From = task.Status

	if err := m.store.UpdateTaskStatus(ctx, task.ID, column); err != nil {
		return result, fmt.Errorf("move task %q to %s: %w", task.ID, column, err)
	}
	result.Committed = true
	return result, nil
}

// CancelDrag abandons the drag without touching the store
func (m *Machine) CancelDrag() {
	m.reset()
}

// AddTask signals that the user wants a new task seeded with column's status.
// The Machine does not build the task itself.
func (m *Machine) AddTask(column models.TaskStatus) error {
	if !column.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidStatus, column)
	}
	if m.onAddTask != nil {
		m.onAddTask(column)
	}
	return nil
}

// Board loads the store and groups it into columns, marking the drop target
func (m *Machine) Board(ctx context.Context) ([]ColumnView, error) {
	tasks, err := m.store.Tasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	views := Partition(tasks)
	for i := range views {
		views[i].Over = m.IsOver(views[i].Status)
	}
	return views, nil
}

func (m *Machine) reset() {
	m.draggedTaskID = ""
	m.overColumn = ""
}
