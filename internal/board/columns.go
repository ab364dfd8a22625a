package board

import "github.com/thenoetrevino/nexus/internal/models"

// Column is the display metadata of one status column
type Column struct {
	Status models.TaskStatus
	Label  string
	Color  string // accent dot colour, hex
}

// columns is fixed left-to-right display order
var columns = []Column{
	{Status: models.StatusTodo, Label: models.StatusTodo.Label(), Color: "#94A3B8"},
	{Status: models.StatusInProgress, Label: models.StatusInProgress.Label(), Color: "#6366F1"},
	{Status: models.StatusReview, Label: models.StatusReview.Label(), Color: "#F59E0B"},
	{Status: models.StatusDone, Label: models.StatusDone.Label(), Color: "#10B981"},
}

// Columns returns the four columns in display order
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// ColumnAt returns the column at display index i, clamped to the valid range
func ColumnAt(i int) Column {
	if i < 0 {
		i = 0
	}
	if i >= len(columns) {
		i = len(columns) - 1
	}
	return columns[i]
}

// ColumnIndex returns the display index of status, or -1
func ColumnIndex(status models.TaskStatus) int {
	for i, c := range columns {
		if c.Status == status {
			return i
		}
	}
	return -1
}

// ColumnView is a column together with the tasks currently in it
type ColumnView struct {
	Column
	Tasks []*models.Task
	Over  bool // column is the current drop target
}

// Partition groups tasks by status into the four columns. Within a column the
// input order is kept; nothing is re-sorted.
func Partition(tasks []*models.Task) []ColumnView {
	views := make([]ColumnView, len(columns))
	for i, c := range columns {
		views[i] = ColumnView{Column: c, Tasks: []*models.Task{}}
	}
	for _, t := range tasks {
		if i := ColumnIndex(t.Status); i >= 0 {
			views[i].Tasks = append(views[i].Tasks, t)
		}
	}
	return views
}
