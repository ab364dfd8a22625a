package models

import "strings"

// DueDateLayout is the calendar format used for Task.DueDate
const DueDateLayout = "2006-01-02"

// Task represents a single card on the kanban board.
// JSON tags match the payload sent to the AI advisor.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	AssigneeID  string     `json:"assigneeId"` // weak reference to User.ID
	DueDate     string     `json:"dueDate"`
	Tags        []string   `json:"tags"`
}

// Clone returns a deep copy so callers cannot mutate shared tag slices
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.Tags != nil {
		c.Tags = make([]string, len(t.Tags))
		copy(c.Tags, t.Tags)
	}
	return &c
}

// GetID satisfies the quiet-mode output contract of the CLI
func (t *Task) GetID() string {
	return t.ID
}

// NormalizeTags trims tags, drops empties and removes duplicates while
// keeping the first occurrence order. Tags behave like a set.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
