package models

import (
	"fmt"
	"strings"
)

// TaskStatus is the column a task lives in. The set is closed.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

// statusOrder is the left-to-right display order of the board
var statusOrder = []TaskStatus{
	StatusTodo,
	StatusInProgress,
	StatusReview,
	StatusDone,
}

var statusLabels = map[TaskStatus]string{
	StatusTodo:       "To Do",
	StatusInProgress: "In Progress",
	StatusReview:     "Review",
	StatusDone:       "Done",
}

// Statuses returns every status in display order.
// The returned slice is a copy and may be modified by the caller.
func Statuses() []TaskStatus {
	out := make([]TaskStatus, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// IsValid reports whether s is one of the four known statuses
func (s TaskStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human readable column title
func (s TaskStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s TaskStatus) String() string {
	return string(s)
}

// ParseStatus maps user input to a TaskStatus.
// Matching ignores case, spaces, dashes and underscores, so both "in-progress"
// and the column label "In Progress" resolve to StatusInProgress.
func ParseStatus(input string) (TaskStatus, error) {
	key := normalizeEnum(input)
	for _, s := range statusOrder {
		if key == normalizeEnum(string(s)) || key == normalizeEnum(s.Label()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, input)
}

// normalizeEnum lowercases and strips separators so loose spellings compare equal
func normalizeEnum(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
