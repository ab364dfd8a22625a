package models

import "fmt"

// Priority is the urgency of a task. The set is closed.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultPriority is applied to new tasks created without an explicit priority
const DefaultPriority = PriorityMedium

var priorityOrder = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
	PriorityUrgent,
}

// Priorities returns every priority from least to most urgent
func Priorities() []Priority {
	out := make([]Priority, len(priorityOrder))
	copy(out, priorityOrder)
	return out
}

// IsValid reports whether p is one of the four known priorities
func (p Priority) IsValid() bool {
	for _, known := range priorityOrder {
		if p == known {
			return true
		}
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// ParsePriority maps user input to a Priority, ignoring case and surrounding space
func ParsePriority(input string) (Priority, error) {
	key := normalizeEnum(input)
	for _, p := range priorityOrder {
		if key == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, input)
}
