package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidDueDate  = errors.New("invalid due date: expected YYYY-MM-DD")
	ErrTooManyTags     = errors.New("task cannot have more than 20 tags")
	ErrUnknownAssignee = errors.New("assignee is not a team member")
)
