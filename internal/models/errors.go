package models

import "errors"

// Lookup and enumeration errors shared by stores, services and the board
var (
	// ErrTaskNotFound indicates that no task has the requested ID
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserNotFound indicates that no team member has the requested ID
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidStatus indicates a value outside todo/in-progress/review/done
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidPriority indicates a value outside low/medium/high/urgent
	ErrInvalidPriority = errors.New("invalid task priority")
)
