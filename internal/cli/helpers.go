package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/nexus/internal/models"
	taskservice "github.com/thenoetrevino/nexus/internal/services/task"
)

// ParseStatusFlag parses a --status value, attaching a suggestion on failure
func ParseStatusFlag(input string) (models.TaskStatus, error) {
	status, err := models.ParseStatus(input)
	if err != nil {
		return "", &SuggestionError{Err: err, Suggestion: suggestFrom(input, statusNames())}
	}
	return status, nil
}

// ParsePriorityFlag parses a --priority value, attaching a suggestion on failure
func ParsePriorityFlag(input string) (models.Priority, error) {
	priority, err := models.ParsePriority(input)
	if err != nil {
		return "", &SuggestionError{Err: err, Suggestion: suggestFrom(input, priorityNames())}
	}
	return priority, nil
}

// SuggestionError is a validation error that knows how to fix itself
type SuggestionError struct {
	Err        error
	Suggestion string
}

func (e *SuggestionError) Error() string { return e.Err.Error() }

func (e *SuggestionError) Unwrap() error { return e.Err }

// HandleServiceError reports err with the error code and exit code matching
// its kind
func HandleServiceError(f *OutputFormatter, err error) error {
	var sugg *SuggestionError
	suggestion := ""
	if errors.As(err, &sugg) {
		suggestion = sugg.Suggestion
	}

	switch {
	case errors.Is(err, models.ErrTaskNotFound):
		return f.Fail(ExitNotFound, "TASK_NOT_FOUND", err, "Run 'nexus task list' to see task IDs")
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, taskservice.ErrUnknownAssignee):
		return f.Fail(ExitNotFound, "USER_NOT_FOUND", err, "Run 'nexus team list' to see member IDs")
	case errors.Is(err, models.ErrInvalidStatus):
		if suggestion == "" {
			suggestion = "Valid statuses: " + strings.Join(statusNames(), ", ")
		}
		return f.Fail(ExitValidation, "INVALID_STATUS", err, suggestion)
	case errors.Is(err, models.ErrInvalidPriority):
		if suggestion == "" {
			suggestion = "Valid priorities: " + strings.Join(priorityNames(), ", ")
		}
		return f.Fail(ExitValidation, "INVALID_PRIORITY", err, suggestion)
	case errors.Is(err, taskservice.ErrInvalidDueDate):
		return f.Fail(ExitValidation, "INVALID_DUE_DATE", err, "Use the YYYY-MM-DD format, e.g. 2024-05-20")
	case errors.Is(err, taskservice.ErrEmptyTitle),
		errors.Is(err, taskservice.ErrTitleTooLong),
		errors.Is(err, taskservice.ErrTooManyTags),
		errors.Is(err, taskservice.ErrInvalidTaskID):
		return f.Fail(ExitValidation, "VALIDATION_ERROR", err, suggestion)
	default:
		return f.Fail(ExitError, "INTERNAL_ERROR", err, suggestion)
	}
}

// RequireFlag reports a missing required string flag
func RequireFlag(f *OutputFormatter, name, value string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return f.Fail(ExitUsage, "MISSING_FLAG", fmt.Errorf("--%s is required", name), "")
}

func statusNames() []string {
	names := make([]string, 0, len(models.Statuses()))
	for _, s := range models.Statuses() {
		names = append(names, string(s))
	}
	return names
}

func priorityNames() []string {
	names := make([]string, 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		names = append(names, string(p))
	}
	return names
}
