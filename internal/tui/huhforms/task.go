// Package huhforms builds the huh forms used by the board
package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/nexus/internal/models"
)

// TaskFormFields are the values edited by the new task form
type TaskFormFields struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	Generate    *bool // draft the description with the advisor
	Confirm     *bool
}

// CreateTaskForm creates the new task form for a column. The generate toggle
// is only offered when the advisor can answer.
func CreateTaskForm(column string, fields TaskFormFields, canGenerate bool, descriptionLines int) *huh.Form {
	var inputs []huh.Field

	inputs = append(inputs,
		huh.NewInput().
			Key("title").
			Title("Title").
			Description("New task in "+column).
			Placeholder("Enter task title...").
			CharLimit(255).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("title is required")
				}
				return nil
			}).
			Value(fields.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown supported...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(fields.Description),

		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions()...).
			Value(fields.Priority),
	)

	if canGenerate {
		inputs = append(inputs,
			huh.NewConfirm().
				Key("generate").
				Title("Draft the description with AI?").
				Description("Only used when the description is empty").
				Affirmative("Yes").
				Negative("No").
				Value(fields.Generate),
		)
	}

	inputs = append(inputs,
		huh.NewConfirm().
			Key("confirm").
			Title("Create this task?").
			Affirmative("Yes").
			Negative("No").
			Value(fields.Confirm),
	)

	form := huh.NewForm(huh.NewGroup(inputs...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

func priorityOptions() []huh.Option[models.Priority] {
	priorities := models.Priorities()
	options := make([]huh.Option[models.Priority], len(priorities))
	for i, p := range priorities {
		options[i] = huh.NewOption(strings.ToUpper(p.String()), p)
	}
	return options
}
