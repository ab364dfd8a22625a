package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/nexus/internal/models"
	taskservice "github.com/thenoetrevino/nexus/internal/services/task"
	"github.com/thenoetrevino/nexus/internal/tui/huhforms"
)

const formDescriptionLines = 6

// handleAddTask asks the board machine for a new task in the selected column.
// The machine's add-task handler records the column and the form opens here.
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	if err := m.machine.AddTask(m.currentColumn().Status); err != nil {
		m.logger.Error("failed to start new task", "error", err)
		m.notify(LevelError, "Cannot add a task here")
		return m, nil
	}
	if !m.add.pending {
		return m, nil
	}
	column := m.add.column
	m.add.pending = false

	*m.formValues = taskFormValues{Column: column, Priority: models.DefaultPriority}
	v := m.formValues
	m.form = huhforms.CreateTaskForm(column.Label(), huhforms.TaskFormFields{
		Title:       &v.Title,
		Description: &v.Description,
		Priority:    &v.Priority,
		Generate:    &v.Generate,
		Confirm:     &v.Confirm,
	}, m.advisor.Available(), formDescriptionLines).
		WithTheme(huhforms.CreateNexusTheme(m.theme.scheme)).
		WithWidth(modalWidth - 4)

	m.mode = FormMode
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, m.keys.Cancel) {
		m.closeForm()
		m.notify(LevelInfo, "New task discarded")
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.submitForm()
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	values := *m.formValues
	m.closeForm()

	if !values.Confirm {
		m.notify(LevelInfo, "New task discarded")
		return m, nil
	}
	if values.Generate && strings.TrimSpace(values.Description) == "" {
		m.notify(LevelInfo, "Drafting description...")
		return m, draftDescription(m, values)
	}
	return m.createTask(values, values.Description)
}

// createTask stores the task built from the form
func (m Model) createTask(values taskFormValues, description string) (tea.Model, tea.Cmd) {
	task, err := m.tasks.CreateTask(m.ctx, taskservice.CreateTaskRequest{
		Title:       values.Title,
		Description: description,
		Status:      values.Column,
		Priority:    values.Priority,
	})
	if err != nil {
		m.logger.Error("failed to create task", "error", err)
		m.notify(LevelError, "Failed to create task: "+err.Error())
		return m, nil
	}

	m.reload()
	m.selectTask(task.ID)
	m.notify(LevelInfo, fmt.Sprintf("Created '%s' in %s", task.Title, task.Status.Label()))
	return m, nil
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = NormalMode
}
