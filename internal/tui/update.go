package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.form != nil {
			m.form = m.form.WithWidth(modalWidth - 4)
		}
		return m, nil

	case insightsMsg:
		m.insightsLoading = false
		m.insights = msg.Insights
		if msg.Insights == nil {
			m.notify(LevelError, "AI insights are unavailable")
		}
		return m, nil

	case descriptionMsg:
		return m.createTask(msg.Values, msg.Description)
	}

	// Forms need every message, not only key presses
	if m.mode == FormMode {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case DragMode:
		return m.handleDragMode(keyMsg)
	case DeleteConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	case InsightsMode, HelpMode:
		return m.handleOverlay(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notification = nil
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.mode = HelpMode
	case key.Matches(msg, k.PrevColumn):
		m.navigateColumn(-1)
	case key.Matches(msg, k.NextColumn):
		m.navigateColumn(1)
	case key.Matches(msg, k.PrevTask):
		m.navigateTask(-1)
	case key.Matches(msg, k.NextTask):
		m.navigateTask(1)
	case key.Matches(msg, k.PickUp):
		return m.handlePickUp()
	case key.Matches(msg, k.AddTask):
		return m.handleAddTask()
	case key.Matches(msg, k.DeleteTask):
		if task := m.currentTask(); task != nil {
			m.mode = DeleteConfirmMode
		} else {
			m.notify(LevelInfo, "No task to delete")
		}
	case key.Matches(msg, k.Insights):
		return m.handleShowInsights()
	case key.Matches(msg, k.Refresh):
		m.reload()
		m.notify(LevelInfo, "Board refreshed")
	}
	return m, nil
}

func (m *Model) navigateColumn(delta int) {
	next := m.selectedColumn + delta
	if next < 0 || next >= len(m.views) {
		if delta < 0 {
			m.notify(LevelInfo, "Already at the first column")
		} else {
			m.notify(LevelInfo, "Already at the last column")
		}
		return
	}
	m.selectedColumn = next
	m.selectedTask = 0
}

func (m *Model) navigateTask(delta int) {
	next := m.selectedTask + delta
	if next < 0 || next >= len(m.currentTasks()) {
		return
	}
	m.selectedTask = next
}

func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.mode = NormalMode
	task := m.currentTask()
	if task == nil || msg.String() != "y" {
		m.notify(LevelInfo, "Delete cancelled")
		return m, nil
	}

	if err := m.tasks.DeleteTask(m.ctx, task.ID); err != nil {
		m.logger.Error("failed to delete task", "task_id", task.ID, "error", err)
		m.notify(LevelError, "Failed to delete task")
		return m, nil
	}
	m.reload()
	m.notify(LevelInfo, fmt.Sprintf("Deleted '%s'", task.Title))
	return m, nil
}

func (m Model) handleOverlay(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel),
		key.Matches(msg, m.keys.Quit),
		m.mode == InsightsMode && key.Matches(msg, m.keys.Insights),
		m.mode == HelpMode && key.Matches(msg, m.keys.Help):
		m.mode = NormalMode
	}
	return m, nil
}

func (m Model) handleShowInsights() (tea.Model, tea.Cmd) {
	tasks, err := m.tasks.Tasks(m.ctx)
	if err != nil {
		m.logger.Error("failed to load tasks for insights", "error", err)
		m.notify(LevelError, "Failed to load tasks")
		return m, nil
	}

	m.mode = InsightsMode
	m.insights = nil
	m.insightsLoading = true
	return m, fetchInsights(m, tasks)
}
