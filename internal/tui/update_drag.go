package tui

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/nexus/internal/models"
)

// handlePickUp starts dragging the selected card. The card's own column is
// the first drop target.
func (m Model) handlePickUp() (tea.Model, tea.Cmd) {
	task := m.currentTask()
	if task == nil {
		m.notify(LevelInfo, "No task to pick up")
		return m, nil
	}

	payload, err := m.machine.BeginDrag(m.ctx, task.ID)
	if err != nil {
		m.logger.Error("failed to pick up task", "task_id", task.ID, "error", err)
		m.notify(LevelError, "Task no longer exists")
		m.reload()
		return m, nil
	}
	m.payload = payload
	m.dragOrigin = m.selectedColumn
	m.offBoard = 0
	m.mode = DragMode
	m.hoverSelected()
	return m, nil
}

func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notification = nil
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit) && msg.String() == "ctrl+c":
		m.machine.CancelDrag()
		return m, tea.Quit
	case key.Matches(msg, k.Cancel):
		return m.cancelDrag()
	case key.Matches(msg, k.Drop):
		return m.drop()
	case key.Matches(msg, k.PrevColumn):
		m.hover(-1)
	case key.Matches(msg, k.NextColumn):
		m.hover(1)
	}
	return m, nil
}

// hover moves the drop target one column left or right. Moving past the
// edge leaves the board and clears the target; moving back re-enters the
// edge column.
func (m *Model) hover(delta int) {
	if m.offBoard != 0 {
		if delta == m.offBoard {
			return
		}
		m.offBoard = 0
		m.hoverSelected()
		return
	}

	next := m.selectedColumn + delta
	if next < 0 || next >= len(m.views) {
		m.offBoard = delta
		m.machine.LeaveColumn()
		m.refreshDropTarget()
		m.notify(LevelInfo, "Outside the board")
		return
	}

	m.selectedColumn = next
	m.hoverSelected()
}

func (m *Model) hoverSelected() {
	if err := m.machine.HoverColumn(m.currentColumn().Status); err != nil {
		m.logger.Error("failed to hover column", "error", err)
	}
	m.refreshDropTarget()
}

func (m Model) drop() (tea.Model, tea.Cmd) {
	target, ok := m.machine.OverColumn()
	if !ok {
		// Released outside every column: the drag ends with nothing moved
		model, cmd := m.cancelDrag()
		mm := model.(Model)
		mm.notify(LevelInfo, "Dropped outside the board, nothing moved")
		return mm, cmd
	}

	payload := m.payload
	m.payload = payloadNone
	m.offBoard = 0
	m.mode = NormalMode

	result, err := m.machine.Drop(m.ctx, payload, target)
	if err != nil {
		m.logger.Error("failed to drop task", "task_id", payload.TaskID, "column", target, "error", err)
		if errors.Is(err, models.ErrInvalidStatus) {
			m.notify(LevelError, "Invalid column")
		} else {
			m.notify(LevelError, "Failed to move task")
		}
		m.reload()
		return m, nil
	}

	m.reload()
	if !result.Committed {
		m.notify(LevelInfo, "Task no longer exists")
		return m, nil
	}
	m.selectTask(result.TaskID)
	if result.From == result.To {
		m.notify(LevelInfo, fmt.Sprintf("Kept in %s", result.To.Label()))
	} else {
		m.notify(LevelInfo, fmt.Sprintf("Moved to %s", result.To.Label()))
	}
	return m, nil
}

func (m Model) cancelDrag() (tea.Model, tea.Cmd) {
	id := m.payload.TaskID
	m.machine.CancelDrag()
	m.payload = payloadNone
	m.offBoard = 0
	m.mode = NormalMode
	m.selectedColumn = m.dragOrigin
	m.refreshDropTarget()
	m.selectTask(id)
	m.notify(LevelInfo, "Move cancelled")
	return m, nil
}

// refreshDropTarget copies the machine's drop target into the snapshot
func (m *Model) refreshDropTarget() {
	for i := range m.views {
		m.views[i].Over = m.machine.IsOver(m.views[i].Status)
	}
}
