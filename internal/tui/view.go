package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/nexus/internal/board"
	"github.com/thenoetrevino/nexus/internal/models"
)

// View implements tea.Model
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(m.viewBoard())}
	if modal := m.viewModal(); modal != "" {
		layers = append(layers, centeredLayer(modal, m.width, m.height))
	}
	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// centeredLayer positions content in the middle of the screen
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

func (m Model) viewModal() string {
	switch m.mode {
	case FormMode:
		if m.form == nil {
			return ""
		}
		return m.theme.modal.Render(m.form.View())
	case DeleteConfirmMode:
		return m.viewDeleteConfirm()
	case InsightsMode:
		return m.viewInsights()
	case HelpMode:
		return m.viewHelp()
	}
	return ""
}

// ============================================================================
// BOARD
// ============================================================================

func (m Model) columnWidth() int {
	n := max(len(m.views), 1)
	return max((m.width-columnGap*(n-1))/n, minColumnWidth)
}

func (m Model) viewBoard() string {
	width := m.columnWidth()
	height := max(m.height-statusBarHeight, 3)

	rendered := make([]string, 0, len(m.views)*2)
	for i, v := range m.views {
		if i > 0 {
			rendered = append(rendered, strings.Repeat(" ", columnGap))
		}
		rendered = append(rendered, m.viewColumn(i, v, width, height))
	}

	boardView := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.JoinVertical(lipgloss.Left, boardView, m.viewStatusBar())
}

func (m Model) viewColumn(index int, v board.ColumnView, width, height int) string {
	style := m.theme.column
	if v.Over {
		style = m.theme.dropTarget
	}
	// Border and padding take four cells
	inner := width - 4

	header := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Color)).Render("●") + " " +
		m.theme.title.Render(v.Label) + " " +
		m.theme.subtle.Render(fmt.Sprintf("(%d)", len(v.Tasks)))

	parts := []string{header, ""}
	if len(v.Tasks) == 0 {
		parts = append(parts, m.theme.subtle.Render("No tasks"))
	}
	for ti, t := range v.Tasks {
		selected := index == m.selectedColumn && ti == m.selectedTask && m.mode != DragMode
		parts = append(parts, m.viewCard(t, inner, selected))
	}
	if index == m.selectedColumn && m.mode == NormalMode {
		parts = append(parts, m.theme.subtle.Render("+ "+m.keys.AddTask.Help().Key+" add task"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return style.Width(width).Height(height - 2).MaxHeight(height).Render(content)
}

func (m Model) viewCard(t *models.Task, width int, selected bool) string {
	style := m.theme.card
	switch {
	case m.machine.IsDragged(t.ID):
		style = m.theme.dragged
	case selected:
		style = m.theme.selected
	}
	text := max(width-4, 8)

	lines := []string{
		m.theme.priorityBadge(t.Priority),
		m.theme.title.Render(wordwrap.String(t.Title, text)),
	}
	if len(t.Tags) > 0 {
		lines = append(lines, m.theme.subtle.Render(wordwrap.String(formatTags(t.Tags), text)))
	}

	var meta []string
	if u, ok := m.directory[t.AssigneeID]; ok {
		meta = append(meta, u.Name)
	}
	if t.DueDate != "" {
		meta = append(meta, "due "+t.DueDate)
	}
	if len(meta) > 0 {
		lines = append(lines, m.theme.subtle.Render(strings.Join(meta, " · ")))
	}

	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func formatTags(tags []string) string {
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chips[i] = "#" + tag
	}
	return strings.Join(chips, " ")
}

// ============================================================================
// STATUS BAR
// ============================================================================

func (m Model) viewStatusBar() string {
	badge := m.theme.modeBadge.Render(m.mode.String())

	bindings := m.keys.ShortHelp()
	if m.mode == DragMode {
		bindings = m.keys.dragHelp()
	}
	help := m.theme.statusBar.Render(renderBindings(bindings))

	left := badge
	if m.notification != nil {
		style := m.theme.info
		if m.notification.Level == LevelError {
			style = m.theme.err
		}
		left += " " + style.Render(m.notification.Message)
	}

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(help), 1)
	return left + strings.Repeat(" ", gap) + help
}

func renderBindings(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// ============================================================================
// MODALS
// ============================================================================

func (m Model) viewDeleteConfirm() string {
	task := m.currentTask()
	if task == nil {
		return ""
	}
	body := m.theme.err.Render("Delete task?") + "\n\n" +
		wordwrap.String(task.Title, modalWidth-6) + "\n\n" +
		m.theme.subtle.Render("y to confirm, any other key to cancel")
	return m.theme.modal.Render(body)
}

func (m Model) viewInsights() string {
	width := modalWidth - 6
	var b strings.Builder
	b.WriteString(m.theme.title.Render("AI Insights") + "\n\n")

	switch {
	case m.insightsLoading:
		b.WriteString(m.theme.subtle.Render("Analyzing the board..."))
	case m.insights == nil:
		msg := "The advisor could not produce insights."
		if !m.advisor.Available() {
			msg += " Set GEMINI_API_KEY to enable it."
		}
		b.WriteString(m.theme.err.Render(wordwrap.String(msg, width)))
	default:
		in := m.insights
		b.WriteString(fmt.Sprintf("Health score: %s\n\n", m.theme.title.Render(fmt.Sprintf("%.0f/100", in.HealthScore))))
		if in.Summary != "" {
			b.WriteString(wordwrap.String(in.Summary, width) + "\n")
		}
		writeList := func(heading string, items []string) {
			if len(items) == 0 {
				return
			}
			b.WriteString("\n" + m.theme.title.Render(heading) + "\n")
			for _, item := range items {
				b.WriteString(wordwrap.String("• "+item, width) + "\n")
			}
		}
		writeList("Risks", in.Risks)
		writeList("Recommendations", in.Recommendations)
	}

	b.WriteString("\n" + m.theme.subtle.Render(m.keys.Cancel.Help().Key+" to close"))
	return m.theme.modal.Render(b.String())
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.theme.title.Render("Keyboard shortcuts") + "\n")
	for _, group := range m.keys.FullHelp() {
		b.WriteString("\n")
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
		}
	}
	return m.theme.modal.Render(strings.TrimRight(b.String(), "\n"))
}
