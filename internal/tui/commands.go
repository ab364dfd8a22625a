package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/nexus/internal/models"
)

// fetchInsights asks the advisor about tasks off the update loop
func fetchInsights(m Model, tasks []*models.Task) tea.Cmd {
	ctx, adv := m.ctx, m.advisor
	return func() tea.Msg {
		return insightsMsg{Insights: adv.ProjectInsights(ctx, tasks)}
	}
}

// draftDescription asks the advisor for a description of the pending task
func draftDescription(m Model, values taskFormValues) tea.Cmd {
	ctx, adv := m.ctx, m.advisor
	return func() tea.Msg {
		return descriptionMsg{Values: values, Description: adv.GenerateTaskDescription(ctx, values.Title)}
	}
}
