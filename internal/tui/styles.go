package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/nexus/internal/board"
	"github.com/thenoetrevino/nexus/internal/cli/styles"
	"github.com/thenoetrevino/nexus/internal/config/colors"
	"github.com/thenoetrevino/nexus/internal/models"
)

// Layout constants
const (
	columnGap       = 1
	minColumnWidth  = 24
	statusBarHeight = 1
	modalWidth      = 64
)

// theme holds the styles derived from a color scheme
type theme struct {
	scheme colors.ColorScheme

	column     lipgloss.Style
	dropTarget lipgloss.Style
	card       lipgloss.Style
	selected   lipgloss.Style
	dragged    lipgloss.Style
	title      lipgloss.Style
	subtle     lipgloss.Style
	modal      lipgloss.Style
	info       lipgloss.Style
	err        lipgloss.Style
	statusBar  lipgloss.Style
	modeBadge  lipgloss.Style
}

func newTheme(c colors.ColorScheme) theme {
	c.ApplyDefaults()
	return theme{
		scheme: c,
		column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.ColumnBorder)).
			Padding(0, 1),
		dropTarget: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(c.DropTarget)).
			Padding(0, 1),
		card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(c.CardBorder)).
			Padding(0, 1),
		selected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(c.SelectedBorder)).
			Padding(0, 1),
		dragged: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(c.SelectedBorder)).
			Foreground(lipgloss.Color(c.DraggedCard)).
			Faint(true).
			Padding(0, 1),
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Title)),
		subtle: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Accent)).
			Padding(1, 2).
			Width(modalWidth),
		info:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.InfoFg)),
		err:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.ErrorFg)),
		statusBar: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Subtle)),
		modeBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(c.Accent)).
			Padding(0, 1),
	}
}

// priorityBadge renders the priority label in its treatment color. Urgent
// badges are bold and reversed.
func (t theme) priorityBadge(p models.Priority) string {
	treatment := board.TreatmentFor(p)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(treatmentColor(t, treatment)))
	switch treatment {
	case board.TreatmentCritical:
		style = style.Bold(true).Reverse(true).Padding(0, 1)
	case board.TreatmentWarning:
		style = style.Bold(true)
	}
	return style.Render(p.String())
}

func treatmentColor(t theme, treatment board.Treatment) string {
	return styles.TreatmentColor(t.scheme, treatment)
}
