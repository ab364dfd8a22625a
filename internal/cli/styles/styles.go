package styles

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/nexus/internal/board"
	"github.com/thenoetrevino/nexus/internal/config/colors"
	"github.com/thenoetrevino/nexus/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Board column box used by `nexus board`
	ColumnStyle lipgloss.Style
	ColumnWidth = 30

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Priority:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "Risks"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	scheme colors.ColorScheme
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(c colors.ColorScheme) {
	c.ApplyDefaults()
	scheme = c

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.ColumnBorder)).
		Padding(0, 1).
		Width(ColumnWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.ErrorFg))
}

// TreatmentColor returns the hex color of a priority treatment in c
func TreatmentColor(c colors.ColorScheme, t board.Treatment) string {
	switch t {
	case board.TreatmentCritical:
		return c.PriorityCritical
	case board.TreatmentWarning:
		return c.PriorityWarning
	case board.TreatmentAccent:
		return c.PriorityAccent
	default:
		return c.PriorityCalm
	}
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderPriority renders a priority badge in its treatment color.
// Urgent badges are bold.
func RenderPriority(p models.Priority) string {
	t := board.TreatmentFor(p)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(TreatmentColor(scheme, t)))
	if t == board.TreatmentCritical {
		style = style.Bold(true)
	}
	return style.Render(strings.ToUpper(string(p)))
}

// RenderTags renders tags as "#tag" chips
func RenderTags(tags []string) string {
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chips[i] = "#" + tag
	}
	return SubtitleStyle.Render(strings.Join(chips, " "))
}

// RenderColumnHeader renders a column label with its colored dot and count
func RenderColumnHeader(col board.Column, count int) string {
	dot := ColoredText("●", col.Color)
	return dot + " " + TitleStyle.Render(col.Label) + " " + SubtitleStyle.Render("("+strconv.Itoa(count)+")")
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
