package tui

import (
	"github.com/thenoetrevino/nexus/internal/advisor"
)

// insightsMsg carries the advisor's answer. Insights is nil when the advisor
// failed.
type insightsMsg struct {
	Insights *advisor.Insights
}

// descriptionMsg carries a drafted description for the pending task form
type descriptionMsg struct {
	Values      taskFormValues
	Description string
}
