package board

import (
	"fmt"

	"github.com/thenoetrevino/nexus/internal/models"
)

// Treatment is the visual category a priority badge is drawn with
type Treatment int

const (
	TreatmentCalm     Treatment = iota // low
	TreatmentAccent                    // medium
	TreatmentWarning                   // high
	TreatmentCritical                  // urgent
)

func (t Treatment) String() string {
	switch t {
	case TreatmentCalm:
		return "calm"
	case TreatmentAccent:
		return "accent"
	case TreatmentWarning:
		return "warning"
	case TreatmentCritical:
		return "critical"
	default:
		return fmt.Sprintf("Treatment(%d)", int(t))
	}
}

// TreatmentFor maps every priority to exactly one treatment. The priority set
// is closed, so an unknown value is a programming error and panics.
func TreatmentFor(p models.Priority) Treatment {
	switch p {
	case models.PriorityUrgent:
		return TreatmentCritical
	case models.PriorityHigh:
		return TreatmentWarning
	case models.PriorityMedium:
		return TreatmentAccent
	case models.PriorityLow:
		return TreatmentCalm
	}
	panic(fmt.Sprintf("board: no treatment for priority %q", string(p)))
}
