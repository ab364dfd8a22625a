package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/nexus/internal/models"
)

func TestTreatmentFor_Exhaustive(t *testing.T) {
	want := map[models.Priority]Treatment{
		models.PriorityUrgent: TreatmentCritical,
		models.PriorityHigh:   TreatmentWarning,
		models.PriorityMedium: TreatmentAccent,
		models.PriorityLow:    TreatmentCalm,
	}

	seen := map[Treatment]bool{}
	for _, p := range models.Priorities() {
		got := TreatmentFor(p)
		assert.Equal(t, want[p], got, p)
		seen[got] = true
	}
	assert.Len(t, seen, 4, "each priority has its own treatment")
}

func TestTreatmentFor_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { TreatmentFor("critical") })
	assert.Panics(t, func() { TreatmentFor("") })
}

func TestTreatmentString(t *testing.T) {
	assert.Equal(t, "critical", TreatmentCritical.String())
	assert.Equal(t, "calm", TreatmentCalm.String())
	assert.Equal(t, "Treatment(7)", Treatment(7).String())
}
