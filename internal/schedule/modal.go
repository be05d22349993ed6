package schedule

import (
	"context"

	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// EventAdder is the single store operation the modal needs
type EventAdder interface {
	AddEvent(ctx context.Context, day int, slot models.TimeSlot, title, description string, eventType models.EventType) (types.EventID, bool)
}

// Modal is the add-event interaction: Idle -> Open(day, slot) -> Idle.
// Only one modal can be open; a rejected submit keeps it open.
type Modal struct {
	adder EventAdder
	open  bool
	day   int
	slot  models.TimeSlot
}

// NewModal creates a closed modal submitting into adder
func NewModal(adder EventAdder) *Modal {
	return &Modal{adder: adder}
}

// IsOpen reports whether the modal is showing
func (m *Modal) IsOpen() bool {
	return m.open
}

// Target returns the coordinate the open modal is keyed to
func (m *Modal) Target() (int, models.TimeSlot, bool) {
	if !m.open {
		return 0, models.TimeSlot{}, false
	}
	return m.day, m.slot, true
}

// Open keys the modal to (day, slot). It fails when a modal is already open
// or the coordinate is not on the grid.
func (m *Modal) Open(day int, slot models.TimeSlot) bool {
	if m.open || !models.ValidDay(day) || !models.IsCatalogSlot(slot) {
		return false
	}
	m.open = true
	m.day = day
	m.slot = slot
	return true
}

// Submit adds the event at the modal's coordinate. On success the modal
// closes; on a rejected submit (blank title) it stays open.
func (m *Modal) Submit(ctx context.Context, title, description string, eventType models.EventType) (types.EventID, bool) {
	if !m.open {
		return "", false
	}
	id, ok := m.adder.AddEvent(ctx, m.day, m.slot, title, description, eventType)
	if ok {
		m.Close()
	}
	return id, ok
}

// Close cancels the modal
func (m *Modal) Close() {
	m.open = false
	m.day = 0
	m.slot = models.TimeSlot{}
}
