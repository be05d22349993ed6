package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/weekboard/internal/models"
)

func TestModal_SubmitClosesOnSuccess(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)
	m := NewModal(s)

	require.True(t, m.Open(2, slot(t, 3)))
	day, sl, ok := m.Target()
	require.True(t, ok)
	assert.Equal(t, 2, day)
	assert.Equal(t, slot(t, 3), sl)

	_, added := m.Submit(ctx, "L9: Thesis", "", models.EventTypeCourse)
	assert.True(t, added)
	assert.False(t, m.IsOpen())
	assert.Len(t, s.EventsAt(2, slot(t, 3)), 1)
}

func TestModal_BlankTitleStaysOpen(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)
	m := NewModal(s)

	m.Open(0, slot(t, 0))
	_, added := m.Submit(ctx, "   ", "desc", models.EventTypeEvent)

	assert.False(t, added)
	assert.True(t, m.IsOpen())
	assert.Empty(t, s.Events())
}

func TestModal_SingleOpen(t *testing.T) {
	m := NewModal(NewStore(nil))

	assert.True(t, m.Open(0, slot(t, 0)))
	assert.False(t, m.Open(1, slot(t, 1)))

	day, _, _ := m.Target()
	assert.Equal(t, 0, day)
}

func TestModal_CancelAndInvalidOpen(t *testing.T) {
	ctx := context.Background()
	s := NewStore(nil)
	m := NewModal(s)

	assert.False(t, m.Open(7, slot(t, 0)))
	assert.False(t, m.Open(0, models.TimeSlot{StartTime: "07:00", EndTime: "08:00"}))

	m.Open(0, slot(t, 0))
	m.Close()
	assert.False(t, m.IsOpen())
	_, _, ok := m.Target()
	assert.False(t, ok)

	_, added := m.Submit(ctx, "Math", "", models.EventTypeCourse)
	assert.False(t, added, "a closed modal cannot submit")
	assert.Empty(t, s.Events())
}
