package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIState_ClampBoard(t *testing.T) {
	s := NewUIState(BoardScreen)
	s.SetSelectedColumn(5)
	s.SetSelectedCard(9)

	s.ClampBoard(3, func(col int) int { return []int{3, 2, 0}[col] })
	assert.Equal(t, 2, s.SelectedColumn())
	assert.Equal(t, 0, s.SelectedCard(), "empty column clamps the card cursor to 0")

	s.SetSelectedColumn(0)
	s.SetSelectedCard(7)
	s.ClampBoard(3, func(col int) int { return []int{3, 2, 0}[col] })
	assert.Equal(t, 2, s.SelectedCard())

	s.ClampBoard(0, nil)
	assert.Equal(t, 0, s.SelectedColumn())
}

func TestUIState_MoveCell(t *testing.T) {
	s := NewUIState(ScheduleScreen)

	s.MoveCell(-1, -1, 7, 10)
	assert.Equal(t, 0, s.SelectedDay())
	assert.Equal(t, 0, s.SelectedSlot())

	s.SetSelectedEvent(2)
	s.MoveCell(0, 0, 7, 10)
	assert.Equal(t, 2, s.SelectedEvent(), "staying in the cell keeps the event index")

	s.MoveCell(10, 20, 7, 10)
	assert.Equal(t, 6, s.SelectedDay())
	assert.Equal(t, 9, s.SelectedSlot())
	assert.Equal(t, 0, s.SelectedEvent())
}

func TestScreen_Next(t *testing.T) {
	assert.Equal(t, ScheduleScreen, BoardScreen.Next())
	assert.Equal(t, BoardScreen, ScheduleScreen.Next())
	assert.Equal(t, "Schedule", ScheduleScreen.String())
}

func TestMode_IsForm(t *testing.T) {
	assert.True(t, EventFormMode.IsForm())
	assert.False(t, DeleteCardConfirmMode.IsForm())
	assert.True(t, DeleteCardConfirmMode.IsConfirm())
	assert.False(t, AddCardMode.IsConfirm())
	assert.False(t, NormalMode.IsForm())
	assert.False(t, DraggingMode.IsForm())
	assert.False(t, EventDetailMode.IsForm())
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	_, ok := s.Latest()
	assert.False(t, ok)

	s.Add(LevelInfo, "one")
	s.Add(LevelError, "two")
	latest, ok := s.Latest()
	assert.True(t, ok)
	assert.Equal(t, "two", latest.Message)
	assert.Len(t, s.All(), 2)

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestFormState_Reset(t *testing.T) {
	s := NewFormState()
	s.EventTitle = "x"
	s.PendingCard = "3"
	s.Reset()
	assert.Empty(t, s.EventTitle)
	assert.Empty(t, s.PendingCard)
	assert.Nil(t, s.Form)
}
