package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/tui/components"
	"github.com/thenoetrevino/weekboard/internal/tui/huhforms"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

func (m Model) handleScheduleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.UiState.MoveCell(-1, 0, models.DaysInWeek, models.SlotCount)
	case key.Matches(msg, m.keys.Right):
		m.UiState.MoveCell(1, 0, models.DaysInWeek, models.SlotCount)
	case key.Matches(msg, m.keys.Up):
		m.UiState.MoveCell(0, -1, models.DaysInWeek, models.SlotCount)
	case key.Matches(msg, m.keys.Down):
		m.UiState.MoveCell(0, 1, models.DaysInWeek, models.SlotCount)
	case key.Matches(msg, m.keys.NextInCell):
		return m.handleNextInCell()
	case key.Matches(msg, m.keys.CycleFilter):
		return m.handleCycleFilter()
	case key.Matches(msg, m.keys.AddEvent):
		return m.handleAddEvent()
	case key.Matches(msg, m.keys.DeleteEvent):
		return m.handleDeleteEvent()
	case key.Matches(msg, m.keys.ViewEvent):
		return m.handleViewEvent()
	}
	return m, nil
}

// handleNextInCell focuses the next event of a crowded cell, wrapping around
func (m Model) handleNextInCell() (tea.Model, tea.Cmd) {
	n := len(m.cellEvents(m.UiState.SelectedDay(), m.currentSlot()))
	if n > 0 {
		m.UiState.SetSelectedEvent((m.UiState.SelectedEvent() + 1) % n)
	}
	return m, nil
}

func (m Model) handleCycleFilter() (tea.Model, tea.Cmd) {
	m.Filter = m.Filter.Next()
	m.UiState.SetSelectedEvent(0)
	m.NotificationState.Add(state.LevelInfo, "Filter: "+m.Filter.Label())
	return m, nil
}

// handleAddEvent opens the add-event modal keyed to the cell under the cursor
func (m Model) handleAddEvent() (tea.Model, tea.Cmd) {
	day, slot := m.UiState.SelectedDay(), m.currentSlot()
	if !m.Modal.Open(day, slot) {
		return m, nil
	}

	m.FormState.Reset()
	cell := models.DayName(day) + " " + slot.Label
	m.FormState.Form = huhforms.CreateEventForm(
		cell,
		&m.FormState.EventType,
		&m.FormState.EventTitle,
		&m.FormState.EventDescription,
		4,
	).WithTheme(huhforms.CreateWeekboardTheme(m.Config.ColorScheme, huhforms.DialogCreate))
	m.UiState.SetMode(state.EventFormMode)
	return m, m.FormState.Form.Init()
}

func (m Model) handleDeleteEvent() (tea.Model, tea.Cmd) {
	event, ok := m.currentEvent()
	if !ok {
		m.NotificationState.Add(state.LevelError, "No event selected to delete")
		return m, nil
	}
	m.FormState.Reset()
	m.FormState.PendingEventID = event.ID
	m.UiState.SetMode(state.DeleteEventConfirmMode)
	return m, nil
}

func (m Model) confirmDeleteEvent() {
	if !m.App.Schedule.DeleteEvent(m.ctx, m.FormState.PendingEventID) {
		m.NotificationState.Add(state.LevelError, "Event no longer exists")
	}
	m.clampSchedule()
}

// ============================================================================
// EVENT DETAIL
// ============================================================================

func (m Model) handleViewEvent() (tea.Model, tea.Cmd) {
	event, ok := m.currentEvent()
	if !ok {
		return m, nil
	}
	m.viewing = event
	m.resizeDetail()
	m.Detail.SetContent(components.RenderEventBody(event, m.Detail.Width()))
	m.Detail.GotoTop()
	m.UiState.SetMode(state.EventDetailMode)
	return m, nil
}

// handleDetailMode scrolls the description; delete and close leave the popup
func (m Model) handleDetailMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.DeleteEvent):
		m.FormState.Reset()
		m.FormState.PendingEventID = m.viewing.ID
		m.UiState.SetMode(state.DeleteEventConfirmMode)
		return m, nil
	case key.Matches(msg, m.keys.CancelDrag), key.Matches(msg, m.keys.ViewEvent), key.Matches(msg, m.keys.Quit):
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.Detail, cmd = m.Detail.Update(msg)
	return m, cmd
}

// resizeDetail fits the description viewport inside the popup, leaving room
// for the border, padding, header and footer
func (m *Model) resizeDetail() {
	width := components.EventDetailWidth(m.UiState.Width())
	m.Detail.SetWidth(max(width-6, 10))
	m.Detail.SetHeight(max(m.UiState.Height()-14, 3))
}
