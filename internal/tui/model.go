package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/weekboard/internal/app"
	"github.com/thenoetrevino/weekboard/internal/board"
	"github.com/thenoetrevino/weekboard/internal/config"
	"github.com/thenoetrevino/weekboard/internal/events"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/schedule"
	"github.com/thenoetrevino/weekboard/internal/tui/components"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	// Gesture and dialog state machines from the stores
	Drag  *board.Drag
	Modal *schedule.Modal

	// Filter narrows the schedule grid by event type
	Filter schedule.Filter

	// Detail scrolls the description of the event being viewed
	Detail  viewport.Model
	Help    help.Model
	keys    keyMap
	viewing models.Event

	events chan events.Event
}

// New creates the TUI model on top of an initialized app.
// The screen selects which tab is shown first.
func New(ctx context.Context, a *app.App, cfg *config.Config, screen state.Screen) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	return Model{
		ctx:               ctx,
		App:               a,
		Config:            cfg,
		UiState:           state.NewUIState(screen),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		Drag:              board.NewDrag(a.Board),
		Modal:             schedule.NewModal(a.Schedule),
		Filter:            schedule.FilterAll,
		Detail:            viewport.New(),
		Help:              help.New(),
		keys:              newKeyMap(cfg.KeyMappings),
		events:            subscribe(a.Bus),
	}
}

// Init starts listening for store change events
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// ============================================================================
// BOARD ACCESSORS
// ============================================================================

// currentColumn returns the column under the cursor
func (m Model) currentColumn() (models.Column, bool) {
	columns := m.App.Board.Columns()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(columns) {
		return models.Column{}, false
	}
	return columns[idx], true
}

// currentCard returns the card under the cursor and the column holding it
func (m Model) currentCard() (models.Card, models.Column, bool) {
	column, ok := m.currentColumn()
	if !ok {
		return models.Card{}, models.Column{}, false
	}
	idx := m.UiState.SelectedCard()
	if idx < 0 || idx >= len(column.Cards) {
		return models.Card{}, column, false
	}
	return column.Cards[idx], column, true
}

// clampBoard keeps the board cursor inside the current columns and cards
func (m Model) clampBoard() {
	columns := m.App.Board.Columns()
	m.UiState.ClampBoard(len(columns), func(col int) int {
		return len(columns[col].Cards)
	})
}

// ============================================================================
// SCHEDULE ACCESSORS
// ============================================================================

// currentSlot returns the time slot under the grid cursor
func (m Model) currentSlot() models.TimeSlot {
	slot, _ := models.SlotAt(m.UiState.SelectedSlot())
	return slot
}

// cellEvents returns the events of a cell that pass the active filter
func (m Model) cellEvents(day int, slot models.TimeSlot) []models.Event {
	all := m.App.Schedule.EventsAt(day, slot)
	visible := make([]models.Event, 0, len(all))
	for _, e := range all {
		if m.Filter.Matches(e) {
			visible = append(visible, e)
		}
	}
	return visible
}

// currentEvent returns the focused event of the cell under the cursor
func (m Model) currentEvent() (models.Event, bool) {
	cell := m.cellEvents(m.UiState.SelectedDay(), m.currentSlot())
	idx := m.UiState.SelectedEvent()
	if idx < 0 || idx >= len(cell) {
		return models.Event{}, false
	}
	return cell[idx], true
}

// clampSchedule keeps the in-cell event index inside the visible events
func (m Model) clampSchedule() {
	n := len(m.cellEvents(m.UiState.SelectedDay(), m.currentSlot()))
	if m.UiState.SelectedEvent() >= n {
		m.UiState.SetSelectedEvent(max(n-1, 0))
	}
}
