package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/weekboard/internal/events"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

// eventBufferSize bounds how many change events may queue between renders
const eventBufferSize = 64

// StoreChangedMsg carries a store change event into the update loop
type StoreChangedMsg struct {
	Event events.Event
}

// subscribe attaches a buffered channel to the bus. The bus calls subscribers
// synchronously from inside Update, so the send never blocks: events beyond
// the buffer are dropped and the next render still reads the stores directly.
func subscribe(bus *events.Bus) chan events.Event {
	ch := make(chan events.Event, eventBufferSize)
	if bus == nil {
		return ch
	}
	bus.Subscribe(func(e events.Event) {
		select {
		case ch <- e:
		default:
			slog.Warn("dropping store change event", "action", e.Action, "seq", e.SequenceID)
		}
	})
	return ch
}

// waitForEvent blocks until the next store change event arrives
func waitForEvent(ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return StoreChangedMsg{Event: e}
	}
}

// handleStoreChanged keeps cursors valid after a mutation and reports it
func (m Model) handleStoreChanged(msg StoreChangedMsg) (tea.Model, tea.Cmd) {
	slog.Debug("store changed",
		"type", msg.Event.Type,
		"action", msg.Event.Action,
		"subject", msg.Event.SubjectID,
		"seq", msg.Event.SequenceID,
	)

	switch msg.Event.Type {
	case events.EventBoardChanged:
		m.clampBoard()
	case events.EventScheduleChanged:
		m.clampSchedule()
	}

	if text := actionMessage(msg.Event.Action); text != "" {
		m.NotificationState.Add(state.LevelInfo, text)
	}
	return m, waitForEvent(m.events)
}

func actionMessage(action events.Action) string {
	switch action {
	case events.ActionColumnAdded:
		return "Column created"
	case events.ActionColumnDeleted:
		return "Column deleted"
	case events.ActionColumnRenamed:
		return "Column renamed"
	case events.ActionCardAdded:
		return "Card added"
	case events.ActionCardDeleted:
		return "Card deleted"
	case events.ActionCardMoved:
		return "Card moved"
	case events.ActionEventAdded:
		return "Event added"
	case events.ActionEventDeleted:
		return "Event deleted"
	}
	return ""
}
