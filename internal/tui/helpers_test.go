package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/weekboard/internal/app"
	"github.com/thenoetrevino/weekboard/internal/config"
	"github.com/thenoetrevino/weekboard/internal/database"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

// newTestModel builds a sized model on the seed board and an empty schedule
func newTestModel(t *testing.T, screen state.Screen) Model {
	t.Helper()
	return newTestModelWithSlots(t, screen, database.NewMemorySlots())
}

// newTestModelWithSlots is newTestModel persisting the schedule into slots
func newTestModelWithSlots(t *testing.T, screen state.Screen, slots database.SlotStore) Model {
	t.Helper()

	a, err := app.New(context.Background(), app.WithSlotStore(slots))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	m := New(context.Background(), a, config.Default(), screen)
	return update(t, m, tea.WindowSizeMsg{Width: 160, Height: 48})
}

// update sends one message and returns the resulting Model
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update should return a tui.Model")
	return model
}

// press sends a sequence of key presses by their string names
func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyPress(k))
	}
	return m
}

func keyPress(k string) tea.KeyPressMsg {
	switch k {
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg(tea.Key{Text: k, Code: r})
}

// drainEvents empties the subscription channel and returns what was queued
func drainEvents(m Model) []StoreChangedMsg {
	var out []StoreChangedMsg
	for {
		select {
		case e := <-m.events:
			out = append(out, StoreChangedMsg{Event: e})
		default:
			return out
		}
	}
}

// plain strips styling so assertions see the rendered text
func plain(s string) string {
	return ansi.Strip(s)
}
