package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/weekboard/internal/app"
	"github.com/thenoetrevino/weekboard/internal/events"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

func TestView_LoadingBeforeResize(t *testing.T) {
	a, err := app.New(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	m := New(context.Background(), a, nil, state.BoardScreen)
	view := m.View()

	assert.Equal(t, "Loading...", view.Content)
	assert.True(t, view.AltScreen)
}

func TestView_GeneratesContent(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)
	assert.NotEmpty(t, m.View().Content)

	m = press(t, m, "tab")
	assert.NotEmpty(t, m.View().Content)
}

func TestRenderBase_Board(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	base := plain(m.renderBase())

	for _, want := range []string{"To Do (3)", "Doing (2)", "Done (2)", "weekboard · Board"} {
		assert.Contains(t, base, want)
	}
}

func TestRenderBase_Schedule(t *testing.T) {
	m := newTestModel(t, state.ScheduleScreen)

	base := plain(m.renderBase())

	for _, want := range []string{"Mon", "Sun", "8:40 - 9:30", "18:35 - 19:25", "Schedule · All"} {
		assert.Contains(t, base, want)
	}
}

func TestRenderBase_EmptyBoard(t *testing.T) {
	a, err := app.New(context.Background(), app.WithBoardSeed([]models.Column{}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	m := update(t, New(context.Background(), a, nil, state.BoardScreen), tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Contains(t, plain(m.renderBase()), "No columns yet")
	m = press(t, m, "a")
	assert.Equal(t, state.NormalMode, m.UiState.Mode(), "cards need a column")
}

func TestStatusHint_WhileDragging(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)
	assert.Empty(t, m.statusHint())

	m = press(t, m, "space", "l")

	hint := m.statusHint()
	assert.Contains(t, hint, "Design the interface")
	assert.Contains(t, hint, "Doing")
}

func TestHelpMode(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	m = press(t, m, "?")
	require.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.NotNil(t, m.renderModalLayer())

	m = press(t, m, "x")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, state.BoardScreen)

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(keyPress("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestNotificationClearedOnNextKey(t *testing.T) {
	m := newTestModel(t, state.ScheduleScreen)

	m = press(t, m, "d")
	require.True(t, m.NotificationState.HasAny())

	m = press(t, m, "j")
	assert.False(t, m.NotificationState.HasAny())
}

func TestActionMessage(t *testing.T) {
	assert.Equal(t, "Event added", actionMessage(events.ActionEventAdded))
	assert.Equal(t, "Column renamed", actionMessage(events.ActionColumnRenamed))
	assert.Empty(t, actionMessage(events.ActionEventsLoaded))
}

func TestWaitForEvent(t *testing.T) {
	ch := make(chan events.Event, 1)
	ch <- events.Event{Type: events.EventScheduleChanged, Action: events.ActionEventDeleted}

	msg := waitForEvent(ch)()

	changed, ok := msg.(StoreChangedMsg)
	require.True(t, ok)
	assert.Equal(t, events.ActionEventDeleted, changed.Event.Action)

	close(ch)
	assert.Nil(t, waitForEvent(ch)())
}
