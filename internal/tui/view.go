package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/weekboard/internal/tui/components"
	"github.com/thenoetrevino/weekboard/internal/tui/notifications"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

// View renders the current state of the application: the active screen as
// the base layer with at most one modal layer on top.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderBase()),
	}
	if modal := m.renderModalLayer(); modal != nil {
		layers = append(layers, modal)
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// renderBase stacks tabs, the active screen and the status bar
func (m Model) renderBase() string {
	var notification string
	if n, ok := m.NotificationState.Latest(); ok {
		notification = notifications.RenderInlineFromState(n)
	}

	tabs := components.RenderTabs(components.TabsProps{
		Tabs:         []string{state.BoardScreen.String(), state.ScheduleScreen.String()},
		Selected:     int(m.UiState.Screen()),
		Width:        m.UiState.Width(),
		Notification: notification,
	})

	var content, context string
	if m.UiState.Screen() == state.ScheduleScreen {
		content = m.renderSchedule()
		context = "Schedule · " + m.Filter.Label()
	} else {
		content = m.renderBoard()
		context = "Board"
	}

	status := components.RenderStatusBar(components.StatusBarProps{
		Width: m.UiState.Width(),
		Left:  context,
		Hint:  m.statusHint(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, tabs, content, status)
}

// statusHint describes an in-progress drag
func (m Model) statusHint() string {
	cardID, _, ok := m.Drag.Lifted()
	if !ok {
		return ""
	}
	card, _, found := m.App.Board.FindCard(cardID)
	if !found {
		return ""
	}
	hint := "moving \"" + card.Content + "\""
	if target, ok := m.Drag.Highlighted(); ok {
		if column, ok := m.App.Board.Column(target); ok {
			hint += " → " + column.Title
		}
	}
	return hint + "  (" + m.Config.KeyMappings.LiftCard + " drop, " + m.Config.KeyMappings.CancelDrag + " cancel)"
}
