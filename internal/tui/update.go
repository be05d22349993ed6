package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.Help.SetWidth(msg.Width)
		m.resizeDetail()
		if m.UiState.Mode().IsForm() {
			return m.updateForm(msg)
		}
		return m, nil

	case StoreChangedMsg:
		return m.handleStoreChanged(msg)
	}

	// Forms need to receive ALL messages, not just key presses
	if m.UiState.Mode().IsForm() {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch mode := m.UiState.Mode(); {
	case mode.IsConfirm():
		return m.handleConfirm(keyMsg)
	case mode == state.HelpMode:
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	case mode == state.EventDetailMode:
		return m.handleDetailMode(keyMsg)
	case mode == state.DraggingMode:
		return m.handleDraggingMode(keyMsg)
	}

	return m.handleNormalMode(keyMsg)
}

// handleNormalMode dispatches keys shared by both screens, then defers to
// the screen under the cursor
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ShowHelp):
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case key.Matches(msg, m.keys.SwitchScreen):
		m.UiState.SetScreen(m.UiState.Screen().Next())
		return m, nil
	}

	if m.UiState.Screen() == state.ScheduleScreen {
		return m.handleScheduleKeys(msg)
	}
	return m.handleBoardKeys(msg)
}

// handleConfirm resolves a y/n delete confirmation
func (m Model) handleConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		switch m.UiState.Mode() {
		case state.DeleteColumnConfirmMode:
			m.confirmDeleteColumn()
		case state.DeleteCardConfirmMode:
			m.confirmDeleteCard()
		case state.DeleteEventConfirmMode:
			m.confirmDeleteEvent()
		}
	case key.Matches(msg, m.keys.Deny):
	default:
		return m, nil
	}

	m.FormState.Reset()
	m.UiState.SetMode(state.NormalMode)
	return m, nil
}
