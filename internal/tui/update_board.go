package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/weekboard/internal/tui/huhforms"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

func (m Model) handleBoardKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		return m.handleNavigateColumn(-1)
	case key.Matches(msg, m.keys.Right):
		return m.handleNavigateColumn(1)
	case key.Matches(msg, m.keys.Up):
		return m.handleNavigateCard(-1)
	case key.Matches(msg, m.keys.Down):
		return m.handleNavigateCard(1)
	case key.Matches(msg, m.keys.AddCard):
		return m.handleAddCard()
	case key.Matches(msg, m.keys.DeleteCard):
		return m.handleDeleteCard()
	case key.Matches(msg, m.keys.LiftCard):
		return m.handleLiftCard()
	case key.Matches(msg, m.keys.CreateColumn):
		return m.handleCreateColumn()
	case key.Matches(msg, m.keys.RenameColumn):
		return m.handleRenameColumn()
	case key.Matches(msg, m.keys.DeleteColumn):
		return m.handleDeleteColumn()
	}
	return m, nil
}

// ============================================================================
// NAVIGATION
// ============================================================================

func (m Model) handleNavigateColumn(delta int) (tea.Model, tea.Cmd) {
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + delta)
	m.UiState.SetSelectedCard(0)
	m.clampBoard()
	return m, nil
}

func (m Model) handleNavigateCard(delta int) (tea.Model, tea.Cmd) {
	m.UiState.SetSelectedCard(m.UiState.SelectedCard() + delta)
	m.clampBoard()
	return m, nil
}

// ============================================================================
// DRAG GESTURE
// ============================================================================

// handleLiftCard picks up the selected card. The origin column starts out
// highlighted, so releasing without moving is a no-op.
func (m Model) handleLiftCard() (tea.Model, tea.Cmd) {
	card, column, ok := m.currentCard()
	if !ok {
		m.NotificationState.Add(state.LevelInfo, "No card selected to move")
		return m, nil
	}
	if !m.Drag.Lift(card.ID, column.ID) {
		return m, nil
	}
	m.Drag.Hover(column.ID)
	m.UiState.SetMode(state.DraggingMode)
	slog.Debug("card lifted", "card_id", card.ID, "column_id", column.ID)
	return m, nil
}

// handleDraggingMode moves the highlight between columns while a card is lifted
func (m Model) handleDraggingMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.hoverColumn(-1)
	case key.Matches(msg, m.keys.Right):
		m.hoverColumn(1)
	case key.Matches(msg, m.keys.LiftCard):
		return m.handleReleaseCard()
	case key.Matches(msg, m.keys.CancelDrag):
		m.Drag.Cancel()
		m.UiState.SetMode(state.NormalMode)
		m.clampBoard()
	}
	return m, nil
}

// hoverColumn moves the cursor and the drag highlight together
func (m Model) hoverColumn(delta int) {
	columns := m.App.Board.Columns()
	idx := m.UiState.SelectedColumn() + delta
	if idx < 0 || idx >= len(columns) {
		return
	}
	m.UiState.SetSelectedColumn(idx)
	m.Drag.Hover(columns[idx].ID)
}

// handleReleaseCard drops the lifted card on the highlighted column
func (m Model) handleReleaseCard() (tea.Model, tea.Cmd) {
	target, _ := m.Drag.Highlighted()
	moved := m.Drag.Release(target)
	m.UiState.SetMode(state.NormalMode)

	if moved {
		// The card lands at the end of the target column; follow it there
		if column, ok := m.App.Board.Column(target); ok {
			m.UiState.SetSelectedCard(len(column.Cards) - 1)
		}
	}
	m.clampBoard()
	return m, nil
}

// ============================================================================
// CARDS
// ============================================================================

func (m Model) handleAddCard() (tea.Model, tea.Cmd) {
	column, ok := m.currentColumn()
	if !ok {
		m.NotificationState.Add(state.LevelError, "Create a column first")
		return m, nil
	}
	m.FormState.Reset()
	m.FormState.PendingColumn = column.ID
	m.FormState.Form = huhforms.CreateCardForm(column.Title, &m.FormState.CardContent).
		WithTheme(huhforms.CreateWeekboardTheme(m.Config.ColorScheme, huhforms.DialogCreate))
	m.UiState.SetMode(state.AddCardMode)
	return m, m.FormState.Form.Init()
}

func (m Model) handleDeleteCard() (tea.Model, tea.Cmd) {
	card, column, ok := m.currentCard()
	if !ok {
		m.NotificationState.Add(state.LevelError, "No card selected to delete")
		return m, nil
	}
	m.FormState.Reset()
	m.FormState.PendingCard = card.ID
	m.FormState.PendingColumn = column.ID
	m.UiState.SetMode(state.DeleteCardConfirmMode)
	return m, nil
}

func (m Model) confirmDeleteCard() {
	if !m.App.Board.DeleteCard(m.FormState.PendingCard, m.FormState.PendingColumn) {
		m.NotificationState.Add(state.LevelError, "Card no longer exists")
	}
	m.clampBoard()
}

// ============================================================================
// COLUMNS
// ============================================================================

func (m Model) handleCreateColumn() (tea.Model, tea.Cmd) {
	m.FormState.Reset()
	m.FormState.Form = huhforms.CreateColumnForm(&m.FormState.ColumnTitle, false).
		WithTheme(huhforms.CreateWeekboardTheme(m.Config.ColorScheme, huhforms.DialogCreate))
	m.UiState.SetMode(state.AddColumnMode)
	return m, m.FormState.Form.Init()
}

func (m Model) handleRenameColumn() (tea.Model, tea.Cmd) {
	column, ok := m.currentColumn()
	if !ok {
		m.NotificationState.Add(state.LevelError, "No column selected to rename")
		return m, nil
	}
	m.FormState.Reset()
	m.FormState.ColumnTitle = column.Title
	m.FormState.EditingColumnID = column.ID
	m.FormState.Form = huhforms.CreateColumnForm(&m.FormState.ColumnTitle, true).
		WithTheme(huhforms.CreateWeekboardTheme(m.Config.ColorScheme, huhforms.DialogEdit))
	m.UiState.SetMode(state.EditColumnMode)
	return m, m.FormState.Form.Init()
}

func (m Model) handleDeleteColumn() (tea.Model, tea.Cmd) {
	column, ok := m.currentColumn()
	if !ok {
		m.NotificationState.Add(state.LevelError, "No column selected to delete")
		return m, nil
	}
	m.FormState.Reset()
	m.FormState.PendingColumn = column.ID
	m.UiState.SetMode(state.DeleteColumnConfirmMode)
	return m, nil
}

func (m Model) confirmDeleteColumn() {
	if !m.App.Board.DeleteColumn(m.FormState.PendingColumn) {
		m.NotificationState.Add(state.LevelError, "Column no longer exists")
	}
	m.UiState.SetSelectedCard(0)
	m.clampBoard()
}
