package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// updateForm forwards messages to the active huh form. Escape closes the
// dialog, the save key submits regardless of which field is focused.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.Form == nil {
		m.closeForm()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.ForceQuit):
			return m, tea.Quit
		case keyMsg.String() == "esc":
			m.closeForm()
			return m, nil
		case key.Matches(keyMsg, m.keys.SaveForm):
			return m.handleFormSave()
		}
	}

	model, cmd := m.FormState.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.Form = form
	}

	if m.FormState.Form.State == huh.StateCompleted {
		return m.submitForm()
	}
	return m, cmd
}

// handleFormSave handles the save shortcut by completing the form directly
func (m Model) handleFormSave() (tea.Model, tea.Cmd) {
	m.FormState.Form.State = huh.StateCompleted
	return m.submitForm()
}

// submitForm applies the completed form to its store. A rejected submit
// keeps the dialog open so the input can be fixed.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	var ok bool
	switch m.UiState.Mode() {
	case state.AddColumnMode:
		ok = m.submitAddColumn()
	case state.EditColumnMode:
		ok = m.submitRenameColumn()
	case state.AddCardMode:
		ok = m.submitAddCard()
	case state.EventFormMode:
		ok = m.submitEvent()
	}

	if !ok {
		m.FormState.Form.State = huh.StateNormal
		return m, nil
	}
	m.closeForm()
	return m, tea.ClearScreen
}

func (m Model) submitAddColumn() bool {
	if _, ok := m.App.Board.AddColumn(m.FormState.ColumnTitle); !ok {
		m.NotificationState.Add(state.LevelWarning, "Column title is required")
		return false
	}
	m.UiState.SetSelectedColumn(len(m.App.Board.Columns()) - 1)
	m.UiState.SetSelectedCard(0)
	return true
}

// submitRenameColumn renames the column; a blank or unchanged title keeps
// the previous one and still closes the dialog
func (m Model) submitRenameColumn() bool {
	if !m.App.Board.RenameColumn(m.FormState.EditingColumnID, m.FormState.ColumnTitle) {
		slog.Debug("rename kept previous title", "column_id", m.FormState.EditingColumnID)
	}
	return true
}

func (m Model) submitAddCard() bool {
	if _, ok := m.App.Board.AddCard(m.FormState.PendingColumn, m.FormState.CardContent); !ok {
		m.NotificationState.Add(state.LevelWarning, "Card content is required")
		return false
	}
	if column, ok := m.App.Board.Column(m.FormState.PendingColumn); ok {
		m.UiState.SetSelectedCard(len(column.Cards) - 1)
	}
	return true
}

func (m Model) submitEvent() bool {
	id, ok := m.Modal.Submit(m.ctx,
		m.FormState.EventTitle,
		m.FormState.EventDescription,
		m.FormState.EventType,
	)
	if !ok {
		m.NotificationState.Add(state.LevelWarning, "Event title is required")
		return false
	}
	m.focusEvent(id)
	return true
}

// focusEvent moves the cell cursor onto the event. An event hidden by the
// filter leaves the cursor where it was.
func (m Model) focusEvent(id types.EventID) {
	for i, e := range m.cellEvents(m.UiState.SelectedDay(), m.currentSlot()) {
		if e.ID == id {
			m.UiState.SetSelectedEvent(i)
			return
		}
	}
	m.clampSchedule()
}

// closeForm drops the dialog and returns to normal mode
func (m Model) closeForm() {
	if m.UiState.Mode() == state.EventFormMode {
		m.Modal.Close()
	}
	m.FormState.Reset()
	m.UiState.SetMode(state.NormalMode)
}
