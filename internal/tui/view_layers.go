package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/weekboard/internal/tui/components"
	"github.com/thenoetrevino/weekboard/internal/tui/layers"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

// renderModalLayer returns the centered overlay for the current mode, if any
func (m Model) renderModalLayer() *lipgloss.Layer {
	var content string
	switch m.UiState.Mode() {
	case state.AddColumnMode, state.AddCardMode:
		content = m.renderFormBox(components.CreateInputBoxStyle)
	case state.EditColumnMode:
		content = m.renderFormBox(components.EditInputBoxStyle)
	case state.EventFormMode:
		content = m.renderFormBox(components.FormBoxStyle)
	case state.DeleteColumnConfirmMode, state.DeleteCardConfirmMode, state.DeleteEventConfirmMode:
		content = m.renderConfirmBox()
	case state.HelpMode:
		content = components.HelpBoxStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left,
				components.TitleStyle.Render("weekboard · Keyboard Shortcuts"),
				"",
				m.Help.FullHelpView(m.keys.FullHelp()),
				"",
				"press any key to close",
			))
	case state.EventDetailMode:
		content = components.RenderEventDetail(
			components.RenderEventHeader(m.viewing),
			m.Detail.View(),
			fmt.Sprintf("[%s] delete  [%s] close", m.Config.KeyMappings.DeleteEvent, m.Config.KeyMappings.CancelDrag),
			components.EventDetailWidth(m.UiState.Width()),
		)
	}
	return layers.CreateCenteredLayer(content, m.UiState.Width(), m.UiState.Height())
}

func (m Model) renderFormBox(style lipgloss.Style) string {
	if m.FormState.Form == nil {
		return ""
	}
	width := min(max(m.UiState.Width()/2, 40), 70)
	return style.Width(width).Render(m.FormState.Form.View())
}

// renderConfirmBox asks before a destructive action; deleting a column
// also names the cards that go with it
func (m Model) renderConfirmBox() string {
	var question string
	switch m.UiState.Mode() {
	case state.DeleteColumnConfirmMode:
		column, ok := m.App.Board.Column(m.FormState.PendingColumn)
		if !ok {
			return ""
		}
		question = fmt.Sprintf("Delete column '%s'?", column.Title)
		if n := len(column.Cards); n > 0 {
			question += fmt.Sprintf("\nThis will also delete %d card(s).", n)
		}
	case state.DeleteCardConfirmMode:
		card, _, ok := m.App.Board.FindCard(m.FormState.PendingCard)
		if !ok {
			return ""
		}
		question = fmt.Sprintf("Delete card '%s'?", card.Content)
	case state.DeleteEventConfirmMode:
		event, ok := m.App.Schedule.Event(m.FormState.PendingEventID)
		if !ok {
			return ""
		}
		question = fmt.Sprintf("Delete event '%s'?", event.Title)
	}

	return components.DeleteConfirmBoxStyle.
		Width(50).
		Render(question + "\n\n[y]es  [n]o")
}
