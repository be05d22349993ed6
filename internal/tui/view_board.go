package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/weekboard/internal/tui/components"
)

// renderBoard lays the columns out side by side, scrolling horizontally so
// the selected column stays visible
func (m Model) renderBoard() string {
	columns := m.App.Board.Columns()
	if len(columns) == 0 {
		return components.IndicatorStyle.
			Width(m.UiState.Width()).
			Height(m.UiState.ContentHeight()).
			Render("No columns yet. Press " + m.Config.KeyMappings.CreateColumn + " to create one.")
	}

	visible := max(m.UiState.Width()/(components.ColumnWidth+1), 1)
	selected := m.UiState.SelectedColumn()
	offset := components.ScrollOffset(selected, len(columns), visible)
	end := min(offset+visible, len(columns))

	lifted, _, _ := m.Drag.Lifted()
	target, hovering := m.Drag.Highlighted()

	rendered := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		col := columns[i]
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Selected:     i == selected,
			SelectedCard: m.UiState.SelectedCard(),
			DropTarget:   hovering && col.ID == target,
			LiftedCard:   lifted,
			Height:       m.UiState.ContentHeight(),
		}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
