package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/tui/components"
)

// renderSchedule draws the 7 x 10 grid: a header row of days, then one row
// per catalog slot with its time label on the left
func (m Model) renderSchedule() string {
	cellWidth := components.CellWidth(m.UiState.Width())
	cellHeight := components.CellHeight(m.UiState.ContentHeight())
	selDay, selSlot := m.UiState.SelectedDay(), m.UiState.SelectedSlot()

	header := []string{components.SlotLabelStyle.Render("")}
	for day := 0; day < models.DaysInWeek; day++ {
		header = append(header, components.RenderDayHeader(day, cellWidth, day == selDay))
	}
	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

	for i, slot := range models.TimeSlots() {
		row := []string{components.RenderSlotLabel(slot, cellHeight, i == selSlot)}
		for day := 0; day < models.DaysInWeek; day++ {
			selected := day == selDay && i == selSlot
			row = append(row, components.RenderCell(components.CellProps{
				Events:        m.cellEvents(day, slot),
				Selected:      selected,
				SelectedEvent: m.UiState.SelectedEvent(),
				Width:         cellWidth,
				Height:        cellHeight,
			}))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
