package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/tui/theme"
)

// CellProps describes one (day, slot) cell of the schedule grid
type CellProps struct {
	Events        []models.Event // already filtered, in insertion order
	Selected      bool
	SelectedEvent int // index inside Events, ignored unless Selected
	Width         int // total width including the left grid line
	Height        int // number of text lines
}

// CellWidth returns the width of each day cell for a terminal of the given width
func CellWidth(screenWidth int) int {
	w := (screenWidth - SlotLabelWidth) / models.DaysInWeek
	return min(max(w, MinCellWidth), MaxCellWidth)
}

// CellHeight returns the lines given to each slot row for the available height
func CellHeight(availableHeight int) int {
	h := (availableHeight - 1) / models.SlotCount // one row for day headers
	return min(max(h, 1), 3)
}

// RenderCell renders the events of one cell, one chip per line. When events
// overflow the cell the last line counts the hidden ones.
func RenderCell(props CellProps) string {
	inner := max(props.Width-1, 1)
	height := max(props.Height, 1)

	lines := make([]string, 0, height)
	shown := len(props.Events)
	if shown > height {
		shown = height - 1
	}
	for i := 0; i < shown; i++ {
		lines = append(lines, renderEventChip(props.Events[i], inner, props.Selected && i == props.SelectedEvent))
	}
	if hidden := len(props.Events) - shown; hidden > 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render(ansi.Truncate(fmt.Sprintf("+%d more", hidden), inner, ellipsis)))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	style := CellStyle.Width(props.Width).Height(height)
	if props.Selected {
		style = style.
			Background(lipgloss.Color(theme.SelectedBg)).
			BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderEventChip(e models.Event, width int, focused bool) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.EventHex(e)))
	prefix := "▪"
	if focused {
		style = style.Bold(true).Underline(true)
		prefix = "▸"
	}
	return style.Render(ansi.Truncate(prefix+e.Title, width, ellipsis))
}

// RenderDayHeader renders the name of a day above its grid column
func RenderDayHeader(day, width int, selected bool) string {
	style := TitleStyle.Width(width).Align(lipgloss.Center)
	if models.IsWeekend(day) {
		style = style.Foreground(lipgloss.Color(theme.Weekend))
	}
	if selected {
		style = style.Underline(true)
	}
	return style.Render(models.DayName(day))
}

// RenderSlotLabel renders the time range of a slot in the left column
func RenderSlotLabel(slot models.TimeSlot, height int, selected bool) string {
	style := SlotLabelStyle.Height(max(height, 1))
	if selected {
		style = style.Foreground(lipgloss.Color(theme.Highlight)).Bold(true)
	}
	return style.Render(slot.Label)
}
