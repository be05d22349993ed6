package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/tui/theme"
)

// EventDetailWidth returns the popup width used for an event on a screen
func EventDetailWidth(screenWidth int) int {
	return min(max(screenWidth*2/3, 40), 90)
}

// RenderEventHeader renders the title block of the detail popup:
// title, type and the cell the event occupies
func RenderEventHeader(e models.Event) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.EventHex(e)))

	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	when := models.DayName(e.Day) + " " + e.StartTime + "-" + e.EndTime
	if slot, ok := e.Slot(); ok {
		when = models.DayName(e.Day) + " " + slot.Label
	}

	parts := []string{
		titleStyle.Render(e.Title),
		metaStyle.Render(fmt.Sprintf("%s · %s", e.Type.Label(), when)),
	}
	return strings.Join(parts, "\n")
}

// RenderEventBody renders the markdown description for the popup's scroll area
func RenderEventBody(e models.Event, width int) string {
	return RenderDescription(DescriptionProps{
		Description: e.Description,
		Width:       width,
	})
}

// RenderEventDetail frames header, scrolled body and a key hint into the popup
func RenderEventDetail(header, body, hint string, width int) string {
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(hint)

	return DetailBoxStyle.
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer))
}
