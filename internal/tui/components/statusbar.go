package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	Left  string // context, e.g. "Board" or "Schedule · Course only"
	Hint  string // mode specific hint, e.g. the drag prompt
}

// RenderStatusBar renders a status bar with left and right aligned text.
// The right side always points at the help screen.
func RenderStatusBar(props StatusBarProps) string {
	leftText := "weekboard · " + props.Left
	if props.Hint != "" {
		leftText += "  " + props.Hint
	}
	rightText := "press ? for help"

	style := StatusBarStyle.Padding(0, 1)

	leftRendered := style.Render(leftText)
	rightRendered := style.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
