package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// TabsProps describes the tab bar
type TabsProps struct {
	Tabs         []string
	Selected     int
	Width        int
	Notification string // rendered inline at the right edge, may be empty
}

// RenderTabs renders a tab bar with the given tab names
//
// Layout:
//
//	╭───────╮ ╭──────────╮                [Notification]
//	│ Board │ │ Schedule │─────────────────
//	  active    inactive
func RenderTabs(props TabsProps) string {
	renderedTabs := make([]string, 0, len(props.Tabs))
	for i, tabName := range props.Tabs {
		if i == props.Selected {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tabName))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tabName))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	notificationWidth := lipgloss.Width(props.Notification)
	gapWidth := max(props.Width-lipgloss.Width(row)-notificationWidth-2, 0)
	gap := TabGapStyle.Render(strings.Repeat(" ", gapWidth))

	if props.Notification != "" {
		return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap, props.Notification)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}
