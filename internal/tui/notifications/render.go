package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/weekboard/internal/tui/state"
)

// severityOf maps a stored notification level onto a render severity
func severityOf(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}

// RenderInline renders a compact inline notification (for tab bar)
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(severityOf(n.Level), n.Message)
}
