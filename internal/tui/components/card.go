package components

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/tui/theme"
)

// RenderCard renders a single card
//
//	╭──────────────────────────╮
//	│ {content}                │
//	╰──────────────────────────╯
//
// A lifted card keeps its slot in the origin column and is drawn with the
// lifted color until it is dropped.
func RenderCard(card models.Card, selected, lifted bool) string {
	bg := theme.CardBg
	border := theme.CardBorder
	if selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	content := " " + ansi.Truncate(card.Content, cardContentMaxLength, ellipsis)
	textStyle := lipgloss.NewStyle().Background(lipgloss.Color(bg))
	if lifted {
		border = theme.Lifted
		textStyle = textStyle.Foreground(lipgloss.Color(theme.Lifted)).Italic(true)
		content = " ⇡" + ansi.Truncate(card.Content, cardContentMaxLength-1, ellipsis)
	}

	return CardStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Render(textStyle.Render(content))
}
