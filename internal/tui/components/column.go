package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/tui/theme"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// ColumnProps describes one board column as it should be drawn
type ColumnProps struct {
	Column       models.Column
	Selected     bool         // the cursor is in this column
	SelectedCard int          // index of the selected card, ignored unless Selected
	DropTarget   bool         // a lifted card is hovering over this column
	LiftedCard   types.CardID // card currently being dragged, if any
	Height       int          // total box height, 0 for auto
}

// VisibleCards returns how many cards fit in a column of the given height
func VisibleCards(height int) int {
	if height <= 0 {
		return 1 << 30
	}
	available := height - columnBorderOverhead - headerLines - indicatorLines
	return max(available/CardHeight, 1)
}

// ScrollOffset returns the first visible card index that keeps selected in view
func ScrollOffset(selected, total, visible int) int {
	if total <= visible {
		return 0
	}
	offset := max(selected-visible+1, 0)
	return min(offset, total-visible)
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Column Title} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(props ColumnProps) string {
	cards := props.Column.Cards
	header := renderColumnHeader(props.Column, props.DropTarget)

	var content string
	if len(cards) == 0 {
		content = renderEmptyColumnContent(header)
	} else {
		visible := VisibleCards(props.Height)
		selected := -1
		if props.Selected {
			selected = props.SelectedCard
		}
		offset := ScrollOffset(max(selected, 0), len(cards), visible)
		end := min(offset+visible, len(cards))

		var b strings.Builder
		b.WriteString(header + "\n")
		b.WriteString(renderScrollIndicator(offset > 0, "▲ more above"))
		for i := offset; i < end; i++ {
			card := cards[i]
			b.WriteString(RenderCard(card, i == selected, card.ID == props.LiftedCard) + "\n")
		}
		if end < len(cards) {
			b.WriteString(IndicatorStyle.Render(fmt.Sprintf("▼ %d more below", len(cards)-end)))
		}
		content = b.String()
	}

	return applyColumnStyle(content, props.Selected, props.DropTarget, props.Height)
}

func renderColumnHeader(column models.Column, dropTarget bool) string {
	header := TitleStyle.Render(fmt.Sprintf("%s (%d)", column.Title, len(column.Cards)))
	if dropTarget {
		header += lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.DropTarget)).
			Bold(true).
			Render("  ⇣ drop here")
	}
	return header
}

// renderScrollIndicator returns the indicator line, or a blank line to keep
// card positions stable while scrolling
func renderScrollIndicator(show bool, text string) string {
	if !show {
		return "\n"
	}
	return IndicatorStyle.Render(text) + "\n"
}

func renderEmptyColumnContent(header string) string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Padding(1, 0)
	return header + "\n" + emptyStyle.Render("No cards")
}

func applyColumnStyle(content string, selected, dropTarget bool, height int) string {
	style := ColumnStyle
	switch {
	case dropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if height > 0 {
		style = style.Height(height - columnBorderOverhead)
	}
	return style.Render(content)
}
