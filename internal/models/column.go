package models

import "github.com/thenoetrevino/weekboard/internal/types"

// Column represents a kanban board column (e.g., "To Do", "Doing", "Done").
// Cards are kept in display order; new and moved cards are appended at the end.
type Column struct {
	ID    types.ColumnID // Unique identifier for the column
	Title string         // Display title, never blank
	Cards []Card         // Ordered cards, first is top of the column
}

// Card is a single task unit owned by exactly one column at a time
type Card struct {
	ID      types.CardID
	Content string
}

// Clone returns a deep copy of the column so callers cannot alias store state
func (c Column) Clone() Column {
	cards := make([]Card, len(c.Cards))
	copy(cards, c.Cards)
	return Column{
		ID:    c.ID,
		Title: c.Title,
		Cards: cards,
	}
}

// IndexOfCard returns the position of the card in the column, or -1
func (c Column) IndexOfCard(id types.CardID) int {
	for i, card := range c.Cards {
		if card.ID == id {
			return i
		}
	}
	return -1
}
