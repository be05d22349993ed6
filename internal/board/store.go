// Package board holds the in-memory kanban board: an ordered list of columns,
// each an ordered list of cards.
package board

import (
	"log/slog"
	"strings"

	"github.com/thenoetrevino/weekboard/internal/events"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// Store owns the column/card graph for one session.
// Invalid input (blank text, unknown ids, drop on origin) is a silent no-op;
// every mutating method reports whether it changed anything.
type Store struct {
	columns     []models.Column
	newColumnID func() types.ColumnID
	newCardID   func() types.CardID
	eventClient events.EventPublisher
}

// NewStore creates an empty board store
func NewStore(opts ...Option) *Store {
	cfg := storeConfig{
		newColumnID: types.NewColumnID,
		newCardID:   types.NewCardID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store{
		newColumnID: cfg.newColumnID,
		newCardID:   cfg.newCardID,
		eventClient: cfg.eventClient,
	}
	for _, col := range cfg.seed {
		s.columns = append(s.columns, col.Clone())
	}
	return s
}

// Columns returns a deep copy of the board in display order
func (s *Store) Columns() []models.Column {
	out := make([]models.Column, len(s.columns))
	for i, col := range s.columns {
		out[i] = col.Clone()
	}
	return out
}

// Column returns a copy of the column with the given id
func (s *Store) Column(id types.ColumnID) (models.Column, bool) {
	idx := s.columnIndex(id)
	if idx < 0 {
		return models.Column{}, false
	}
	return s.columns[idx].Clone(), true
}

// FindCard returns the card and the id of the column holding it
func (s *Store) FindCard(id types.CardID) (models.Card, types.ColumnID, bool) {
	for _, col := range s.columns {
		if i := col.IndexOfCard(id); i >= 0 {
			return col.Cards[i], col.ID, true
		}
	}
	return models.Card{}, "", false
}

// AddColumn appends a new empty column. Blank titles are ignored.
func (s *Store) AddColumn(title string) (types.ColumnID, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false
	}

	col := models.Column{
		ID:    s.newColumnID(),
		Title: title,
		Cards: []models.Card{},
	}
	s.columns = append(s.columns, col)

	slog.Debug("column added", "column_id", col.ID, "title", title)
	s.publish(events.ActionColumnAdded, col.ID.String())
	return col.ID, true
}

// DeleteColumn removes the column together with all of its cards
func (s *Store) DeleteColumn(id types.ColumnID) bool {
	idx := s.columnIndex(id)
	if idx < 0 {
		return false
	}

	discarded := len(s.columns[idx].Cards)
	s.columns = append(s.columns[:idx], s.columns[idx+1:]...)

	slog.Debug("column deleted", "column_id", id, "cards_discarded", discarded)
	s.publish(events.ActionColumnDeleted, id.String())
	return true
}

// RenameColumn sets a new title. A blank title cancels the edit and the
// previous title is kept.
func (s *Store) RenameColumn(id types.ColumnID, newTitle string) bool {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return false
	}
	idx := s.columnIndex(id)
	if idx < 0 {
		return false
	}
	if s.columns[idx].Title == newTitle {
		return false
	}

	s.columns[idx].Title = newTitle
	s.publish(events.ActionColumnRenamed, id.String())
	return true
}

// AddCard appends a card to the end of the column. Blank content and unknown
// columns are ignored. Content is kept as typed; only titles are trimmed.
func (s *Store) AddCard(columnID types.ColumnID, content string) (types.CardID, bool) {
	if strings.TrimSpace(content) == "" {
		return "", false
	}
	idx := s.columnIndex(columnID)
	if idx < 0 {
		return "", false
	}

	card := models.Card{ID: s.newCardID(), Content: content}
	s.columns[idx].Cards = append(s.columns[idx].Cards, card)

	slog.Debug("card added", "card_id", card.ID, "column_id", columnID)
	s.publish(events.ActionCardAdded, card.ID.String())
	return card.ID, true
}

// DeleteCard removes the card from the named column if it is there
func (s *Store) DeleteCard(cardID types.CardID, columnID types.ColumnID) bool {
	idx := s.columnIndex(columnID)
	if idx < 0 {
		return false
	}
	pos := s.columns[idx].IndexOfCard(cardID)
	if pos < 0 {
		return false
	}

	cards := s.columns[idx].Cards
	s.columns[idx].Cards = append(cards[:pos], cards[pos+1:]...)

	s.publish(events.ActionCardDeleted, cardID.String())
	return true
}

// MoveCard relocates a card to the end of the target column.
// Dropping on the origin column cancels the move; there is no reordering
// within a column. A card missing from the source leaves both columns as is.
func (s *Store) MoveCard(cardID types.CardID, sourceID, targetID types.ColumnID) bool {
	if sourceID == targetID {
		return false
	}
	src := s.columnIndex(sourceID)
	dst := s.columnIndex(targetID)
	if src < 0 || dst < 0 {
		return false
	}
	pos := s.columns[src].IndexOfCard(cardID)
	if pos < 0 {
		return false
	}

	card := s.columns[src].Cards[pos]
	cards := s.columns[src].Cards
	s.columns[src].Cards = append(cards[:pos], cards[pos+1:]...)
	s.columns[dst].Cards = append(s.columns[dst].Cards, card)

	slog.Debug("card moved", "card_id", cardID, "from", sourceID, "to", targetID)
	s.publish(events.ActionCardMoved, cardID.String())
	return true
}

func (s *Store) columnIndex(id types.ColumnID) int {
	for i, col := range s.columns {
		if col.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) publish(action events.Action, subjectID string) {
	events.Publish(s.eventClient, events.Event{
		Type:      events.EventBoardChanged,
		Action:    action,
		SubjectID: subjectID,
	})
}
