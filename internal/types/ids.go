package types

import "github.com/google/uuid"

// ID types give semantic meaning to the opaque tokens used as correlation keys.
// Every lookup in the stores goes through one of these; nothing else identifies
// an entity.

// ColumnID identifies a unique column on the board
type ColumnID string

// CardID identifies a unique card; unique across the whole board, not just its column
type CardID string

// EventID identifies a unique schedule event
type EventID string

// NewColumnID returns a fresh random column id
func NewColumnID() ColumnID {
	return ColumnID(uuid.NewString())
}

// NewCardID returns a fresh random card id
func NewCardID() CardID {
	return CardID(uuid.NewString())
}

// NewEventID returns a fresh random event id
func NewEventID() EventID {
	return EventID(uuid.NewString())
}

func (id ColumnID) String() string {
	return string(id)
}

func (id CardID) String() string {
	return string(id)
}

func (id EventID) String() string {
	return string(id)
}
