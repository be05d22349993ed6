package board

import (
	"github.com/thenoetrevino/weekboard/internal/events"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// Option is a functional option for configuring a Store
type Option func(*storeConfig)

type storeConfig struct {
	seed        []models.Column
	newColumnID func() types.ColumnID
	newCardID   func() types.CardID
	eventClient events.EventPublisher
}

// WithColumns starts the store with a copy of the given columns
func WithColumns(columns []models.Column) Option {
	return func(cfg *storeConfig) {
		cfg.seed = columns
	}
}

// WithEventPublisher sets the publisher notified after each mutation
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *storeConfig) {
		cfg.eventClient = ec
	}
}

// WithIDGenerators replaces the random id generators, mostly for tests
func WithIDGenerators(column func() types.ColumnID, card func() types.CardID) Option {
	return func(cfg *storeConfig) {
		if column != nil {
			cfg.newColumnID = column
		}
		if card != nil {
			cfg.newCardID = card
		}
	}
}
