package schedule

import (
	"github.com/thenoetrevino/weekboard/internal/events"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// DefaultStorageKey is the slot holding the serialized event collection
const DefaultStorageKey = "scheduleEvents"

// Option is a functional option for configuring a Store
type Option func(*storeConfig)

type storeConfig struct {
	storageKey  string
	newID       func() types.EventID
	eventClient events.EventPublisher
}

// WithStorageKey overrides the slot name used for persistence
func WithStorageKey(key string) Option {
	return func(cfg *storeConfig) {
		if key != "" {
			cfg.storageKey = key
		}
	}
}

// WithEventPublisher sets the publisher notified after each mutation
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *storeConfig) {
		cfg.eventClient = ec
	}
}

// WithIDGenerator replaces the random event id generator
func WithIDGenerator(fn func() types.EventID) Option {
	return func(cfg *storeConfig) {
		if fn != nil {
			cfg.newID = fn
		}
	}
}
