package app

import (
	"log/slog"

	"github.com/thenoetrevino/weekboard/internal/database"
	"github.com/thenoetrevino/weekboard/internal/events"
	"github.com/thenoetrevino/weekboard/internal/models"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	dataDir     string
	slots       database.SlotStore
	storageKey  string
	seed        []models.Column
	eventClient events.EventPublisher
	logger      *slog.Logger
}

// WithDataDir persists the schedule in a sqlite database under dir
func WithDataDir(dir string) Option {
	return func(cfg *appConfig) {
		cfg.dataDir = dir
	}
}

// WithSlotStore uses an existing slot store instead of opening a database
func WithSlotStore(slots database.SlotStore) Option {
	return func(cfg *appConfig) {
		cfg.slots = slots
	}
}

// WithStorageKey sets the slot name the schedule is persisted under
func WithStorageKey(key string) Option {
	return func(cfg *appConfig) {
		if key != "" {
			cfg.storageKey = key
		}
	}
}

// WithBoardSeed replaces the default starting columns
func WithBoardSeed(columns []models.Column) Option {
	return func(cfg *appConfig) {
		cfg.seed = columns
	}
}

// WithEventPublisher sets an extra publisher notified alongside the bus
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
