package app

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/thenoetrevino/weekboard/internal/board"
	"github.com/thenoetrevino/weekboard/internal/database"
	"github.com/thenoetrevino/weekboard/internal/events"
	"github.com/thenoetrevino/weekboard/internal/schedule"
)

// App holds all application state and provides dependency injection.
// This is the main application container that manages resource lifecycles.
type App struct {
	// Storage layer; db is nil when running on in-memory slots
	db    *sqlx.DB
	slots database.SlotStore

	// Event system for live updates
	Bus *events.Bus

	// Stores
	Board    *board.Store
	Schedule *schedule.Store
}

// New creates a new App with both stores initialized. The schedule is loaded
// from storage; the board always starts from the seed columns.
func New(ctx context.Context, opts ...Option) (*App, error) {
	cfg := appConfig{
		storageKey: schedule.DefaultStorageKey,
		seed:       board.DefaultColumns(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	a := &App{Bus: events.NewBus()}

	switch {
	case cfg.slots != nil:
		a.slots = cfg.slots
	case cfg.dataDir != "":
		db, err := database.InitDB(ctx, cfg.dataDir)
		if err != nil {
			return nil, err
		}
		a.db = db
		a.slots = database.NewSlotRepo(db)
	default:
		a.slots = database.NewMemorySlots()
	}

	var publisher events.EventPublisher = a.Bus
	if cfg.eventClient != nil {
		publisher = fanout{a.Bus, cfg.eventClient}
	}

	a.Board = board.NewStore(
		board.WithColumns(cfg.seed),
		board.WithEventPublisher(publisher),
	)
	a.Schedule = schedule.NewStore(a.slots,
		schedule.WithStorageKey(cfg.storageKey),
		schedule.WithEventPublisher(publisher),
	)
	a.Schedule.Initialize(ctx)

	cfg.logger.Info("app initialized",
		"data_dir", cfg.dataDir,
		"storage_key", cfg.storageKey,
		"events", len(a.Schedule.Events()),
	)
	return a, nil
}

// Slots returns the slot store backing the schedule
func (a *App) Slots() database.SlotStore {
	return a.slots
}

// Close releases the database, if one was opened
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// fanout forwards each event to every publisher, returning the first error
type fanout []events.EventPublisher

func (f fanout) SendEvent(e events.Event) error {
	var first error
	for _, p := range f {
		if err := p.SendEvent(e); err != nil && first == nil {
			first = err
		}
	}
	return first
}
