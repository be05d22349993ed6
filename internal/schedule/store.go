// Package schedule holds the weekly schedule: events pinned to a day and a
// time slot, mirrored to one durable storage slot after every change.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/weekboard/internal/database"
	"github.com/thenoetrevino/weekboard/internal/events"
	"github.com/thenoetrevino/weekboard/internal/models"
	"github.com/thenoetrevino/weekboard/internal/types"
)

// Store owns the event collection for one session. Memory is authoritative:
// storage is read once by Initialize and overwritten after each mutation.
type Store struct {
	slots       database.SlotStore
	storageKey  string
	events      []models.Event
	newID       func() types.EventID
	eventClient events.EventPublisher
	persistErr  error
}

// NewStore creates an empty store persisting into slots. Call Initialize to
// load the previous session.
func NewStore(slots database.SlotStore, opts ...Option) *Store {
	cfg := storeConfig{
		storageKey: DefaultStorageKey,
		newID:      types.NewEventID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Store{
		slots:       slots,
		storageKey:  cfg.storageKey,
		events:      []models.Event{},
		newID:       cfg.newID,
		eventClient: cfg.eventClient,
	}
}

// Initialize replaces the in-memory collection with the persisted one.
// Missing, unreadable or malformed content yields an empty collection; it
// never fails.
func (s *Store) Initialize(ctx context.Context) {
	s.events = []models.Event{}

	if s.slots == nil {
		return
	}

	raw, found, err := s.slots.Get(ctx, s.storageKey)
	if err != nil {
		slog.Warn("failed to read schedule storage, starting empty", "key", s.storageKey, "error", err)
		return
	}
	if !found {
		return
	}

	loaded, err := Decode([]byte(raw))
	if err != nil {
		slog.Warn("ignoring malformed schedule storage", "key", s.storageKey, "error", err)
		return
	}
	s.events = loaded

	slog.Debug("schedule loaded", "events", len(loaded))
	events.Publish(s.eventClient, events.Event{
		Type:   events.EventScheduleChanged,
		Action: events.ActionEventsLoaded,
	})
}

// AddEvent pins a new event to (day, slot). A blank title is ignored, as are
// a day outside Mon..Sun, a slot not in the catalog and an unknown type.
// Invalid UTF-8 is dropped from title and description so the stored copy
// matches memory. Events at the same coordinate are allowed to pile up.
func (s *Store) AddEvent(ctx context.Context, day int, slot models.TimeSlot, title, description string, eventType models.EventType) (types.EventID, bool) {
	title = cleanText(title)
	if title == "" {
		return "", false
	}
	if !models.ValidDay(day) || !models.IsCatalogSlot(slot) || !eventType.Valid() {
		slog.Debug("rejected event", "day", day, "start", slot.StartTime, "end", slot.EndTime, "type", eventType)
		return "", false
	}

	e := models.Event{
		ID:          s.newID(),
		Title:       title,
		Description: cleanText(description),
		Type:        eventType,
		Day:         day,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
	}
	s.events = append(s.events, e)

	s.persist(ctx)
	s.publish(events.ActionEventAdded, e.ID.String())
	return e.ID, true
}

// DeleteEvent removes the event with the given id if present
func (s *Store) DeleteEvent(ctx context.Context, id types.EventID) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.events = append(s.events[:idx], s.events[idx+1:]...)

	s.persist(ctx)
	s.publish(events.ActionEventDeleted, id.String())
	return true
}

// Event returns the event with the given id
func (s *Store) Event(id types.EventID) (models.Event, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Event{}, false
	}
	return s.events[idx], true
}

// Events returns a copy of the whole collection in insertion order
func (s *Store) Events() []models.Event {
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// EventsAt returns the events placed exactly on (day, slot), in insertion order
func (s *Store) EventsAt(day int, slot models.TimeSlot) []models.Event {
	out := []models.Event{}
	for _, e := range s.events {
		if e.At(day, slot) {
			out = append(out, e)
		}
	}
	return out
}

// Filter returns the events shown under the given filter
func (s *Store) Filter(f Filter) []models.Event {
	out := []models.Event{}
	for _, e := range s.events {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// ColorClassFor returns the display category of an event
func (s *Store) ColorClassFor(e models.Event) models.ColorClass {
	return models.ColorClassFor(e)
}

func (s *Store) indexOf(id types.EventID) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// PersistErr returns the error of the most recent storage write, or nil when
// it succeeded. One-shot callers check it after a mutation.
func (s *Store) PersistErr() error {
	return s.persistErr
}

// persist overwrites the storage slot with the full collection. A failed
// write keeps the in-memory change; the next successful write repairs storage.
func (s *Store) persist(ctx context.Context) {
	s.persistErr = nil
	if s.slots == nil {
		return
	}

	data, err := Encode(s.events)
	if err != nil {
		slog.Error("failed to encode schedule", "error", err)
		s.persistErr = fmt.Errorf("%w: %v", ErrPersist, err)
		return
	}
	if err := s.slots.Set(ctx, s.storageKey, string(data)); err != nil {
		slog.Error("failed to persist schedule", "key", s.storageKey, "error", err)
		s.persistErr = fmt.Errorf("%w: %v", ErrPersist, err)
	}
}

func cleanText(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, ""))
}

func (s *Store) publish(action events.Action, subjectID string) {
	events.Publish(s.eventClient, events.Event{
		Type:      events.EventScheduleChanged,
		Action:    action,
		SubjectID: subjectID,
	})
}
