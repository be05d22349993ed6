package events

import "time"

// EventType indicates which store changed
type EventType string

const (
	EventBoardChanged    EventType = "board_changed"
	EventScheduleChanged EventType = "schedule_changed"
)

// Action names the mutation that produced an event
type Action string

const (
	ActionColumnAdded   Action = "column_added"
	ActionColumnDeleted Action = "column_deleted"
	ActionColumnRenamed Action = "column_renamed"
	ActionCardAdded     Action = "card_added"
	ActionCardDeleted   Action = "card_deleted"
	ActionCardMoved     Action = "card_moved"
	ActionEventAdded    Action = "event_added"
	ActionEventDeleted  Action = "event_deleted"
	ActionEventsLoaded  Action = "events_loaded"
)

// Event represents a state change notification
type Event struct {
	Type       EventType
	Action     Action
	SubjectID  string    // id of the column, card or schedule event concerned
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// NotifyFunc receives published events
type NotifyFunc func(Event)
