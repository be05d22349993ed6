package models

import (
	"fmt"

	"github.com/thenoetrevino/weekboard/internal/types"
)

// EventType is the kind of a schedule event
type EventType string

const (
	EventTypeCourse EventType = "course"
	EventTypeEvent  EventType = "event"
	EventTypeDayOff EventType = "dayoff"
)

// EventTypes lists the known event types in picker order
var EventTypes = []EventType{EventTypeEvent, EventTypeCourse, EventTypeDayOff}

// Valid reports whether t is one of the known event types
func (t EventType) Valid() bool {
	switch t {
	case EventTypeCourse, EventTypeEvent, EventTypeDayOff:
		return true
	}
	return false
}

// Label returns the human-readable name of the event type
func (t EventType) Label() string {
	switch t {
	case EventTypeCourse:
		return "Course"
	case EventTypeEvent:
		return "Event"
	case EventTypeDayOff:
		return "Day off"
	}
	return string(t)
}

// ParseEventType converts a user supplied string into an EventType
func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidEventType, s)
	}
	return t, nil
}

// Event is a titled occurrence pinned to one day and one time slot
type Event struct {
	ID          types.EventID
	Title       string
	Description string
	Type        EventType
	Day         int // 0 = Monday, 6 = Sunday
	StartTime   string
	EndTime     string
}

// Slot returns the catalog entry matching the event's bounds
func (e Event) Slot() (TimeSlot, bool) {
	idx := SlotIndex(e.StartTime, e.EndTime)
	if idx < 0 {
		return TimeSlot{}, false
	}
	return TimeSlots()[idx], true
}

// At reports whether the event sits on the given day and slot
func (e Event) At(day int, slot TimeSlot) bool {
	return e.Day == day && e.StartTime == slot.StartTime && e.EndTime == slot.EndTime
}
