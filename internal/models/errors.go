package models

import "errors"

// Domain-specific errors for parsing user supplied values
var (
	// ErrInvalidEventType indicates a type other than course, event or dayoff
	ErrInvalidEventType = errors.New("invalid event type")

	// ErrInvalidDay indicates a day outside Monday..Sunday
	ErrInvalidDay = errors.New("day must be between 0 (Mon) and 6 (Sun)")

	// ErrInvalidSlot indicates a slot index outside the catalog
	ErrInvalidSlot = errors.New("time slot is not in the catalog")
)
