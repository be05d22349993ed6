package schedule

import "errors"

// Schedule-related errors. Initialize turns decode errors into an empty
// collection; persistence failures are logged and kept for PersistErr.
var (
	// ErrMalformedSnapshot indicates stored content that is not a JSON array of events
	ErrMalformedSnapshot = errors.New("malformed schedule snapshot")

	// ErrInvalidRecord indicates a stored event that fails validation
	ErrInvalidRecord = errors.New("invalid schedule event record")

	// ErrPersist indicates the collection could not be written to storage
	ErrPersist = errors.New("failed to persist schedule")
)
