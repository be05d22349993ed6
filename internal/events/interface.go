package events

// EventPublisher defines the interface for sending change events.
// Stores depend on this behavior rather than on the concrete Bus, so a nil
// publisher or a test double can be swapped in.
type EventPublisher interface {
	// SendEvent delivers an event to every subscriber
	SendEvent(event Event) error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
