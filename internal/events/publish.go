package events

import "log/slog"

// Publish sends event through client, tolerating a nil client.
// Delivery failures are logged and swallowed: a missed notification only
// delays a redraw and must never fail the mutation that caused it.
func Publish(client EventPublisher, event Event) {
	if client == nil {
		return // Silently skip if no client (e.g., in tests or CLI mode)
	}

	if err := client.SendEvent(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"action", event.Action,
			"subject_id", event.SubjectID,
			"error", err)
	}
}
