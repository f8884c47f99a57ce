package events

import "log/slog"

// Publish sends an event if a publisher is configured.
// Errors are logged but not returned (fire-and-forget pattern).
func Publish(publisher EventPublisher, event Event) {
	if publisher == nil {
		return
	}
	if err := publisher.SendEvent(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"key", event.Key,
			"error", err)
	}
}
