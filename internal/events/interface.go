package events

// EventPublisher defines the interface for sending change notifications.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// SendEvent delivers an event to current subscribers without blocking
	SendEvent(event Event) error

	// Close stops delivery and closes every subscription
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
