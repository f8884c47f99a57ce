package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventTasksChanged EventType = "tasks_changed"
	EventThemeChanged EventType = "theme_changed"
	EventStoreCleared EventType = "store_cleared"
)

// Event represents a change notification for one stored key
type Event struct {
	Type       EventType
	Key        string    // Storage key that was written
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
