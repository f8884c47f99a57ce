package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks bus statistics using atomic operations for thread-safety
type Metrics struct {
	EventsSent      atomic.Int64
	EventsDelivered atomic.Int64
	EventsDropped   atomic.Int64
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	EventsSent      int64     `json:"events_sent"`
	EventsDelivered int64     `json:"events_delivered"`
	EventsDropped   int64     `json:"events_dropped"`
	Subscribers     int       `json:"subscribers"`
	StartTime       time.Time `json:"start_time"`
	Uptime          string    `json:"uptime"`
}

// Snapshot returns the bus counters at this moment
func (b *Bus) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsSent:      b.metrics.EventsSent.Load(),
		EventsDelivered: b.metrics.EventsDelivered.Load(),
		EventsDropped:   b.metrics.EventsDropped.Load(),
		Subscribers:     b.Subscribers(),
		StartTime:       b.metrics.StartTime,
		Uptime:          time.Since(b.metrics.StartTime).String(),
	}
}
