package events

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultBuffer is the per-subscription channel capacity used when none is given
const DefaultBuffer = 16

// Bus fans events out to in-process subscribers.
// Delivery never blocks the sender: a subscriber whose buffer is full misses the event.
type Bus struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	seq    int64
	closed bool
	now    func() time.Time

	metrics *Metrics
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		subs:    make(map[*Subscription]struct{}),
		now:     time.Now,
		metrics: NewMetrics(),
	}
}

// Subscription is a consumer's handle on the bus.
// After Cancel returns no further events are delivered to it.
type Subscription struct {
	bus  *Bus
	ch   chan Event
	once sync.Once
}

// Events returns the channel events arrive on. It is closed on Cancel or bus Close.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Cancel detaches the subscription from the bus. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	s.closeLocked()
}

// closeLocked must be called with bus.mu held
func (s *Subscription) closeLocked() {
	s.once.Do(func() {
		delete(s.bus.subs, s)
		close(s.ch)
	})
}

// Subscribe registers a new subscriber with the given buffer size
func (b *Bus) Subscribe(buffer int) (*Subscription, error) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	sub := &Subscription{bus: b, ch: make(chan Event, buffer)}
	b.subs[sub] = struct{}{}
	return sub, nil
}

// SendEvent stamps the event with a sequence number and timestamp and delivers it
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.seq++
	b.metrics.EventsSent.Add(1)
	event.SequenceID = b.seq
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	for sub := range b.subs {
		select {
		case sub.ch <- event:
			b.metrics.EventsDelivered.Add(1)
		default:
			b.metrics.EventsDropped.Add(1)
			slog.Warn("dropping event for slow subscriber",
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
	return nil
}

// Subscribers returns the number of active subscriptions
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close closes every subscription. Further sends return ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for sub := range b.subs {
		sub.closeLocked()
	}
	return nil
}
