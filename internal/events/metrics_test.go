package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_Snapshot(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	snap := bus.Snapshot()
	assert.Zero(t, snap.EventsSent)
	assert.Zero(t, snap.Subscribers)
	assert.False(t, snap.StartTime.IsZero())

	sub, err := bus.Subscribe(1)
	require.NoError(t, err)

	require.NoError(t, bus.SendEvent(Event{Type: EventTasksChanged}))
	require.NoError(t, bus.SendEvent(Event{Type: EventThemeChanged}))

	snap = bus.Snapshot()
	assert.Equal(t, int64(2), snap.EventsSent)
	assert.Equal(t, int64(1), snap.EventsDelivered)
	assert.Equal(t, int64(1), snap.EventsDropped)
	assert.Equal(t, 1, snap.Subscribers)
	assert.NotEmpty(t, snap.Uptime)

	sub.Cancel()
	assert.Zero(t, bus.Snapshot().Subscribers)
}
