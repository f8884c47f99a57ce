package events

import "errors"

var (
	// ErrBusClosed is returned when sending on or subscribing to a closed bus
	ErrBusClosed = errors.New("event bus closed")
)
