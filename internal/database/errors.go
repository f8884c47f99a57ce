package database

import "errors"

var (
	// ErrKeyNotFound is returned by Get when no value is stored under the key
	ErrKeyNotFound = errors.New("key not found")

	// ErrDriverUnavailable is returned by Open for a driver this build does not register
	ErrDriverUnavailable = errors.New("sql driver not available in this build")

	// ErrEmptyKey is returned when an operation is given an empty key
	ErrEmptyKey = errors.New("key cannot be empty")
)
