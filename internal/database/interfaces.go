// Package database defines the key-value contract shared by every storage backend
package database

import "context"

// KVReader defines read operations on the key-value store.
type KVReader interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)
	// Keys returns every stored key in ascending order
	Keys(ctx context.Context) ([]string, error)
}

// KVWriter defines write operations on the key-value store.
type KVWriter interface {
	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// KVStore is the full contract of a storage backend.
type KVStore interface {
	KVReader
	KVWriter
	Close() error
}

// Compile-time verification that *Repository implements KVStore
var _ KVStore = (*Repository)(nil)
