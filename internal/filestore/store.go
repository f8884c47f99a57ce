// Package filestore implements the key-value contract on a single JSON file.
// Every operation holds an exclusive advisory lock on "<path>.lock" for its
// full read-modify-write cycle, so separate processes sharing the file
// serialise their writes. Goroutines sharing one Store are serialised by a
// mutex taken before the file lock.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/thenoetrevino/todo/internal/database"
)

const lockRetryDelay = 10 * time.Millisecond

// Store is a file-backed database.KVStore
type Store struct {
	path string

	// mu guards flk: a Flock reports success when it already holds the lock
	mu  sync.Mutex
	flk *flock.Flock
}

// Compile-time verification that *Store implements database.KVStore
var _ database.KVStore = (*Store)(nil)

// New creates a Store persisting to path. The file is created lazily on first write.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("filestore: path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Store{
		path: path,
		flk:  flock.New(path + ".lock"),
	}, nil
}

// Path returns the data file location
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key, or database.ErrKeyNotFound
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", database.ErrEmptyKey
	}

	var value string
	err := s.withLock(ctx, func() error {
		entries, err := s.load()
		if err != nil {
			return err
		}
		v, ok := entries[key]
		if !ok {
			return database.ErrKeyNotFound
		}
		value = v
		return nil
	})
	return value, err
}

// Keys returns every stored key in ascending order
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.withLock(ctx, func() error {
		entries, err := s.load()
		if err != nil {
			return err
		}
		keys = make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil
	})
	return keys, err
}

// Set stores value under key
func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return database.ErrEmptyKey
	}

	return s.withLock(ctx, func() error {
		entries, err := s.load()
		if err != nil {
			// A corrupt file would otherwise block every future write
			slog.Warn("filestore: discarding unreadable data file", "path", s.path, "error", err)
			entries = map[string]string{}
		}
		entries[key] = value
		return s.save(entries)
	})
}

// Delete removes key if present
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return database.ErrEmptyKey
	}

	return s.withLock(ctx, func() error {
		entries, err := s.load()
		if err != nil {
			return err
		}
		if _, ok := entries[key]; !ok {
			return nil
		}
		delete(entries, key)
		return s.save(entries)
	})
}

// Close releases the file lock if held
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flk.Unlock()
}

func (s *Store) withLock(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	locked, err := s.flk.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", s.flk.Path(), err)
	}
	if !locked {
		return fmt.Errorf("failed to lock %s", s.flk.Path())
	}
	defer func() {
		if err := s.flk.Unlock(); err != nil {
			slog.Error("filestore: failed to unlock", "path", s.flk.Path(), "error", err)
		}
	}()
	return fn()
}

// load reads the data file. A missing or empty file is an empty map.
func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	return entries, nil
}

// save writes entries through a temp file and rename so readers never see a partial file
func (s *Store) save(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
