package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/todo/internal/database"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "todo.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_GetMissingFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "tasks")
	assert.ErrorIs(t, err, database.ErrKeyNotFound)

	keys, err := s.Keys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestStore_SetGetDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "theme", "light"))
	require.NoError(t, s.Set(ctx, "tasks", "[]"))

	v, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tasks", "theme"}, keys)

	require.NoError(t, s.Delete(ctx, "theme"))
	require.NoError(t, s.Delete(ctx, "theme"))

	_, err = s.Get(ctx, "theme")
	assert.ErrorIs(t, err, database.ErrKeyNotFound)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")
	ctx := context.Background()

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "theme", "light"))
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	defer second.Close()

	v, err := second.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestStore_CorruptFile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	_, err := s.Get(ctx, "tasks")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, database.ErrKeyNotFound)

	// Writes replace the unreadable file instead of failing forever
	require.NoError(t, s.Set(ctx, "tasks", "[]"))
	v, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStore_ConcurrentWritersDoNotLoseKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Separate instances model separate processes sharing one file
			s, err := New(path)
			if !assert.NoError(t, err) {
				return
			}
			defer s.Close()
			assert.NoError(t, s.Set(ctx, string(rune('a'+i)), "x"))
		}(i)
	}
	wg.Wait()

	s, err := New(path)
	require.NoError(t, err)
	defer s.Close()
	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 8)
}

func TestStore_SharedInstanceConcurrentWriters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Set(ctx, fmt.Sprintf("k%02d", i), "v"))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.Keys(ctx)
		}()
	}
	wg.Wait()

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, n)
}

func TestStore_EmptyKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Set(ctx, "", "x"), database.ErrEmptyKey)
	assert.ErrorIs(t, s.Delete(ctx, ""), database.ErrEmptyKey)
	_, err := s.Get(ctx, "")
	assert.ErrorIs(t, err, database.ErrEmptyKey)
}
