package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/todo/internal/database"
)

// SetupTestRepository opens an in-memory SQLite key-value store that is closed on cleanup
func SetupTestRepository(t *testing.T) *database.Repository {
	t.Helper()
	repo, err := database.OpenRepository(context.Background(), database.Options{Path: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// SetupTestRepositoryFile opens a file-backed store under t.TempDir and returns its path.
// The caller owns closing the returned repository.
func SetupTestRepositoryFile(t *testing.T) (*database.Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo-test.db")
	repo, err := database.OpenRepository(context.Background(), database.Options{Path: path})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return repo, path
}
