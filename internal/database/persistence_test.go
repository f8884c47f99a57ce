package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

// TestValuesSurviveRestart verifies values persist across close and reopen
func TestValuesSurviveRestart(t *testing.T) {
	db, dbPath := setupTestDBFile(t)
	ctx := context.Background()

	repo := NewRepository(db)
	blob := `[{"id":"1","title":"Buy milk","description":"","completed":false}]`
	if err := repo.Set(ctx, "@ToDoApp:tasks", blob); err != nil {
		t.Fatalf("Failed to set tasks: %v", err)
	}
	if err := repo.Set(ctx, "@ToDoApp:theme", "light"); err != nil {
		t.Fatalf("Failed to set theme: %v", err)
	}

	db = closeAndReopenDB(t, db, dbPath)
	defer db.Close()
	repo = NewRepository(db)

	got, err := repo.Get(ctx, "@ToDoApp:tasks")
	if err != nil {
		t.Fatalf("Failed to get tasks after restart: %v", err)
	}
	if got != blob {
		t.Errorf("Expected blob %q after restart, got %q", blob, got)
	}

	theme, err := repo.Get(ctx, "@ToDoApp:theme")
	if err != nil {
		t.Fatalf("Failed to get theme after restart: %v", err)
	}
	if theme != "light" {
		t.Errorf("Expected theme 'light' after restart, got %q", theme)
	}
}

// TestMigrationsAreIdempotent verifies reopening does not reapply migrations
func TestMigrationsAreIdempotent(t *testing.T) {
	db, dbPath := setupTestDBFile(t)
	db = closeAndReopenDB(t, db, dbPath)
	defer db.Close()

	var count int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count migrations: %v", err)
	}
	if count != len(migrations) {
		t.Errorf("Expected %d applied migrations, got %d", len(migrations), count)
	}

	version, err := schemaVersion(context.Background(), db)
	if err != nil {
		t.Fatalf("Failed to read schema version: %v", err)
	}
	if version != migrations[len(migrations)-1].version {
		t.Errorf("Expected schema version %d, got %d", migrations[len(migrations)-1].version, version)
	}
}

// TestOpenUnknownDriver verifies Open rejects drivers that are not registered
func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Options{Path: ":memory:", Driver: "postgres"})
	if !errors.Is(err, ErrDriverUnavailable) {
		t.Errorf("Expected ErrDriverUnavailable, got %v", err)
	}
}

// TestOpenCreatesParentDirectory verifies the database directory is created on demand
func TestOpenCreatesParentDirectory(t *testing.T) {
	dbPath := t.TempDir() + "/nested/dir/todo.db"
	db, err := Open(context.Background(), Options{Path: dbPath})
	if err != nil {
		t.Fatalf("Failed to open database in nested dir: %v", err)
	}
	defer db.Close()

	var name string
	err = db.QueryRowContext(context.Background(),
		"SELECT name FROM sqlite_master WHERE type='table' AND name='kv'").Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		t.Fatal("kv table was not created")
	}
	if err != nil {
		t.Fatalf("Failed to inspect schema: %v", err)
	}
}
