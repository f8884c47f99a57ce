// Package database handles the initialization and connection to the SQLite key-value store
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	_ "modernc.org/sqlite"
)

// Driver names accepted by Open
const (
	// DriverSQLite is the pure-Go modernc driver, always available
	DriverSQLite = "sqlite"
	// DriverSQLite3 is the cgo mattn driver, only registered in cgo builds
	DriverSQLite3 = "sqlite3"
)

// Options controls how the database is opened
type Options struct {
	// Path is the database file path, or ":memory:"
	Path string
	// Driver is one of DriverSQLite or DriverSQLite3. Empty means DriverSQLite.
	Driver string
}

// DefaultPath returns ~/.todo/todo.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".todo", "todo.db"), nil
}

// Open opens (creating if needed) the SQLite database and runs migrations
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DriverSQLite
	}
	if !slices.Contains(sql.Drivers(), driver) {
		return nil, fmt.Errorf("%w: %q", ErrDriverUnavailable, driver)
	}

	dbPath := opts.Path
	if dbPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		dbPath = p
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open(driver, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection; this also keeps
	// an in-memory database alive for the lifetime of the pool
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			closeQuietly(db)
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Debug("database opened", "path", dbPath, "driver", driver)
	return db, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
