package database

import (
	"context"
	"database/sql"
)

// Repository is the SQLite-backed KVStore.
// It owns the database connection and closes it on Close.
type Repository struct {
	*KVRepo
	db *sql.DB
}

// NewRepository creates a new Repository wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		KVRepo: &KVRepo{db: db},
		db:     db,
	}
}

// OpenRepository opens the database described by opts and wraps it in a Repository
func OpenRepository(ctx context.Context, opts Options) (*Repository, error) {
	db, err := Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	return NewRepository(db), nil
}

// Close closes the underlying database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
