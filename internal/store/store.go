// Package store provides SQLite-backed persistence for jobsummary: the
// persisted UI preferences and a local workload catalog.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a keyed row does not exist.
var ErrNotFound = errors.New("not found")

// Store provides access to the jobsummary SQLite database.
type Store struct {
	db *sql.DB
}

// New creates a new Store and runs migrations.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ui_prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS workloads (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'service',
		parent_id TEXT,
		periodic INTEGER NOT NULL DEFAULT 0,
		parameterized INTEGER NOT NULL DEFAULT 0,
		has_children INTEGER NOT NULL DEFAULT 0,
		queued_allocs INTEGER NOT NULL DEFAULT 0,
		starting_allocs INTEGER NOT NULL DEFAULT 0,
		running_allocs INTEGER NOT NULL DEFAULT 0,
		complete_allocs INTEGER NOT NULL DEFAULT 0,
		failed_allocs INTEGER NOT NULL DEFAULT 0,
		lost_allocs INTEGER NOT NULL DEFAULT 0,
		pending_children INTEGER NOT NULL DEFAULT 0,
		running_children INTEGER NOT NULL DEFAULT 0,
		dead_children INTEGER NOT NULL DEFAULT 0,
		updated_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_workloads_type ON workloads(type);
	`

	_, err := s.db.Exec(schema)
	return err
}
