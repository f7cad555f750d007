package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const (
	entriesTable   = "entries"
	snapshotsTable = "snapshots"
)

// schema holds the DDL for every table the store owns. Statements are
// idempotent and run on every Open.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS entries (
		storage_key TEXT PRIMARY KEY,
		value       TEXT NOT NULL,
		updated_at  INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS snapshots (
		id          TEXT PRIMARY KEY,
		storage_key TEXT NOT NULL,
		reason      TEXT NOT NULL DEFAULT '',
		created_at  INTEGER NOT NULL,
		data        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS snapshots_key_created ON snapshots (storage_key, created_at)`,
}

// Store owns the SQLite database that backs every local collection.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	for _, stmt := range schema {
		if err := drv.Exec(context.Background(), stmt, []any{}, nil); err != nil {
			drv.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &Store{db: db, drv: drv}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// EntryRepo returns an EntryRepo backed by this store.
func (s *Store) EntryRepo() EntryRepo {
	return &entryRepo{drv: s.drv}
}

// SnapshotRepo returns a SnapshotRepo backed by this store.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{drv: s.drv}
}

// builder returns a query builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. KUPU_DB environment variable
// 2. $XDG_DATA_HOME/kupu/kupu.db
// 3. ~/.local/share/kupu/kupu.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("KUPU_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "kupu", "kupu.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
