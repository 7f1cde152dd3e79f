// Package sqlite implements the repository interfaces using SQLite as the
// storage backend.
//
// WHY SQLITE FOR A "THROWAWAY" STORE?
// Persistence here is a placeholder to be replaced with a real database
// later. We still go through database/sql rather than raw maps because:
//   - the default DSN is ":memory:", so nothing survives a restart (same
//     throwaway semantics as in-memory maps)
//   - AUTOINCREMENT gives us the monotonic, never-reused integer ids the
//     scan and activity tables need, without hand-rolled counters
//   - database/sql serializes access, so concurrent requests can't corrupt
//     the store — maps would need a mutex
//   - pointing DB_PATH at a file upgrades to durable storage with zero code
//     changes
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which needs a C compiler and makes
// cross-compilation painful. modernc.org/sqlite is a pure Go translation of
// SQLite — works everywhere Go works.
package sqlite

import (
	"database/sql"
	"fmt"

	// Side-effect import: registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and provides the repository methods.
type DB struct {
	conn *sql.DB
}

// New creates a SQLite connection and runs migrations.
//
// dsn examples:
//   - ":memory:"        → in-memory database (the default; lost on close)
//   - "data/farm.db"    → file-based database (persistent)
func New(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// sql.Open doesn't actually connect — Ping forces the first connection
	// so a bad path surfaces here instead of on the first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// An in-memory SQLite database lives in a single connection. If the pool
	// opened a second one it would see an empty schema, so cap it at 1.
	// File-backed databases also behave fine with one writer connection at
	// this traffic level.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. For ":memory:" this discards the store.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the tables. CREATE TABLE IF NOT EXISTS keeps this safe to
// run on an existing file database.
//
// Note the deliberate absence of a foreign key from disease_scans/activities
// to users: the API accepts caller-supplied user ids without checking they
// resolve to a registered account.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id         TEXT PRIMARY KEY,
			email      TEXT NOT NULL DEFAULT '',
			first_name TEXT NOT NULL DEFAULT '',
			last_name  TEXT NOT NULL DEFAULT '',
			location   TEXT NOT NULL DEFAULT '',
			language   TEXT NOT NULL DEFAULT 'en',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	// AUTOINCREMENT (not plain INTEGER PRIMARY KEY) guarantees ids are never
	// reused even after a delete.
	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS disease_scans (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id    TEXT NOT NULL,
			image_data TEXT NOT NULL,
			diagnosis  TEXT NOT NULL DEFAULT '',
			confidence INTEGER NOT NULL DEFAULT 0,
			remedies   TEXT NOT NULL DEFAULT '[]',
			scan_date  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_disease_scans_user_id ON disease_scans(user_id);
	`)
	if err != nil {
		return fmt.Errorf("creating disease_scans table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS activities (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id     TEXT NOT NULL,
			type        TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			icon        TEXT NOT NULL DEFAULT '',
			created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_activities_user_id ON activities(user_id);
		CREATE INDEX IF NOT EXISTS idx_activities_created_at ON activities(created_at);
	`)
	if err != nil {
		return fmt.Errorf("creating activities table: %w", err)
	}

	return nil
}
