// Package db provides the SQLite connection and schema for pixeld.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite database connection
type DB struct {
	*sql.DB
}

// Open opens the database and initializes the schema
func Open(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DB{db}, nil
}

// initSchema creates all required tables
func initSchema(db *sql.DB) error {
	// Send history - append-only audit of every frame confirmed by the
	// transport. Never used to restore state; the last-color state lives
	// in memory only.
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS send_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			source TEXT NOT NULL,
			colors TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_send_history_ts ON send_history(timestamp);
	`)
	if err != nil {
		return fmt.Errorf("failed to create send_history table: %w", err)
	}

	return nil
}
