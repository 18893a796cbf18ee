// Package ledger provides an append-only history of confirmed sends.
package ledger

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pixelbar/pixeld/internal/color"
)

// Entry represents a single confirmed send.
type Entry struct {
	ID        int64     `json:"id"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Colors    []string  `json:"colors"`
}

// Ledger records confirmed sends and serves recent history.
type Ledger struct {
	db *sql.DB
}

// New creates a new Ledger using the provided database connection
func New(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// RecordSend appends one confirmed send. Implements controller.Recorder.
func (l *Ledger) RecordSend(requestID, source string, gs color.GroupSet) error {
	colorsJSON, err := json.Marshal(gs.Hex())
	if err != nil {
		return fmt.Errorf("failed to marshal colors: %w", err)
	}

	now := time.Now().UTC().Unix()

	_, err = l.db.Exec(`
		INSERT INTO send_history (request_id, timestamp, source, colors)
		VALUES (?, ?, ?, ?)
	`, requestID, now, source, string(colorsJSON))

	return err
}

// Recent returns the most recent entries, newest first.
func (l *Ledger) Recent(limit int) ([]*Entry, error) {
	rows, err := l.db.Query(`
		SELECT id, request_id, timestamp, source, colors
		FROM send_history
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		var timestamp int64
		var colorsStr string

		if err := rows.Scan(&entry.ID, &entry.RequestID, &timestamp, &entry.Source, &colorsStr); err != nil {
			return nil, err
		}

		entry.Timestamp = time.Unix(timestamp, 0).UTC()
		if err := json.Unmarshal([]byte(colorsStr), &entry.Colors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal colors: %w", err)
		}

		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

// DeleteOlderThan removes entries older than the specified duration (retention policy)
func (l *Ledger) DeleteOlderThan(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention).Unix()
	result, err := l.db.Exec(`
		DELETE FROM send_history WHERE timestamp < ?
	`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
