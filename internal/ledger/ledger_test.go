package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pixelbar/pixeld/internal/color"
	"github.com/pixelbar/pixeld/internal/db"
)

func openTestLedger(t *testing.T) *Ledger {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "pixeld.sqlite"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return New(database.DB)
}

func TestRecordAndRecent(t *testing.T) {
	l := openTestLedger(t)

	gs1, err := color.ParseGroups([]string{"7f"})
	if err != nil {
		t.Fatalf("ParseGroups returned error: %v", err)
	}
	gs2, err := color.ParseGroups([]string{"ff0000", "00ff00", "0000ff", "000000ff"})
	if err != nil {
		t.Fatalf("ParseGroups returned error: %v", err)
	}

	if err := l.RecordSend("req-1", "cli", gs1); err != nil {
		t.Fatalf("RecordSend returned error: %v", err)
	}
	if err := l.RecordSend("req-2", "api/v2", gs2); err != nil {
		t.Fatalf("RecordSend returned error: %v", err)
	}

	entries, err := l.Recent(10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Newest first
	if entries[0].RequestID != "req-2" {
		t.Errorf("entries[0].RequestID = %q, want req-2", entries[0].RequestID)
	}
	if entries[0].Source != "api/v2" {
		t.Errorf("entries[0].Source = %q, want api/v2", entries[0].Source)
	}
	if len(entries[0].Colors) != 4 || entries[0].Colors[0] != "ff000000" {
		t.Errorf("entries[0].Colors = %v", entries[0].Colors)
	}
	if entries[1].Colors[0] != "7f7f7f7f" {
		t.Errorf("entries[1].Colors = %v", entries[1].Colors)
	}
}

func TestRecentLimit(t *testing.T) {
	l := openTestLedger(t)

	gs, _ := color.ParseGroups([]string{"ff"})
	for i := 0; i < 5; i++ {
		if err := l.RecordSend("req", "cli", gs); err != nil {
			t.Fatalf("RecordSend returned error: %v", err)
		}
	}

	entries, err := l.Recent(3)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestDeleteOlderThan(t *testing.T) {
	l := openTestLedger(t)

	gs, _ := color.ParseGroups([]string{"ff"})
	if err := l.RecordSend("req", "cli", gs); err != nil {
		t.Fatalf("RecordSend returned error: %v", err)
	}

	// Everything is newer than 1h, nothing is removed.
	deleted, err := l.DeleteOlderThan(time.Hour)
	if err != nil {
		t.Fatalf("DeleteOlderThan returned error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0", deleted)
	}

	// A zero retention removes the entry.
	deleted, err = l.DeleteOlderThan(-time.Second)
	if err != nil {
		t.Fatalf("DeleteOlderThan returned error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}
