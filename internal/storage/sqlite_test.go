package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testRecord(seed int64, placed int) SessionRecord {
	return SessionRecord{
		Seed:          seed,
		Theme:         "Azure Coast",
		Ticks:         3600,
		BlocksPlaced:  placed,
		BlocksRemoved: 2,
		MaxDistance:   41.5,
		CreatedAt:     time.Now(),
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dirs", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	store.Close()
}

func TestSaveAndRetrieveSessions(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 3; i++ {
		if _, err := store.SaveSession(testRecord(int64(i), i*10)); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}

	// Newest first: the last save carries seed 2.
	if sessions[0].Seed != 2 {
		t.Errorf("newest session seed = %d, want 2", sessions[0].Seed)
	}
	if sessions[0].Theme != "Azure Coast" {
		t.Errorf("Theme = %q", sessions[0].Theme)
	}
	if sessions[0].Ticks != 3600 {
		t.Errorf("Ticks = %d, want 3600", sessions[0].Ticks)
	}
	if sessions[0].MaxDistance != 41.5 {
		t.Errorf("MaxDistance = %v, want 41.5", sessions[0].MaxDistance)
	}
	if sessions[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not recorded")
	}
}

func TestRecentSessionsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSession(testRecord(int64(i), i)); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("got %d sessions, want 2", len(sessions))
	}
}

func TestAllTimeTotals(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty database aggregates to zero.
	totals, err := store.AllTime()
	if err != nil {
		t.Fatalf("AllTime() on empty store failed: %v", err)
	}
	if totals.Sessions != 0 {
		t.Errorf("empty store reports %d sessions", totals.Sessions)
	}

	if _, err := store.SaveSession(testRecord(1, 10)); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(testRecord(2, 30)); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	totals, err = store.AllTime()
	if err != nil {
		t.Fatalf("AllTime() failed: %v", err)
	}
	if totals.Sessions != 2 {
		t.Errorf("Sessions = %d, want 2", totals.Sessions)
	}
	if totals.BlocksPlaced != 40 {
		t.Errorf("BlocksPlaced = %d, want 40", totals.BlocksPlaced)
	}
	if totals.BlocksRemoved != 4 {
		t.Errorf("BlocksRemoved = %d, want 4", totals.BlocksRemoved)
	}
	if totals.Ticks != 7200 {
		t.Errorf("Ticks = %d, want 7200", totals.Ticks)
	}
}
