package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSession(Session{
		Mode:         ModeTerminal,
		User:         "alice",
		Ticks:        600,
		ShotsFired:   12,
		ShotsDropped: 1,
		Duration:     10,
	})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveSession() id = %d, expected > 0", id)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}

	got := sessions[0]
	if got.Mode != ModeTerminal || got.User != "alice" {
		t.Errorf("Session = %+v, expected terminal session for alice", got)
	}
	if got.Ticks != 600 || got.ShotsFired != 12 || got.ShotsDropped != 1 || got.Duration != 10 {
		t.Errorf("Session counters = %+v, expected 600/12/1/10", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentSessionsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		if _, err := store.SaveSession(Session{Mode: ModeWindow, Ticks: i * 100}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}

	// Newest first
	if sessions[0].Ticks != 500 || sessions[1].Ticks != 400 || sessions[2].Ticks != 300 {
		t.Errorf("Sessions not in expected order: %v", sessions)
	}
}

func TestStoreUserSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{Mode: ModeSSH, User: "bob", Ticks: 10})
	store.SaveSession(Session{Mode: ModeSSH, User: "carol", Ticks: 20})
	store.SaveSession(Session{Mode: ModeSSH, User: "bob", Ticks: 30})

	sessions, err := store.UserSessions("bob", 0)
	if err != nil {
		t.Fatalf("UserSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions for bob, got %d", len(sessions))
	}
	for _, s := range sessions {
		if s.User != "bob" {
			t.Errorf("UserSessions() returned session for %q", s.User)
		}
	}
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	// Empty store
	totals, err := store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}
	if totals.Sessions != 0 || totals.Ticks != 0 {
		t.Errorf("Totals() = %+v, expected zero", totals)
	}
	if !totals.LastPlayed.IsZero() {
		t.Errorf("LastPlayed = %v, expected zero time", totals.LastPlayed)
	}

	store.SaveSession(Session{Mode: ModeTerminal, Ticks: 100, ShotsFired: 3, Duration: 2})
	store.SaveSession(Session{Mode: ModeWindow, Ticks: 250, ShotsFired: 7, Duration: 4})

	totals, err = store.Totals()
	if err != nil {
		t.Fatalf("Totals() failed: %v", err)
	}

	tests := []struct {
		name     string
		got      int64
		expected int64
	}{
		{"sessions", int64(totals.Sessions), 2},
		{"ticks", totals.Ticks, 350},
		{"shots fired", totals.ShotsFired, 10},
		{"duration", totals.Duration, 6},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("Totals().%s = %d, expected %d", tt.name, tt.got, tt.expected)
		}
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{Mode: ModeTerminal})
	store.SaveSession(Session{Mode: ModeWindow})

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, _ := store.RecentSessions(10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Nested directories are created on demand
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		isZero bool
	}{
		{"sqlite string", "2026-01-02 03:04:05", false},
		{"garbage string", "yesterday", true},
		{"nil", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTime(tt.input)
			if got.IsZero() != tt.isZero {
				t.Errorf("parseTime(%v) = %v, expected zero=%v", tt.input, got, tt.isZero)
			}
		})
	}
}
