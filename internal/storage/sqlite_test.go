package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/lightcycle/internal/multiplayer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

func TestSaveAndRetrieveMatches(t *testing.T) {
	store := openTestStore(t)

	matches := []MatchRecord{
		{MatchID: "m1", Mode: "vs_cpu", Difficulty: "medium", Winner: "player1", DurationTick: 900},
		{MatchID: "m2", Mode: "vs_cpu", Difficulty: "hard", Winner: "cpu", DurationTick: 1400},
		{MatchID: "m3", Mode: "local_duel", Draw: true, DurationTick: 600},
	}
	for _, rec := range matches {
		if _, err := store.SaveMatch(rec); err != nil {
			t.Fatalf("SaveMatch(%s) failed: %v", rec.MatchID, err)
		}
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 matches, got %d", len(recent))
	}

	// Newest first
	if recent[0].MatchID != "m3" {
		t.Errorf("Expected newest match first, got %s", recent[0].MatchID)
	}
	if !recent[0].Draw {
		t.Error("Draw flag should round-trip")
	}

	byMode, err := store.MatchesByMode("vs_cpu", 10)
	if err != nil {
		t.Fatalf("MatchesByMode() failed: %v", err)
	}
	if len(byMode) != 2 {
		t.Errorf("Expected 2 vs_cpu matches, got %d", len(byMode))
	}
	for _, rec := range byMode {
		if rec.Mode != "vs_cpu" {
			t.Errorf("Mode filter leaked: got %s", rec.Mode)
		}
	}
}

func TestDuplicateMatchIDRejected(t *testing.T) {
	store := openTestStore(t)

	rec := MatchRecord{MatchID: "dup", Mode: "vs_cpu", Winner: "player1"}
	if _, err := store.SaveMatch(rec); err != nil {
		t.Fatalf("First SaveMatch() failed: %v", err)
	}
	if _, err := store.SaveMatch(rec); err == nil {
		t.Error("Expected unique constraint error on duplicate match_id")
	}
}

func TestSessionMatches(t *testing.T) {
	store := openTestStore(t)

	records := []MatchRecord{
		{MatchID: "a1", Mode: "vs_cpu", Winner: "player1", Session: "alice"},
		{MatchID: "a2", Mode: "vs_cpu", Winner: "cpu", Session: "alice"},
		{MatchID: "b1", Mode: "vs_cpu", Winner: "player1", Session: "bob"},
	}
	for _, rec := range records {
		if _, err := store.SaveMatch(rec); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	alice, err := store.SessionMatches("alice", 10)
	if err != nil {
		t.Fatalf("SessionMatches() failed: %v", err)
	}
	if len(alice) != 2 {
		t.Errorf("Expected 2 matches for alice, got %d", len(alice))
	}
}

func TestStatsByMode(t *testing.T) {
	store := openTestStore(t)

	records := []MatchRecord{
		{MatchID: "s1", Mode: "vs_cpu", Winner: "player1", DurationTick: 500},
		{MatchID: "s2", Mode: "vs_cpu", Winner: "player1", DurationTick: 800},
		{MatchID: "s3", Mode: "vs_cpu", Winner: "cpu", DurationTick: 2100},
		{MatchID: "s4", Mode: "vs_cpu", Draw: true, DurationTick: 1200},
		{MatchID: "s5", Mode: "local_duel", Winner: "player2", DurationTick: 300},
	}
	for _, rec := range records {
		if _, err := store.SaveMatch(rec); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}

	stats, err := store.StatsByMode("vs_cpu")
	if err != nil {
		t.Fatalf("StatsByMode() failed: %v", err)
	}
	if stats.Matches != 4 {
		t.Errorf("Expected 4 matches, got %d", stats.Matches)
	}
	if stats.Player1Wins != 2 {
		t.Errorf("Expected 2 player 1 wins, got %d", stats.Player1Wins)
	}
	// CPU wins count toward the player 2 slot
	if stats.Player2Wins != 1 {
		t.Errorf("Expected 1 player 2 win, got %d", stats.Player2Wins)
	}
	if stats.Draws != 1 {
		t.Errorf("Expected 1 draw, got %d", stats.Draws)
	}
	if stats.LongestTick != 2100 {
		t.Errorf("Expected longest match 2100 ticks, got %d", stats.LongestTick)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 modes, got %d", len(all))
	}
	if duel := all["local_duel"]; duel == nil || duel.Player2Wins != 1 {
		t.Errorf("Unexpected local_duel stats: %+v", duel)
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		rec := MatchRecord{MatchID: fmt.Sprintf("c%d", i), Mode: "demo", Winner: "player1"}
		if _, err := store.SaveMatch(rec); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}
	if _, err := store.SaveMatch(MatchRecord{MatchID: "keep", Mode: "vs_cpu", Winner: "player1"}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	if err := store.ClearMatches("demo"); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	demo, err := store.MatchesByMode("demo", 10)
	if err != nil {
		t.Fatalf("MatchesByMode() failed: %v", err)
	}
	if len(demo) != 0 {
		t.Errorf("Expected demo matches cleared, got %d", len(demo))
	}

	kept, err := store.MatchesByMode("vs_cpu", 10)
	if err != nil {
		t.Fatalf("MatchesByMode() failed: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("Other modes should be untouched, got %d", len(kept))
	}
}

func TestSaveMatchResultAdapter(t *testing.T) {
	store := openTestStore(t)

	data := multiplayer.MatchResultData{
		MatchID:      "adapter-1",
		Mode:         "vs_cpu",
		Difficulty:   "hard",
		Winner:       "cpu",
		DurationTick: 777,
		Session:      "carol",
	}
	if err := store.SaveMatchResult(data); err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}

	matches, err := store.RecentMatches(1)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(matches))
	}
	rec := matches[0]
	if rec.MatchID != "adapter-1" || rec.Winner != "cpu" || rec.Difficulty != "hard" ||
		rec.DurationTick != 777 || rec.Session != "carol" {
		t.Errorf("Saved record does not match input: %+v", rec)
	}
}
