// Package storage provides SQLite-based persistence for match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/lightcycle/internal/multiplayer"
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord represents a single finished match.
type MatchRecord struct {
	ID           int64
	MatchID      string
	Mode         string // "vs_cpu", "local_duel", "demo"
	Difficulty   string // AI tier for CPU matches, empty for duels
	Winner       string // "player1", "player2", "cpu" or "" for a draw
	Draw         bool
	DurationTick int
	Session      string // SSH session user, empty for local play
	CreatedAt    time.Time
}

// ModeStats contains aggregated statistics for one match mode.
type ModeStats struct {
	Mode        string
	Matches     int
	Player1Wins int
	Player2Wins int
	Draws       int
	LongestTick int
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			winner TEXT NOT NULL DEFAULT '',
			draw INTEGER NOT NULL DEFAULT 0,
			duration_ticks INTEGER NOT NULL DEFAULT 0,
			session TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode);
		CREATE INDEX IF NOT EXISTS idx_matches_session ON matches(session);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match. Returns the ID of the inserted row.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (match_id, mode, difficulty, winner, draw, duration_ticks, session)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.MatchID, rec.Mode, rec.Difficulty, rec.Winner,
		boolToInt(rec.Draw), rec.DurationTick, rec.Session,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, mode, difficulty, winner, draw, duration_ticks, session, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// MatchesByMode retrieves matches of a specific mode, newest first.
func (s *Store) MatchesByMode(mode string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, mode, difficulty, winner, draw, duration_ticks, session, created_at
		 FROM matches
		 WHERE mode = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// SessionMatches retrieves the match history for a specific SSH session user.
func (s *Store) SessionMatches(session string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, mode, difficulty, winner, draw, duration_ticks, session, created_at
		 FROM matches
		 WHERE session = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		session, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session matches: %w", err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

// StatsByMode retrieves aggregated statistics for one match mode.
func (s *Store) StatsByMode(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'player1' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner IN ('player2', 'cpu') THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(draw), 0),
		        COALESCE(MAX(duration_ticks), 0)
		 FROM matches WHERE mode = ?`,
		mode,
	).Scan(&stats.Matches, &stats.Player1Wins, &stats.Player2Wins, &stats.Draws, &stats.LongestTick)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM matches WHERE mode = ? ORDER BY created_at DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseCreatedAt(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every mode that has recorded matches.
func (s *Store) AllStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode,
		        COUNT(*),
		        SUM(CASE WHEN winner = 'player1' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN winner IN ('player2', 'cpu') THEN 1 ELSE 0 END),
		        SUM(draw),
		        MAX(duration_ticks),
		        MAX(created_at)
		 FROM matches
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.Mode, &m.Matches, &m.Player1Wins, &m.Player2Wins, &m.Draws, &m.LongestTick, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseCreatedAt(lastPlayed)
		stats[m.Mode] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearMatches deletes all matches for the given mode.
func (s *Store) ClearMatches(mode string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// SaveMatchResult implements multiplayer.MatchResultSaver.
// This adapter lets the platform save match results without a direct
// dependency on storage types.
func (s *Store) SaveMatchResult(data multiplayer.MatchResultData) error {
	rec := MatchRecord{
		MatchID:      data.MatchID,
		Mode:         data.Mode,
		Difficulty:   data.Difficulty,
		Winner:       data.Winner,
		Draw:         data.Draw,
		DurationTick: data.DurationTick,
		Session:      data.Session,
	}
	_, err := s.SaveMatch(rec)
	return err
}

// Ensure Store implements MatchResultSaver
var _ multiplayer.MatchResultSaver = (*Store)(nil)

// scanMatches reads match rows from a query result.
func scanMatches(rows *sql.Rows) ([]MatchRecord, error) {
	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var draw int
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.MatchID, &rec.Mode, &rec.Difficulty,
			&rec.Winner, &draw, &rec.DurationTick, &rec.Session, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Draw = draw != 0
		rec.CreatedAt = parseCreatedAt(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseCreatedAt handles the driver returning either time.Time or a string.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
