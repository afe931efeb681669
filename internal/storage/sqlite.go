// Package storage provides SQLite-based persistence for session
// statistics: how long each session ran, what was built, how far the
// player roamed. It deliberately stores no world data — a session record
// cannot reconstruct a world.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SessionRecord summarizes one finished play session.
type SessionRecord struct {
	ID            int64
	Seed          int64
	Theme         string
	Ticks         uint64
	BlocksPlaced  int
	BlocksRemoved int
	MaxDistance   float64 // farthest distance from spawn, in tiles
	CreatedAt     time.Time
}

// Totals aggregates all recorded sessions.
type Totals struct {
	Sessions      int
	Ticks         uint64
	BlocksPlaced  int
	BlocksRemoved int
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			theme TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			blocks_placed INTEGER NOT NULL DEFAULT 0,
			blocks_removed INTEGER NOT NULL DEFAULT 0,
			max_distance REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_seed ON sessions(seed);
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

// SaveSession records a finished session. Returns the inserted row ID.
func (s *Store) SaveSession(rec SessionRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (seed, theme, ticks, blocks_placed, blocks_removed, max_distance)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Seed, rec.Theme, rec.Ticks, rec.BlocksPlaced, rec.BlocksRemoved, rec.MaxDistance,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSessions retrieves the latest N session records, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, theme, ticks, blocks_placed, blocks_removed, max_distance, created_at
		 FROM sessions
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionRecord
	for rows.Next() {
		var e SessionRecord
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Seed, &e.Theme, &e.Ticks,
			&e.BlocksPlaced, &e.BlocksRemoved, &e.MaxDistance, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// AllTime aggregates counters across every recorded session.
func (s *Store) AllTime() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(ticks), 0),
		        COALESCE(SUM(blocks_placed), 0),
		        COALESCE(SUM(blocks_removed), 0)
		 FROM sessions`,
	).Scan(&t.Sessions, &t.Ticks, &t.BlocksPlaced, &t.BlocksRemoved)
	if err != nil {
		return t, fmt.Errorf("storage: cannot aggregate sessions: %w", err)
	}
	return t, nil
}
