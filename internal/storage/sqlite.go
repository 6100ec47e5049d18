// Package storage keeps a log of finished rounds in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
//
// The log lives for the lifetime of the process; nothing is written to disk.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory round log.
type Store struct {
	db *sql.DB
}

// RoundEntry is one finished round.
type RoundEntry struct {
	ID        int64
	Layout    string
	Outcome   string // "won" or "lost"
	Score     int
	Lives     int
	Ticks     int
	CreatedAt time.Time
}

// LayoutStats contains aggregated statistics for one layout.
type LayoutStats struct {
	Layout     string
	Rounds     int
	Wins       int
	BestScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			lives INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(layout, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(e RoundEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO rounds (layout, outcome, score, lives, ticks) VALUES (?, ?, ?, ?, ?)",
		e.Layout, e.Outcome, e.Score, e.Lives, e.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRounds retrieves the best N rounds for the given layout.
// Results are ordered by score descending, then by fewest ticks.
func (s *Store) TopRounds(layout string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, layout, outcome, score, lives, ticks, created_at
		 FROM rounds
		 WHERE layout = ?
		 ORDER BY score DESC, ticks ASC, id ASC
		 LIMIT ?`,
		layout, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Layout, &e.Outcome, &e.Score, &e.Lives, &e.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest score for the given layout.
// Returns 0 if no rounds exist.
func (s *Store) BestScore(layout string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE layout = ?",
		layout,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics for a layout.
func (s *Store) Stats(layout string) (*LayoutStats, error) {
	stats := &LayoutStats{Layout: layout}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0)
		 FROM rounds WHERE layout = ?`,
		layout,
	).Scan(&stats.Rounds, &stats.Wins, &stats.BestScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get layout stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE layout = ? ORDER BY id DESC LIMIT 1`,
		layout,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
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
