// Package storage keeps the session leaderboard in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk: the board lives as long as the
// process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultLimit is the number of runs TopRuns returns when limit <= 0.
const DefaultLimit = 10

// Store manages the in-memory leaderboard database.
type Store struct {
	db *sql.DB
}

// Run is one finished play-through.
type Run struct {
	ID        int64
	Player    string // "local" or the SSH user name
	Pack      string
	Score     int // Items collected
	Phase     int // 1-based phase the run ended in
	Reason    string
	CreatedAt time.Time
}

// PackStats contains aggregated statistics for a level pack.
type PackStats struct {
	Pack       string
	Runs       int
	BestScore  int
	AvgScore   float64
	Finished   int // Runs that crossed every phase
	LastPlayed time.Time
}

// OpenMemory creates an empty in-memory leaderboard.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			pack TEXT NOT NULL,
			score INTEGER NOT NULL,
			phase INTEGER NOT NULL,
			reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(pack, score DESC, phase DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The board is lost.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (player, pack, score, phase, reason) VALUES (?, ?, ?, ?, ?)",
		r.Player, r.Pack, r.Score, r.Phase, r.Reason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best runs for the given pack.
// Results are ordered by score, then phase reached; earlier runs win ties.
func (s *Store) TopRuns(pack string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, player, pack, score, phase, reason, created_at
		 FROM runs
		 WHERE pack = ?
		 ORDER BY score DESC, phase DESC, id ASC
		 LIMIT ?`,
		pack, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Pack, &r.Score, &r.Phase, &r.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Stats retrieves aggregated statistics for a pack. finishedReason is the
// Reason value of runs that crossed every phase.
func (s *Store) Stats(pack, finishedReason string) (*PackStats, error) {
	stats := &PackStats{Pack: pack}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(CASE WHEN reason = ? THEN 1 ELSE 0 END), 0), MAX(created_at)
		 FROM runs WHERE pack = ?`,
		finishedReason, pack,
	).Scan(&stats.Runs, &stats.BestScore, &stats.AvgScore, &stats.Finished, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get pack stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
