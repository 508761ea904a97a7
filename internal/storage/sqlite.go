// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one finished (won, lost or abandoned) game.
type Result struct {
	ID        int64
	Variant   string
	Score     int
	MaxTile   int
	Won       bool
	Moves     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It expands a leading ~, creates the parent directories if needed and runs
// migrations.
func Open(dbPath string) (*Store, error) {
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(variant, score DESC);
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

// SaveResult records a finished game and returns the ID of the inserted row.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Variant == "" {
		return 0, errors.New("storage: result has no variant")
	}

	result, err := s.db.Exec(
		"INSERT INTO results (variant, score, max_tile, won, moves) VALUES (?, ?, ?, ?, ?)",
		r.Variant, r.Score, r.MaxTile, r.Won, r.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N results for the given variant, ordered by
// score descending. Ties keep insertion order. A non-positive limit means 10.
func (s *Store) TopScores(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, score, max_tile, won, moves, created_at
		 FROM results
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Score, &r.MaxTile, &r.Won, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// HighScore returns the highest score for the given variant.
// Returns 0 if no results exist.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all results for the given variant.
func (s *Store) ClearScores(variant string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant    string
	Games      int
	Wins       int
	HighScore  int
	BestTile   int
	AvgScore   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a specific variant. A variant
// with no results yields zero counts.
func (s *Store) Stats(variant string) (VariantStats, error) {
	stats := VariantStats{Variant: variant}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(MAX(max_tile), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM results WHERE variant = ?`,
		variant,
	).Scan(&stats.Games, &stats.Wins, &stats.HighScore, &stats.BestTile, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime accepts the forms the driver returns for DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse("2006-01-02 15:04:05", string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
