// Package storage provides SQLite-based persistence for match history.
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

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID         int64
	Mode       string
	Difficulty string
	Players    int
	Name       string
	Score      int // Shared session score
	Score1     int
	Score2     int
	Level      int
	Length     int // P1 length at the end
	FoodEaten  int
	Winner     string // "P1", "P2" or empty
	EndReason  string // "wall", "self", "opponent", "obstacle", "quit"
	Duration   int    // Duration in seconds
	PlayedAt   time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			players INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			length INTEGER NOT NULL DEFAULT 0,
			food_eaten INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			end_reason TEXT NOT NULL DEFAULT '',
			duration_secs INTEGER NOT NULL DEFAULT 0,
			played_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode, difficulty);
		CREATE INDEX IF NOT EXISTS idx_matches_top ON matches(mode, difficulty, score DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_played ON matches(played_at DESC);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	if m.PlayedAt.IsZero() {
		m.PlayedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO matches (mode, difficulty, players, name, score, score1, score2,
			level, length, food_eaten, winner, end_reason, duration_secs, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Mode, m.Difficulty, m.Players, m.Name, m.Score, m.Score1, m.Score2,
		m.Level, m.Length, m.FoodEaten, m.Winner, m.EndReason, m.Duration, m.PlayedAt.Unix(),
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

const matchColumns = `id, mode, difficulty, players, name, score, score1, score2,
	level, length, food_eaten, winner, end_reason, duration_secs, played_at`

// scanMatches reads every row of a matches query.
func scanMatches(rows *sql.Rows) ([]MatchRecord, error) {
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		var m MatchRecord
		var playedAt int64
		if err := rows.Scan(&m.ID, &m.Mode, &m.Difficulty, &m.Players, &m.Name, &m.Score,
			&m.Score1, &m.Score2, &m.Level, &m.Length, &m.FoodEaten, &m.Winner,
			&m.EndReason, &m.Duration, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.PlayedAt = time.Unix(playedAt, 0)
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// MatchByID retrieves a single match.
func (s *Store) MatchByID(id int64) (*MatchRecord, error) {
	rows, err := s.db.Query(`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}

	matches, err := scanMatches(rows)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY played_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	return scanMatches(rows)
}

// TopMatches retrieves the best matches for a mode and difficulty.
// An empty difficulty matches all difficulties.
func (s *Store) TopMatches(mode, difficulty string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE mode = ? AND (? = '' OR difficulty = ?)
		 ORDER BY score DESC, played_at ASC
		 LIMIT ?`,
		mode, difficulty, difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top matches: %w", err)
	}
	return scanMatches(rows)
}

// HighScore returns the best score for a mode and difficulty.
// Returns 0 if no matches exist.
func (s *Store) HighScore(mode, difficulty string) (int, error) {
	var high sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(score) FROM matches WHERE mode = ? AND difficulty = ?`,
		mode, difficulty,
	).Scan(&high)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get high score: %w", err)
	}
	return int(high.Int64), nil
}

// ClearMatches deletes all matches of a mode. An empty mode clears all.
func (s *Store) ClearMatches(mode string) error {
	_, err := s.db.Exec(`DELETE FROM matches WHERE ? = '' OR mode = ?`, mode, mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalFood  int64
	TotalTime  time.Duration
	LastPlayed time.Time
}

// Stats retrieves statistics for every mode that has been played.
func (s *Store) Stats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), SUM(food_eaten), SUM(duration_secs), MAX(played_at)
		 FROM matches
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var st ModeStats
		var secs, lastPlayed int64
		if err := rows.Scan(&st.Mode, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalFood, &secs, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.TotalTime = time.Duration(secs) * time.Second
		st.LastPlayed = time.Unix(lastPlayed, 0)
		stats[st.Mode] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
