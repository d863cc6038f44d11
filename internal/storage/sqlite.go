// Package storage provides SQLite-based persistence for Forest Escape runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/forest-escape/internal/forest"
)

// DefaultLimit is the number of rows TopScores returns for a non-positive limit.
const DefaultLimit = 10

// Store manages the SQLite database connection for score persistence.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

var _ forest.Recorder = (*Store)(nil)

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID           int64
	RunID        string
	PlayerName   string
	LevelName    string
	Mushrooms    int
	ElapsedTicks int
	Outcome      forest.Outcome
	CreatedAt    time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelName     string
	Runs          int
	Clears        int
	BestMushrooms int
	FastestClear  int // elapsed ticks of the quickest clear, 0 if never cleared
	LastPlayed    time.Time
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player_name TEXT NOT NULL,
			level_name TEXT NOT NULL,
			mushrooms INTEGER NOT NULL,
			elapsed_ticks INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_level ON scores(level_name);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(level_name, mushrooms DESC, elapsed_ticks ASC);
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

// Record stores a finished run under a freshly generated run ID.
func (s *Store) Record(result forest.RunResult) error {
	_, err := s.SaveScore(uuid.NewString(), result)
	return err
}

// SaveScore stores a finished run under runID.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(runID string, result forest.RunResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO scores (run_id, player_name, level_name, mushrooms, elapsed_ticks, outcome)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, result.PlayerName, result.LevelName, result.Mushrooms, result.ElapsedTicks, string(result.Outcome),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best runs for a level: most mushrooms first,
// then fewest ticks, then the earliest recorded.
func (s *Store) TopScores(levelName string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, player_name, level_name, mushrooms, elapsed_ticks, outcome, created_at
		 FROM scores
		 WHERE level_name = ?
		 ORDER BY mushrooms DESC, elapsed_ticks ASC, id ASC
		 LIMIT ?`,
		levelName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var outcome string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.PlayerName, &e.LevelName,
			&e.Mushrooms, &e.ElapsedTicks, &outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Outcome = forest.Outcome(outcome)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ScoreByRunID returns the run stored under runID, or nil if there is none.
func (s *Store) ScoreByRunID(runID string) (*ScoreEntry, error) {
	var e ScoreEntry
	var outcome string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, run_id, player_name, level_name, mushrooms, elapsed_ticks, outcome, created_at
		 FROM scores
		 WHERE run_id = ?`,
		runID,
	).Scan(&e.ID, &e.RunID, &e.PlayerName, &e.LevelName, &e.Mushrooms, &e.ElapsedTicks, &outcome, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	e.Outcome = forest.Outcome(outcome)
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// Levels returns the names of all levels with at least one recorded run, sorted.
func (s *Store) Levels() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT level_name FROM scores ORDER BY level_name`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return names, nil
}

// LevelStats retrieves aggregated statistics for a level.
func (s *Store) LevelStats(levelName string) (*LevelStats, error) {
	stats := &LevelStats{LevelName: levelName}

	var fastest sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(mushrooms), 0),
		        MIN(CASE WHEN outcome = ? THEN elapsed_ticks END),
		        MAX(created_at)
		 FROM scores WHERE level_name = ?`,
		string(forest.OutcomeCleared), string(forest.OutcomeCleared), levelName,
	).Scan(&stats.Runs, &stats.Clears, &stats.BestMushrooms, &fastest, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	if fastest.Valid {
		stats.FastestClear = int(fastest.Int64)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearScores deletes all runs for the given level.
func (s *Store) ClearScores(levelName string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE level_name = ?", levelName)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
