// Package storage provides SQLite-based persistence for the session history.
// Only run statistics are stored; grid contents never leave the process.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-layers/internal/core"
)

// timeLayout is how SQLite's CURRENT_TIMESTAMP and our inserts format datetimes.
const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the session history.
type Store struct {
	db *sql.DB
}

// SessionEntry represents one finished run of the shell.
type SessionEntry struct {
	ID         int64
	Mode       string
	Seed       int64
	Ticks      int
	Resets     int
	Population []int // Live cells per layer at exit
	Duration   time.Duration
	StartedAt  time.Time
}

// LiveCells returns the total live cells at exit.
func (e SessionEntry) LiveCells() int {
	return core.RunStats{Population: e.Population}.LiveCells()
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
			mode TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			resets INTEGER NOT NULL DEFAULT 0,
			population TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
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

// SaveSession records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(stats core.RunStats) (int64, error) {
	startedAt := stats.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions (mode, seed, ticks, resets, population, duration_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		stats.Mode,
		stats.Seed,
		stats.Ticks,
		stats.Resets,
		formatPopulation(stats.Population),
		stats.Duration.Milliseconds(),
		startedAt.UTC().Format(timeLayout),
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

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode, seed, ticks, resets, population, duration_ms, started_at
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionEntry
	for rows.Next() {
		var e SessionEntry
		var population string
		var durationMS int64
		var startedAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Seed, &e.Ticks, &e.Resets, &population, &durationMS, &startedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Population = parsePopulation(population)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.StartedAt = parseTime(startedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Totals contains aggregated statistics over every recorded session.
type Totals struct {
	Sessions    int
	Ticks       int64
	Resets      int64
	LongestRun  int // Most ticks in one session
	LastStarted time.Time
}

// GetTotals retrieves aggregated statistics for all sessions.
func (s *Store) GetTotals() (*Totals, error) {
	totals := &Totals{}

	var lastStarted any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(resets), 0),
		        COALESCE(MAX(ticks), 0), MAX(started_at)
		 FROM sessions`,
	).Scan(&totals.Sessions, &totals.Ticks, &totals.Resets, &totals.LongestRun, &lastStarted)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	totals.LastStarted = parseTime(lastStarted)

	return totals, nil
}

// ClearSessions deletes the whole history.
func (s *Store) ClearSessions() error {
	_, err := s.db.Exec("DELETE FROM sessions")
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func formatPopulation(counts []int) string {
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// parsePopulation is the inverse of formatPopulation; malformed entries read as 0.
func parsePopulation(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	counts := make([]int, len(parts))
	for i, p := range parts {
		counts[i], _ = strconv.Atoi(p)
	}
	return counts
}
