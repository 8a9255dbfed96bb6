// Package storage provides SQLite-based persistence for solve history.
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

// Store manages the SQLite database connection for solve persistence.
type Store struct {
	db *sql.DB
}

// Solve represents one finished solve. Only completed solves are stored;
// live puzzle state never touches the database.
type Solve struct {
	ID        int64
	EventID   string        // registered event ID, e.g. "single"
	Size      string        // board size in "WxH" form
	Scramble  string        // start state, e.g. "8 3 1/5 2 7/4 6 0"
	Solution  string        // moves performed, e.g. "D2RUL"
	MovesSTM  int           // single-tile move count
	MovesMTM  int           // multi-tile move count
	Duration  time.Duration // wall time spent solving
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id TEXT NOT NULL,
			size TEXT NOT NULL,
			scramble TEXT NOT NULL,
			solution TEXT NOT NULL,
			moves_stm INTEGER NOT NULL,
			moves_mtm INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_event ON solves(event_id, size);
		CREATE INDEX IF NOT EXISTS idx_solves_fastest ON solves(event_id, size, duration_ms);
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

// SaveSolve records a finished solve. Returns the ID of the inserted record.
func (s *Store) SaveSolve(solve Solve) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO solves (event_id, size, scramble, solution, moves_stm, moves_mtm, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		solve.EventID,
		solve.Size,
		solve.Scramble,
		solve.Solution,
		solve.MovesSTM,
		solve.MovesMTM,
		solve.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSolves retrieves the most recent solves, newest first. An empty
// eventID matches all events.
func (s *Store) RecentSolves(eventID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, event_id, size, scramble, solution, moves_stm, moves_mtm, duration_ms, created_at
		 FROM solves
		 WHERE (? = '' OR event_id = ?)
		 ORDER BY id DESC
		 LIMIT ?`,
		eventID, eventID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// BestSolves retrieves the fastest solves for an event and board size.
func (s *Store) BestSolves(eventID, size string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, event_id, size, scramble, solution, moves_stm, moves_mtm, duration_ms, created_at
		 FROM solves
		 WHERE event_id = ? AND size = ?
		 ORDER BY duration_ms ASC, moves_stm ASC
		 LIMIT ?`,
		eventID, size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// FewestMoveSolves retrieves the shortest solves by single-tile move count
// for an event and board size.
func (s *Store) FewestMoveSolves(eventID, size string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, event_id, size, scramble, solution, moves_stm, moves_mtm, duration_ms, created_at
		 FROM solves
		 WHERE event_id = ? AND size = ?
		 ORDER BY moves_stm ASC, duration_ms ASC
		 LIMIT ?`,
		eventID, size, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

func scanSolves(rows *sql.Rows) ([]Solve, error) {
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var e Solve
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.EventID, &e.Size, &e.Scramble, &e.Solution,
			&e.MovesSTM, &e.MovesMTM, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTimestamp(createdAt)
		solves = append(solves, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
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

// EventStats contains aggregated statistics for one event and board size.
type EventStats struct {
	EventID    string
	Size       string
	Solves     int
	BestTime   time.Duration
	MeanTime   time.Duration
	BestSTM    int
	MeanSTM    float64
	LastSolved time.Time
}

// Stats retrieves aggregated statistics for an event and board size.
// A zero Solves count means nothing has been recorded yet.
func (s *Store) Stats(eventID, size string) (EventStats, error) {
	stats := EventStats{EventID: eventID, Size: size}

	var bestMS, meanMS, bestSTM, meanSTM sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*), MIN(duration_ms), AVG(duration_ms), MIN(moves_stm), AVG(moves_stm)
		 FROM solves WHERE event_id = ? AND size = ?`,
		eventID, size,
	).Scan(&stats.Solves, &bestMS, &meanMS, &bestSTM, &meanSTM)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get event stats: %w", err)
	}
	if bestMS.Valid {
		stats.BestTime = time.Duration(bestMS.Float64) * time.Millisecond
		stats.MeanTime = time.Duration(meanMS.Float64) * time.Millisecond
		stats.BestSTM = int(bestSTM.Float64)
		stats.MeanSTM = meanSTM.Float64
	}

	// Get last solved
	var lastSolved any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE event_id = ? AND size = ? ORDER BY id DESC LIMIT 1`,
		eventID, size,
	).Scan(&lastSolved)
	if err != nil && err != sql.ErrNoRows {
		return stats, fmt.Errorf("storage: cannot get last solved: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTimestamp(lastSolved)
	}

	return stats, nil
}

// SolvedSizes lists the board sizes recorded for an event, most played
// first.
func (s *Store) SolvedSizes(eventID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT size, COUNT(*) AS n FROM solves WHERE event_id = ? GROUP BY size ORDER BY n DESC, size ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sizes: %w", err)
	}
	defer rows.Close()

	var sizes []string
	for rows.Next() {
		var size string
		var n int
		if err := rows.Scan(&size, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sizes = append(sizes, size)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sizes, nil
}
