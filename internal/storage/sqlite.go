// Package storage provides SQLite-based persistence for game sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// A session row holds the encoded world blob; the core never sees the
// database, it only consumes and produces blobs.
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

// ErrSessionNotFound is returned when a session ID has no row.
var ErrSessionNotFound = errors.New("storage: session not found")

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// Session represents one persisted game session.
type Session struct {
	ID        string
	State     []byte // Encoded world blob
	Status    string
	Score     int64
	Tick      int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Result represents the outcome of a finished game.
type Result struct {
	ID        int64
	SessionID string
	Outcome   string // "won" or "lost"
	Score     int64
	Ticks     int64
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
		CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			state BLOB NOT NULL,
			status TEXT NOT NULL,
			score INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions(status);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSession inserts a new session row.
func (s *Store) CreateSession(id string, state []byte, status string, score, tick int64) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, state, status, score, tick) VALUES (?, ?, ?, ?, ?)`,
		id, state, status, score, tick,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot create session %s: %w", id, err)
	}
	return nil
}

// LoadSession retrieves a session by ID.
func (s *Store) LoadSession(id string) (Session, error) {
	var sess Session
	err := s.db.QueryRow(
		`SELECT session_id, state, status, score, tick, created_at, updated_at
		 FROM sessions WHERE session_id = ?`, id,
	).Scan(&sess.ID, &sess.State, &sess.Status, &sess.Score, &sess.Tick, &sess.CreatedAt, &sess.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return Session{}, fmt.Errorf("storage: cannot load session %s: %w", id, err)
	}
	return sess, nil
}

// SaveSession replaces a session's state atomically.
func (s *Store) SaveSession(id string, state []byte, status string, score, tick int64) error {
	res, err := s.db.Exec(
		`UPDATE sessions SET state = ?, status = ?, score = ?, tick = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE session_id = ?`,
		state, status, score, tick, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot save session %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return nil
}

// DeleteSession removes a session row.
func (s *Store) DeleteSession(id string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE session_id = ?`, id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete session %s: %w", id, err)
	}
	return nil
}

// ListSessions returns all sessions, most recently updated first.
func (s *Store) ListSessions() ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT session_id, state, status, score, tick, created_at, updated_at
		 FROM sessions ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.State, &sess.Status, &sess.Score, &sess.Tick, &sess.CreatedAt, &sess.UpdatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// RecordResult stores the outcome of a finished game.
func (s *Store) RecordResult(sessionID, outcome string, score, ticks int64) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (session_id, outcome, score, ticks) VALUES (?, ?, ?, ?)`,
		sessionID, outcome, score, ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record result for %s: %w", sessionID, err)
	}
	return res.LastInsertId()
}

// TopResults returns the highest-scoring finished games.
func (s *Store) TopResults(limit int) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT id, session_id, outcome, score, ticks, created_at
		 FROM results ORDER BY score DESC, created_at ASC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Outcome, &r.Score, &r.Ticks, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
