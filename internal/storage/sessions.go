package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id does not exist.
var ErrSessionNotFound = errors.New("storage: session not found")

// Session represents one scramble/solve session in the database.
type Session struct {
	SessionID     string
	CreatedAt     time.Time
	Scramble      string
	Facelets      string
	Solution      *string
	SolutionMoves *int
	SolvedAt      *time.Time
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a new session and returns its ID.
func (r *SessionRepository) Create(scramble, facelets string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, created_at, scramble_text, facelets)
		VALUES (?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), scramble, facelets)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// RecordSolution stores the solver's output for a session. The lookup and
// the update run in one transaction so a session deleted between them
// cannot slip through as a silent no-op update.
func (r *SessionRepository) RecordSolution(sessionID, solution string, moveCount int) error {
	solvedAt := time.Now().UTC()

	return r.db.Transaction(func(tx *sql.Tx) error {
		var found string
		err := tx.QueryRow(`
			SELECT session_id FROM sessions WHERE session_id = ?
		`, sessionID).Scan(&found)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		if err != nil {
			return fmt.Errorf("failed to look up session: %w", err)
		}

		_, err = tx.Exec(`
			UPDATE sessions
			SET solution_text = ?, solution_moves = ?, solved_at = ?
			WHERE session_id = ?
		`, solution, moveCount, solvedAt.Format(time.RFC3339), sessionID)
		if err != nil {
			return fmt.Errorf("failed to record solution: %w", err)
		}
		return nil
	})
}

// Get returns a single session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, created_at, scramble_text, facelets, solution_text, solution_moves, solved_at
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]*Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, created_at, scramble_text, facelets, solution_text, solution_moves, solved_at
		FROM sessions
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// scanner matches sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var (
		s             Session
		createdAtStr  string
		solvedAtStr   *string
		solutionText  *string
		solutionMoves *int
	)
	err := row.Scan(&s.SessionID, &createdAtStr, &s.Scramble, &s.Facelets,
		&solutionText, &solutionMoves, &solvedAtStr)
	if err != nil {
		return nil, err
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.Solution = solutionText
	s.SolutionMoves = solutionMoves
	if solvedAtStr != nil {
		t, err := time.Parse(time.RFC3339, *solvedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse solved_at: %w", err)
		}
		s.SolvedAt = &t
	}
	return &s, nil
}
