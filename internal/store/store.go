// Package store persists conversation sessions and transcripts in an
// embedded SQLite database. It backs the HTTP server; the interactive
// chat loop keeps its state in memory and never touches the store.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jonathan/talentscout/internal/types"
)

// ErrNotFound is returned when a session ID does not exist.
var ErrNotFound = errors.New("session not found")

// Roles recorded in the transcript.
const (
	RoleCandidate = "candidate"
	RoleAssistant = "assistant"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	stage       TEXT NOT NULL,
	record      TEXT NOT NULL,
	error_count INTEGER NOT NULL DEFAULT 0,
	started     INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	role       TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_session ON messages(session_id);
`

// Session is a persisted conversation.
type Session struct {
	ID        string
	State     types.SessionState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is one transcript entry.
type Message struct {
	ID        int64
	SessionID string
	Role      string
	Content   string
	CreatedAt time.Time
}

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// The sqlite driver does not support concurrent writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSession inserts a fresh session and returns it.
func (s *Store) CreateSession(ctx context.Context) (*Session, error) {
	session := &Session{
		ID:        uuid.NewString(),
		State:     types.NewSessionState(),
		CreatedAt: time.Now().UTC(),
	}
	session.UpdatedAt = session.CreatedAt

	record, err := json.Marshal(session.State.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, stage, record, error_count, started, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.State.Stage.String(), string(record),
		session.State.ErrorCount, boolToInt(session.State.ConversationStarted),
		session.CreatedAt.Format(time.RFC3339), session.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	return session, nil
}

// GetSession loads a session by ID.
func (s *Store) GetSession(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, stage, record, error_count, started, created_at, updated_at
		 FROM sessions WHERE id = ?`, id)

	var (
		session            Session
		stageName          string
		recordJSON         string
		started            int
		createdAt, updated string
	)
	err := row.Scan(&session.ID, &stageName, &recordJSON, &session.State.ErrorCount,
		&started, &createdAt, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	stage, ok := types.ParseStage(stageName)
	if !ok {
		return nil, fmt.Errorf("session %s has invalid stage %q", id, stageName)
	}
	session.State.Stage = stage
	session.State.ConversationStarted = started != 0

	if err := json.Unmarshal([]byte(recordJSON), &session.State.Record); err != nil {
		return nil, fmt.Errorf("session %s has invalid record: %w", id, err)
	}
	if session.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("session %s has invalid created_at: %w", id, err)
	}
	if session.UpdatedAt, err = time.Parse(time.RFC3339, updated); err != nil {
		return nil, fmt.Errorf("session %s has invalid updated_at: %w", id, err)
	}

	return &session, nil
}

// SaveSession stores the updated state of an existing session.
func (s *Store) SaveSession(ctx context.Context, id string, state types.SessionState) error {
	record, err := json.Marshal(state.Record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET stage = ?, record = ?, error_count = ?, started = ?, updated_at = ?
		 WHERE id = ?`,
		state.Stage.String(), string(record), state.ErrorCount,
		boolToInt(state.ConversationStarted), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to update session %s: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSession removes a session and its transcript.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete transcript for %s: %w", id, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

// AppendMessage records one transcript entry.
func (s *Store) AppendMessage(ctx context.Context, sessionID, role, content string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (session_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, role, content, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// Transcript returns a session's messages in insertion order.
func (s *Store) Transcript(ctx context.Context, sessionID string) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, role, content, created_at
		 FROM messages WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var (
			msg       Message
			createdAt string
		)
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if msg.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("message %d has invalid created_at: %w", msg.ID, err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
