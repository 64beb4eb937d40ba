package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/reflection-insights/internal/types"
)

// CreateSession creates a new reflection session and returns it
func (s *Store) CreateSession(ctx context.Context, userName string) (*types.Session, error) {
	var session types.Session
	err := s.pool.QueryRow(ctx,
		`INSERT INTO sessions (user_name)
		 VALUES ($1)
		 RETURNING id, user_name, category_index, completed, created_at, updated_at`,
		userName,
	).Scan(&session.ID, &session.UserName, &session.CategoryIndex, &session.Completed,
		&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &session, nil
}

// GetSession retrieves a session by ID; returns nil when not found
func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (*types.Session, error) {
	var session types.Session
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_name, category_index, completed, created_at, updated_at
		 FROM sessions WHERE id = $1`,
		id,
	).Scan(&session.ID, &session.UserName, &session.CategoryIndex, &session.Completed,
		&session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// AdvanceSession moves a session to the next category index, marking it
// completed when the index passes the final category.
func (s *Store) AdvanceSession(ctx context.Context, id uuid.UUID, categoryIndex int, completed bool) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE sessions SET category_index = $1, completed = $2, updated_at = NOW()
		 WHERE id = $3`,
		categoryIndex, completed, id,
	)
	if err != nil {
		return fmt.Errorf("failed to advance session: %w", err)
	}
	return nil
}

// ListRecentSessions retrieves recent sessions, newest first
func (s *Store) ListRecentSessions(ctx context.Context, limit int) ([]types.Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_name, category_index, completed, created_at, updated_at
		 FROM sessions ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []types.Session
	for rows.Next() {
		var session types.Session
		if err := rows.Scan(&session.ID, &session.UserName, &session.CategoryIndex,
			&session.Completed, &session.CreatedAt, &session.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// DeleteSession deletes a session and its responses, messages, and report
// via cascade
func (s *Store) DeleteSession(ctx context.Context, id uuid.UUID) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", id)
	}
	return nil
}

// SaveMessage appends one conversation message to a session's history
func (s *Store) SaveMessage(ctx context.Context, sessionID uuid.UUID, role types.MessageRole, content string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO messages (session_id, role, content)
		 VALUES ($1, $2, $3)`,
		sessionID, role, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return nil
}

// ListMessages retrieves a session's conversation history in order
func (s *Store) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]types.Message, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT role, content, created_at
		 FROM messages WHERE session_id = $1 ORDER BY created_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []types.Message
	for rows.Next() {
		var m types.Message
		if err := rows.Scan(&m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, nil
}
