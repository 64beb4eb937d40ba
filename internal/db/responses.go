package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/reflection-insights/internal/types"
)

// SaveResponse stores one free-text reflection answer for a session
func (s *Store) SaveResponse(ctx context.Context, r types.Response) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO responses (session_id, category, text)
		 VALUES ($1, $2, $3)`,
		r.SessionID, string(r.Category), r.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}
	return nil
}

// ListResponses retrieves all responses for a session in creation order
func (s *Store) ListResponses(ctx context.Context, sessionID uuid.UUID) ([]types.Response, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT session_id, category, text, created_at
		 FROM responses WHERE session_id = $1 ORDER BY created_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	var responses []types.Response
	for rows.Next() {
		var r types.Response
		var category string
		if err := rows.Scan(&r.SessionID, &category, &r.Text, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		r.Category = types.ResponseCategory(category)
		responses = append(responses, r)
	}
	return responses, nil
}

// CountResponses returns how many responses a session has recorded
func (s *Store) CountResponses(ctx context.Context, sessionID uuid.UUID) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM responses WHERE session_id = $1`,
		sessionID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count responses: %w", err)
	}
	return count, nil
}
