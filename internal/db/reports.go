package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/reflection-insights/internal/types"
)

// SaveReport stores a session's analysis result and its rendered narrative,
// replacing any previous report for the session.
func (s *Store) SaveReport(ctx context.Context, sessionID uuid.UUID, analysis *types.AnalysisResult, narrative string) error {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO reports (session_id, analysis, narrative)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id) DO UPDATE SET analysis = $2, narrative = $3, created_at = NOW()`,
		sessionID, analysisJSON, narrative,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport retrieves a session's saved report; returns nils when no report
// has been generated yet.
func (s *Store) GetReport(ctx context.Context, sessionID uuid.UUID) (*types.AnalysisResult, string, error) {
	var analysisJSON []byte
	var narrative string
	err := s.pool.QueryRow(ctx,
		`SELECT analysis, narrative FROM reports WHERE session_id = $1`,
		sessionID,
	).Scan(&analysisJSON, &narrative)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to get report: %w", err)
	}

	var analysis types.AnalysisResult
	if err := json.Unmarshal(analysisJSON, &analysis); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &analysis, narrative, nil
}
