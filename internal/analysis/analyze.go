// Package analysis orchestrates the full scoring pipeline for one session:
// per-response scoring, session-level sentiment aggregation, then trend
// scoring, archetype classification, and prediction over the aggregate.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/reflection-insights/internal/archetypes"
	"github.com/jonathan/reflection-insights/internal/dominance"
	"github.com/jonathan/reflection-insights/internal/keywords"
	"github.com/jonathan/reflection-insights/internal/prediction"
	"github.com/jonathan/reflection-insights/internal/quality"
	"github.com/jonathan/reflection-insights/internal/sentiment"
	"github.com/jonathan/reflection-insights/internal/trends"
	"github.com/jonathan/reflection-insights/internal/types"
)

// Analyze runs the pipeline over a session's responses. An empty response
// set is not an error: every trend carries the insufficient-data sentinel
// and the strengths and growth lists come back empty.
//
// The per-response stages and the aggregation are deterministic pure
// functions, so calling Analyze twice on the same input yields an identical
// result.
func Analyze(ctx context.Context, sessionID uuid.UUID, responses []types.Response) (*types.AnalysisResult, error) {
	scored := scoreResponses(responses)

	// Aggregation barrier: everything after this point reads the complete
	// session, never a partial view.
	sentimentCtx := dominance.Aggregate(scored)

	var (
		trendScores map[types.TrendName]types.TrendScore
		profile     types.ArchetypeMatch
		predictions []types.PredictionResult
		strengths   []string
		growthAreas []string
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		trendScores = trends.ScoreAll(scored, &sentimentCtx)
		return nil
	})
	g.Go(func() error {
		profile = archetypes.Classify(tagFrequencies(scored), &sentimentCtx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis stage failed: %w", err)
	}

	// Predictions and the strength/growth lists read the trend scores, so
	// they run after the fan-out joins.
	predictions = prediction.Predict(scored, trendScores, &sentimentCtx)
	strengths = prediction.Strengths(scored)
	growthAreas = prediction.GrowthAreas(scored, trendScores)

	return &types.AnalysisResult{
		SessionID:         sessionID,
		AnalyzedAt:        time.Now().UTC(),
		TotalResponses:    len(responses),
		TrendAnalysis:     trendScores,
		BehavioralProfile: types.BehavioralProfile{PrimaryArchetype: profile},
		Predictions:       predictions,
		Strengths:         strengths,
		GrowthAreas:       growthAreas,
		SentimentContext:  sentimentCtx,
	}, nil
}

// ScoreResponse runs the three per-response stages over one response
func ScoreResponse(r types.Response) types.ScoredResponse {
	return types.ScoredResponse{
		Response:  r,
		Sentiment: sentiment.Score(r.Text),
		Quality:   quality.Score(r.Text),
		Keywords:  keywords.Extract(r.Text),
	}
}

func scoreResponses(responses []types.Response) []types.ScoredResponse {
	scored := make([]types.ScoredResponse, len(responses))
	for i, r := range responses {
		scored[i] = ScoreResponse(r)
	}
	return scored
}

// tagFrequencies builds the session's non-negated tag frequency vector for
// archetype classification. Negated tags never reach this vector.
func tagFrequencies(scored []types.ScoredResponse) map[string]int {
	counts := make(map[string]int)
	for _, s := range scored {
		for _, tag := range s.Keywords.Tags {
			counts[tag]++
		}
	}
	return counts
}
