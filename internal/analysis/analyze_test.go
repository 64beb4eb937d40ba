package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/reflection-insights/internal/keywords"
	"github.com/jonathan/reflection-insights/internal/prediction"
	"github.com/jonathan/reflection-insights/internal/trends"
	"github.com/jonathan/reflection-insights/internal/types"
)

func response(category types.ResponseCategory, text string) types.Response {
	return types.Response{
		SessionID: uuid.Nil,
		Category:  category,
		Text:      text,
	}
}

func TestAnalyze_EmptySession(t *testing.T) {
	result, err := Analyze(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalResponses)
	for _, name := range types.AllTrends {
		score := result.TrendAnalysis[name]
		assert.Equal(t, 0.0, score.RawScore)
		assert.Equal(t, trends.InsufficientData, score.Description)
	}
	assert.Empty(t, result.Strengths)
	assert.Empty(t, result.GrowthAreas)
	assert.Empty(t, result.Predictions)
	assert.False(t, result.SentimentContext.NegativeDominant)
}

func TestAnalyze_AllNegativeEvidenceFreeSession(t *testing.T) {
	responses := []types.Response{
		response(types.CategoryEducation, "It was terrible and I hated every part of it."),
		response(types.CategoryCareer, "Everything is awful, I feel miserable at work."),
		response(types.CategoryAchievement, "Nothing. It all went wrong and I failed."),
		response(types.CategoryRoutine, "My days are horrible and exhausting."),
		response(types.CategoryChallenge, "It was a disaster and I felt hopeless."),
	}

	result, err := Analyze(context.Background(), uuid.New(), responses)

	require.NoError(t, err)
	assert.True(t, result.SentimentContext.NegativeDominant)
	assert.Equal(t, []string{prediction.NoStrengths}, result.Strengths)

	motivation := result.TrendAnalysis[types.TrendMotivation]
	consistency := result.TrendAnalysis[types.TrendConsistency]
	assert.LessOrEqual(t, motivation.CappedScore, result.SentimentContext.CapFor(types.TrendMotivation))
	assert.LessOrEqual(t, consistency.CappedScore, result.SentimentContext.CapFor(types.TrendConsistency))
}

func TestAnalyze_PositiveSessionSelectsEvidencedArchetype(t *testing.T) {
	responses := []types.Response{
		response(types.CategoryAchievement, "I am proud that I accomplished my goal of finishing the marathon."),
		response(types.CategoryCareer, "I love my work and achieved a big promotion this year."),
		response(types.CategoryEducation, "I accomplished every course goal and enjoyed learning."),
	}

	result, err := Analyze(context.Background(), uuid.New(), responses)

	require.NoError(t, err)
	assert.False(t, result.SentimentContext.NegativeDominant)
	assert.Equal(t, "Achiever", result.BehavioralProfile.PrimaryArchetype.Name)
	assert.NotContains(t, result.Strengths, prediction.NoStrengths)
	assert.Len(t, result.Predictions, 4)
}

func TestAnalyze_NegatedEvidenceDoesNotReachClassifier(t *testing.T) {
	responses := []types.Response{
		response(types.CategoryChallenge, "Nothing helped me and nobody collaborated."),
		response(types.CategoryCareer, "I did not accomplish anything this year."),
	}

	result, err := Analyze(context.Background(), uuid.New(), responses)

	require.NoError(t, err)
	assert.NotEqual(t, "Achiever", result.BehavioralProfile.PrimaryArchetype.Name)
	assert.NotEqual(t, "Connector", result.BehavioralProfile.PrimaryArchetype.Name)
}

func TestAnalyze_Deterministic(t *testing.T) {
	id := uuid.New()
	responses := []types.Response{
		response(types.CategoryCareer, "I am stressed and exhausted but I keep improving."),
		response(types.CategoryRoutine, "My routine is fine, I exercise every day."),
		response(types.CategoryChallenge, "The project failed but I adapted and learned a lot."),
	}

	first, err := Analyze(context.Background(), id, responses)
	require.NoError(t, err)
	second, err := Analyze(context.Background(), id, responses)
	require.NoError(t, err)

	first.AnalyzedAt = time.Time{}
	second.AnalyzedAt = time.Time{}
	assert.Equal(t, first, second)
}

func TestScoreResponse_PerResponseStages(t *testing.T) {
	scored := ScoreResponse(response(types.CategoryCareer, "I helped my team and we accomplished our goal."))

	assert.Equal(t, types.SentimentPositive, scored.Sentiment.Category)
	assert.Greater(t, scored.Quality, 0.3)
	assert.True(t, scored.Keywords.Has(keywords.TagTeamwork))
	assert.True(t, scored.Keywords.Has(keywords.TagAchievement))
}

func TestScoreResponse_EmptyTextIsTotal(t *testing.T) {
	scored := ScoreResponse(response(types.CategoryCareer, ""))

	assert.Equal(t, 0.0, scored.Quality)
	assert.Equal(t, types.SentimentNeutral, scored.Sentiment.Category)
	assert.Empty(t, scored.Keywords.Tags)
}
