package dominance

import (
	"math/rand"
	"testing"

	"github.com/jonathan/reflection-insights/internal/keywords"
	"github.com/jonathan/reflection-insights/internal/types"
	"github.com/stretchr/testify/assert"
)

func scored(score float64, category types.SentimentCategory, quality float64, tags ...string) types.ScoredResponse {
	return types.ScoredResponse{
		Sentiment: types.SentimentResult{Score: score, Category: category},
		Quality:   quality,
		Keywords:  types.KeywordSet{Tags: tags},
	}
}

func TestAggregate_Empty(t *testing.T) {
	ctx := Aggregate(nil)

	assert.False(t, ctx.NegativeDominant)
	assert.Equal(t, 0.0, ctx.DominanceRatio)
	assert.Equal(t, 1.0, ctx.CapFor(types.TrendMotivation))
	assert.Empty(t, ctx.BlockedArchetypes)
}

func TestAggregate_PositiveSession(t *testing.T) {
	ctx := Aggregate([]types.ScoredResponse{
		scored(0.6, types.SentimentPositive, 0.8),
		scored(0.4, types.SentimentPositive, 0.9),
		scored(0.0, types.SentimentNeutral, 0.7),
	})

	assert.False(t, ctx.NegativeDominant)
	assert.Equal(t, 1.0, ctx.CapFor(types.TrendConsistency))
	assert.Empty(t, ctx.BlockedArchetypes)
}

func TestAggregate_DominantByRatio(t *testing.T) {
	ctx := Aggregate([]types.ScoredResponse{
		scored(-0.3, types.SentimentNegative, 0.8),
		scored(-0.4, types.SentimentNegative, 0.8),
		scored(0.5, types.SentimentPositive, 0.8),
	})

	assert.True(t, ctx.NegativeDominant)
	assert.Greater(t, ctx.DominanceRatio, 0.5)
}

func TestAggregate_DominantByMeanAlone(t *testing.T) {
	// Only one of three responses is categorically negative, but its score
	// is extreme enough to pull the mean below the threshold. OR semantics:
	// the mean check alone triggers dominance.
	ctx := Aggregate([]types.ScoredResponse{
		scored(-0.9, types.SentimentNegative, 0.9),
		scored(0.05, types.SentimentNeutral, 0.9),
		scored(0.05, types.SentimentNeutral, 0.9),
	})

	assert.LessOrEqual(t, ctx.DominanceRatio, 0.5)
	assert.True(t, ctx.NegativeDominant)
}

func TestAggregate_CapsAppliedWhenDominant(t *testing.T) {
	ctx := Aggregate([]types.ScoredResponse{
		scored(-0.5, types.SentimentNegative, 0.8),
		scored(-0.6, types.SentimentNegative, 0.8),
	})

	assert.True(t, ctx.NegativeDominant)
	assert.Equal(t, 0.45, ctx.CapFor(types.TrendMotivation))
	assert.Equal(t, 0.30, ctx.CapFor(types.TrendConsistency))
	assert.Equal(t, 0.45, ctx.CapFor(types.TrendGrowthOrientation))
	assert.Equal(t, 0.45, ctx.CapFor(types.TrendStressResponse))
}

func TestAggregate_BlocksEvidenceGatedArchetypes(t *testing.T) {
	ctx := Aggregate([]types.ScoredResponse{
		scored(-0.5, types.SentimentNegative, 0.8),
		scored(-0.6, types.SentimentNegative, 0.8),
	})

	assert.True(t, ctx.IsBlocked("Achiever"))
	assert.True(t, ctx.IsBlocked("Innovator"))
	assert.False(t, ctx.IsBlocked("Stabilizer"))
}

func TestAggregate_BlocksStabilizerUnderStress(t *testing.T) {
	ctx := Aggregate([]types.ScoredResponse{
		scored(-0.5, types.SentimentNegative, 0.8, keywords.TagStress),
		scored(-0.6, types.SentimentNegative, 0.8, keywords.TagStress),
	})

	assert.True(t, ctx.IsBlocked("Stabilizer"))
}

func TestAggregate_BurnoutFlag(t *testing.T) {
	ctx := Aggregate([]types.ScoredResponse{
		scored(-0.4, types.SentimentNegative, 0.8, keywords.TagStress),
		scored(-0.3, types.SentimentNegative, 0.8, keywords.TagExhaustion),
	})

	assert.Contains(t, ctx.AttentionFlags, FlagPossibleBurnout)
}

func TestAggregate_LowQualityDownWeighted(t *testing.T) {
	// The negative response carries almost no quality weight, so the
	// high-quality positive responses keep the session out of dominance.
	ctx := Aggregate([]types.ScoredResponse{
		scored(-0.9, types.SentimentNegative, 0.05),
		scored(0.5, types.SentimentPositive, 0.9),
		scored(0.4, types.SentimentPositive, 0.9),
	})

	assert.False(t, ctx.NegativeDominant)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	responses := []types.ScoredResponse{
		scored(-0.5, types.SentimentNegative, 0.8, keywords.TagStress),
		scored(0.3, types.SentimentPositive, 0.6, keywords.TagGrowth),
		scored(-0.2, types.SentimentNegative, 0.4, keywords.TagExhaustion),
		scored(0.0, types.SentimentNeutral, 0.9),
		scored(-0.7, types.SentimentNegative, 0.7, keywords.TagUncertainty, keywords.TagUncertainty),
		// Identical contributions: interchangeable, must not disturb the sums
		scored(0.3, types.SentimentPositive, 0.6),
		scored(0.3, types.SentimentPositive, 0.6),
	}
	want := Aggregate(responses)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := make([]types.ScoredResponse, len(responses))
		copy(shuffled, responses)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		assert.Equal(t, want, Aggregate(shuffled))
	}
}
