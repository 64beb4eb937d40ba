package trends

import (
	"math"

	"github.com/jonathan/reflection-insights/internal/keywords"
	"github.com/jonathan/reflection-insights/internal/types"
)

// ScoreAll scores every trend dimension for a session. With zero responses
// each trend returns the insufficient-data sentinel with a raw score of 0.
func ScoreAll(scored []types.ScoredResponse, ctx *types.SentimentContext) map[types.TrendName]types.TrendScore {
	result := make(map[types.TrendName]types.TrendScore, len(types.AllTrends))
	for _, name := range types.AllTrends {
		result[name] = Score(name, scored, ctx)
	}
	return result
}

// Score computes one trend dimension. The algorithm shape is shared across
// the four trends: quality-weighted tag evidence squashed into [0,1],
// trend-specific penalties subtracted, then the sentiment-context cap
// applied when the session is negative-dominant.
func Score(name types.TrendName, scored []types.ScoredResponse, ctx *types.SentimentContext) types.TrendScore {
	cfg := trendTable[name]

	if len(scored) == 0 {
		return types.TrendScore{
			Name:        name,
			Direction:   types.DirectionStable,
			Description: InsufficientData,
		}
	}

	base := squash(tagEvidence(scored, cfg))
	raw := clamp01(base - penaltyFor(name, scored))

	capped := raw
	if ctx != nil && ctx.NegativeDominant {
		if ceiling := ctx.CapFor(name); raw > ceiling {
			capped = ceiling
		}
	}

	return types.TrendScore{
		Name:        name,
		RawScore:    raw,
		CappedScore: capped,
		Direction:   directionFor(capped),
		Description: cfg.describe(capped),
	}
}

// tagEvidence folds quality-weighted positive tag hits minus penalty tag
// hits into a single signed evidence value.
func tagEvidence(scored []types.ScoredResponse, cfg trendConfig) float64 {
	evidence := 0.0
	for _, s := range scored {
		for _, tag := range cfg.positiveTags {
			if s.Keywords.Has(tag) {
				evidence += s.Quality
			}
		}
		for _, tag := range cfg.penaltyTags {
			if s.Keywords.Has(tag) {
				evidence -= s.Quality
			}
		}
	}
	return evidence
}

// penaltyFor applies the trend-specific penalty rules on top of the shared
// evidence fold.
func penaltyFor(name types.TrendName, scored []types.ScoredResponse) float64 {
	switch name {
	case types.TrendMotivation:
		// Explicit low-drive language outweighs tag arithmetic.
		if anyTagged(scored, keywords.TagLowMotivation) {
			return lowDrivePenalty
		}
	case types.TrendConsistency:
		// Exhaustion penalty: strain language inside routine-topic
		// responses means the routine is not being sustained.
		if routineUnderStrain(scored) {
			return exhaustionPenalty
		}
	case types.TrendGrowthOrientation:
		// Uncertainty penalty when hedging language dominates the session.
		if hedgingDominates(scored) {
			return uncertaintyPenalty
		}
	case types.TrendStressResponse:
		if anyTagged(scored, keywords.TagAvoidance) {
			return avoidancePenalty
		}
	}
	return 0.0
}

func anyTagged(scored []types.ScoredResponse, tag string) bool {
	for _, s := range scored {
		if s.Keywords.Has(tag) {
			return true
		}
	}
	return false
}

func routineUnderStrain(scored []types.ScoredResponse) bool {
	for _, s := range scored {
		if s.Response.Category != types.CategoryRoutine {
			continue
		}
		if s.Keywords.Has(keywords.TagStress) || s.Keywords.Has(keywords.TagExhaustion) {
			return true
		}
	}
	return false
}

func hedgingDominates(scored []types.ScoredResponse) bool {
	hedged := 0
	for _, s := range scored {
		if s.Keywords.Has(keywords.TagUncertainty) {
			hedged++
		}
	}
	return float64(hedged)/float64(len(scored)) > hedgingDominanceRatio
}

// squash maps signed evidence into [0,1] with a logistic curve centered at
// zero: no evidence lands at 0.5.
func squash(evidence float64) float64 {
	return 1.0 / (1.0 + math.Exp(-logisticSlope*evidence))
}

func directionFor(score float64) types.TrendDirection {
	switch {
	case score > upwardThreshold:
		return types.DirectionUpward
	case score < downwardThreshold:
		return types.DirectionDownward
	default:
		return types.DirectionStable
	}
}

// describe selects the fixed template for a score bracket
func (cfg trendConfig) describe(score float64) string {
	switch {
	case score > upwardThreshold:
		return cfg.highTemplate
	case score < downwardThreshold:
		return cfg.lowTemplate
	default:
		return cfg.moderateTemplate
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
