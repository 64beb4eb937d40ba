// Package dominance computes the session-level sentiment context: whether
// negative sentiment dominates a session, and if so, the score caps,
// blocked archetypes, and attention flags that enforce conservative
// scoring downstream.
package dominance

import (
	"sort"

	"github.com/jonathan/reflection-insights/internal/keywords"
	"github.com/jonathan/reflection-insights/internal/types"
)

// Dominance policy constants. Either condition alone makes a session
// negative-dominant (OR semantics); the policy errs toward caution.
const (
	// ratioThreshold: more than half of the (quality-weighted) responses
	// classified negative.
	ratioThreshold = 0.5

	// meanThreshold: the quality-weighted mean sentiment score is clearly
	// negative.
	meanThreshold = -0.15
)

// scoreCaps is the fixed per-trend ceiling table applied when negative
// sentiment dominates a session.
var scoreCaps = map[types.TrendName]float64{
	types.TrendMotivation:        0.45,
	types.TrendConsistency:       0.30,
	types.TrendGrowthOrientation: 0.45,
	types.TrendStressResponse:    0.45,
}

// Archetype names blocked under negative dominance. Achiever and Innovator
// are the achievement-category evidence-gated entries; Stabilizer is
// additionally blocked when stress evidence shows routines are not holding.
const (
	blockedAchiever   = "Achiever"
	blockedInnovator  = "Innovator"
	blockedStabilizer = "Stabilizer"
)

// Attention flags surfaced from co-occurring negative keyword patterns
const (
	FlagPossibleBurnout  = "possible_burnout"
	FlagLowConfidence    = "low_confidence"
	FlagMotivationRisk   = "motivation_risk"
	FlagAvoidancePattern = "avoidance_pattern"
)

// contribution is one response's quality-weighted share of the session
// sums. Responses with identical contributions are interchangeable, so the
// comparator in Aggregate only needs a total order over these three fields.
type contribution struct {
	weight   float64
	weighted float64
	negative bool
}

// Aggregate computes the SentimentContext for a session from all of its
// scored responses. The computation is a pure fold over the set: permuting
// the input order yields an identical result, and the context is always
// recomputed from scratch rather than updated incrementally.
func Aggregate(scored []types.ScoredResponse) types.SentimentContext {
	ctx := types.SentimentContext{
		ScoreCaps: uncappedTable(),
	}
	if len(scored) == 0 {
		return ctx
	}

	contribs := make([]contribution, 0, len(scored))
	tagResponses := make(map[string]int)

	for _, s := range scored {
		// Zero-quality responses still count with a small floor so a
		// session of empty answers does not divide by zero.
		w := s.Quality
		if w <= 0 {
			w = 0.05
		}
		contribs = append(contribs, contribution{
			weight:   w,
			weighted: s.Sentiment.Score * w,
			negative: s.Sentiment.Category == types.SentimentNegative,
		})
		for _, tag := range s.Keywords.Tags {
			tagResponses[tag]++
		}
	}

	// Float addition is not associative, so the fold runs in a canonical
	// order rather than input order: permuting the responses yields
	// bit-identical sums.
	sort.Slice(contribs, func(i, j int) bool {
		a, b := contribs[i], contribs[j]
		if a.weighted != b.weighted {
			return a.weighted < b.weighted
		}
		if a.weight != b.weight {
			return a.weight < b.weight
		}
		return !a.negative && b.negative
	})

	var weightSum, negativeWeight, scoreSum float64
	for _, c := range contribs {
		weightSum += c.weight
		scoreSum += c.weighted
		if c.negative {
			negativeWeight += c.weight
		}
	}

	ctx.DominanceRatio = negativeWeight / weightSum
	ctx.MeanScore = scoreSum / weightSum

	// Two named sub-checks, combined with OR: either alone suffices.
	negativeByRatio := ctx.DominanceRatio > ratioThreshold
	negativeByMean := ctx.MeanScore < meanThreshold
	ctx.NegativeDominant = negativeByRatio || negativeByMean

	if ctx.NegativeDominant {
		ctx.ScoreCaps = cappedTable()
		ctx.BlockedArchetypes = blockedFor(tagResponses)
	}
	ctx.AttentionFlags = attentionFlags(tagResponses, ctx.NegativeDominant)
	return ctx
}

func uncappedTable() map[types.TrendName]float64 {
	caps := make(map[types.TrendName]float64, len(types.AllTrends))
	for _, name := range types.AllTrends {
		caps[name] = 1.0
	}
	return caps
}

func cappedTable() map[types.TrendName]float64 {
	caps := make(map[types.TrendName]float64, len(scoreCaps))
	for name, ceiling := range scoreCaps {
		caps[name] = ceiling
	}
	return caps
}

func blockedFor(tagResponses map[string]int) []string {
	blocked := []string{blockedAchiever, blockedInnovator}
	if tagResponses[keywords.TagStress] >= 2 {
		blocked = append(blocked, blockedStabilizer)
	}
	sort.Strings(blocked)
	return blocked
}

// attentionFlags surfaces category-level flags from co-occurring negative
// keyword patterns. Flags are advisory; they never alter scores directly.
func attentionFlags(tagResponses map[string]int, negativeDominant bool) []string {
	var flags []string
	if tagResponses[keywords.TagStress] >= 1 && tagResponses[keywords.TagExhaustion] >= 1 {
		flags = append(flags, FlagPossibleBurnout)
	}
	if tagResponses[keywords.TagUncertainty] >= 2 {
		flags = append(flags, FlagLowConfidence)
	}
	if negativeDominant && tagResponses[keywords.TagLowMotivation] >= 1 {
		flags = append(flags, FlagMotivationRisk)
	}
	if tagResponses[keywords.TagAvoidance] >= 1 {
		flags = append(flags, FlagAvoidancePattern)
	}
	sort.Strings(flags)
	return flags
}
