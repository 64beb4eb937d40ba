package prediction

import (
	"math"
	"sort"

	"github.com/jonathan/reflection-insights/internal/types"
)

// Predict produces the named predictions for a session. With zero responses
// it returns nil: prediction without data is worse than no prediction.
func Predict(scored []types.ScoredResponse, trendScores map[types.TrendName]types.TrendScore, ctx *types.SentimentContext) []types.PredictionResult {
	if len(scored) == 0 {
		return nil
	}

	confidence := confidenceFor(scored)
	out := make([]types.PredictionResult, 0, len(predictionOrder)+1)
	for _, name := range predictionOrder {
		cfg := predictionTable[name]
		out = append(out, types.PredictionResult{
			Type:        name,
			Probability: round3(linearCombination(cfg, scored, trendScores)),
			Confidence:  confidence,
			Explanation: cfg.explanation,
			Factors:     factorsFor(cfg, scored, trendScores),
		})
	}
	out = append(out, attentionPrediction(scored, trendScores, ctx, confidence))
	return out
}

func linearCombination(cfg predictionConfig, scored []types.ScoredResponse, trendScores map[types.TrendName]types.TrendScore) float64 {
	p := 0.0
	for name, weight := range cfg.trendWeights {
		p += weight * trendScores[name].CappedScore
	}
	p += cfg.densityWeight * tagDensity(scored, cfg.densityTags)
	return clamp01(p)
}

// factorsFor lists the signals that contributed, in fixed trend order then
// tags, so output is stable across runs.
func factorsFor(cfg predictionConfig, scored []types.ScoredResponse, trendScores map[types.TrendName]types.TrendScore) []string {
	var factors []string
	names := make([]types.TrendName, 0, len(cfg.trendWeights))
	for name := range cfg.trendWeights {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	for _, name := range names {
		factors = append(factors, "trend:"+string(name))
	}
	for _, tag := range cfg.densityTags {
		if tagDensity(scored, []string{tag}) > 0 {
			factors = append(factors, "evidence:"+tag)
		}
	}
	return factors
}

// attentionPrediction scores the risk that current patterns warrant
// attention. Unlike the other predictions a higher probability is worse, so
// the stress-response trend contributes inverted.
func attentionPrediction(scored []types.ScoredResponse, trendScores map[types.TrendName]types.TrendScore, ctx *types.SentimentContext, confidence types.ConfidenceLevel) types.PredictionResult {
	p := attentionStressWeight * (1.0 - trendScores[types.TrendStressResponse].CappedScore)
	p += attentionDensityWeight * tagDensity(scored, attentionTags)
	if ctx != nil && ctx.NegativeDominant {
		p += attentionDominanceWeight * ctx.DominanceRatio
	}

	factors := []string{"trend:" + string(types.TrendStressResponse)}
	for _, tag := range attentionTags {
		if tagDensity(scored, []string{tag}) > 0 {
			factors = append(factors, "evidence:"+tag)
		}
	}
	if ctx != nil {
		flags := append([]string(nil), ctx.AttentionFlags...)
		sort.Strings(flags)
		for _, flag := range flags {
			factors = append(factors, "flag:"+flag)
		}
	}

	return types.PredictionResult{
		Type:        PredAttention,
		Probability: round3(clamp01(p)),
		Confidence:  confidence,
		Explanation: "Likelihood that current stress and energy patterns warrant attention.",
		Factors:     factors,
	}
}

// tagDensity is the fraction of responses carrying any of the given
// non-negated tags, in [0,1].
func tagDensity(scored []types.ScoredResponse, tags []string) float64 {
	if len(scored) == 0 {
		return 0.0
	}
	hits := 0
	for _, s := range scored {
		for _, tag := range tags {
			if s.Keywords.Has(tag) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(scored))
}

// confidenceFor derives the confidence label from response volume and mean
// quality. Sparse or low-quality sessions never report high confidence.
func confidenceFor(scored []types.ScoredResponse) types.ConfidenceLevel {
	if len(scored) == 0 {
		return types.ConfidenceLow
	}
	total := 0.0
	for _, s := range scored {
		total += s.Quality
	}
	mean := total / float64(len(scored))

	switch {
	case mean >= highConfidenceQuality && len(scored) >= highConfidenceMinimum:
		return types.ConfidenceHigh
	case mean < lowConfidenceQuality:
		return types.ConfidenceLow
	default:
		return types.ConfidenceMedium
	}
}

// Strengths emits the evidence-gated strength statements for a session.
// With responses present but no qualifying evidence it returns the literal
// no-strengths fallback; with zero responses it returns an empty list.
func Strengths(scored []types.ScoredResponse) []string {
	if len(scored) == 0 {
		return []string{}
	}

	var out []string
	for _, entry := range strengthTable {
		if anyHas(scored, entry.tag) {
			out = append(out, entry.statement)
		}
	}
	if len(out) == 0 {
		return []string{NoStrengths}
	}
	return out
}

// GrowthAreas surfaces growth opportunities from trend shortfalls, in fixed
// trend order. Zero responses yield an empty list.
func GrowthAreas(scored []types.ScoredResponse, trendScores map[types.TrendName]types.TrendScore) []string {
	if len(scored) == 0 {
		return []string{}
	}

	out := []string{}
	for _, name := range types.AllTrends {
		if trendScores[name].CappedScore < growthAreaThreshold {
			out = append(out, growthAreaTable[name])
		}
	}
	return out
}

func anyHas(scored []types.ScoredResponse, tag string) bool {
	for _, s := range scored {
		if s.Keywords.Has(tag) {
			return true
		}
	}
	return false
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

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
