// Package prediction derives probabilistic forward-looking statements from a
// session's trend scores and keyword densities. Every probability is a fixed
// linear combination with explicit weights; nothing here is learned.
package prediction

import (
	"github.com/jonathan/reflection-insights/internal/keywords"
	"github.com/jonathan/reflection-insights/internal/types"
)

// Prediction type names as they appear in API output
const (
	PredConsistency  = "consistency_likelihood"
	PredAdaptability = "adaptability"
	PredGrowth       = "growth_potential"
	PredAttention    = "attention_indicators"
)

// NoStrengths is the literal fallback emitted when a session has responses
// but no non-negated strength evidence. It is never paraphrased.
const NoStrengths = "No clear strengths identified"

// Confidence thresholds over the session's mean response quality
const (
	highConfidenceQuality = 0.7
	lowConfidenceQuality  = 0.3
	highConfidenceMinimum = 3
)

// predictionConfig is one named prediction: a linear combination of trend
// scores plus a keyword-density term, with a fixed explanation template.
type predictionConfig struct {
	trendWeights  map[types.TrendName]float64
	densityTags   []string
	densityWeight float64
	explanation   string
}

// predictionTable holds the auditable weight sets. Weights within each entry
// sum to 1.0 so the output stays in [0,1] without clamping surprises.
var predictionTable = map[string]predictionConfig{
	PredConsistency: {
		trendWeights: map[types.TrendName]float64{
			types.TrendConsistency: 0.60,
			types.TrendMotivation:  0.25,
		},
		densityTags:   []string{keywords.TagSelfImprovement},
		densityWeight: 0.15,
		explanation:   "Likelihood of maintaining current routines, based on consistency and motivation signals.",
	},
	PredAdaptability: {
		trendWeights: map[types.TrendName]float64{
			types.TrendStressResponse:    0.50,
			types.TrendGrowthOrientation: 0.30,
		},
		densityTags:   []string{keywords.TagAdaptation, keywords.TagChallenge},
		densityWeight: 0.20,
		explanation:   "Likelihood of adjusting well to changed circumstances, based on stress response and growth signals.",
	},
	PredGrowth: {
		trendWeights: map[types.TrendName]float64{
			types.TrendGrowthOrientation: 0.55,
			types.TrendMotivation:        0.25,
		},
		densityTags:   []string{keywords.TagGrowth, keywords.TagSelfImprovement},
		densityWeight: 0.20,
		explanation:   "Likelihood of continued skill and personal development, based on growth orientation and motivation.",
	},
}

// predictionOrder fixes output ordering; attention indicators are computed
// separately and always come last.
var predictionOrder = []string{PredConsistency, PredAdaptability, PredGrowth}

// Attention-indicator weights: probability that current patterns warrant
// attention, so pressure raises it and a strong stress response lowers it.
const (
	attentionStressWeight    = 0.40
	attentionDensityWeight   = 0.30
	attentionDominanceWeight = 0.30
)

// attentionTags are the negative tags whose density feeds the attention score
var attentionTags = []string{keywords.TagStress, keywords.TagExhaustion, keywords.TagLowMotivation}

// strengthTable maps evidence tags to the strength statement they license.
// A statement is emitted only when its tag is present and non-negated.
var strengthTable = []struct {
	tag       string
	statement string
}{
	{keywords.TagAchievement, "Follows through on concrete goals"},
	{keywords.TagResilience, "Recovers and persists through setbacks"},
	{keywords.TagGrowth, "Actively invests in learning and development"},
	{keywords.TagTeamwork, "Works well with and supports others"},
	{keywords.TagLeadership, "Takes initiative and guides others"},
	{keywords.TagCreativity, "Brings creative approaches to problems"},
	{keywords.TagSelfImprovement, "Maintains deliberate self-improvement habits"},
	{keywords.TagAdaptation, "Adapts effectively to changing situations"},
	{keywords.TagPassion, "Shows strong engagement with chosen pursuits"},
}

// growthAreaTable maps trend shortfalls to growth-opportunity statements
var growthAreaTable = map[types.TrendName]string{
	types.TrendMotivation:        "Rebuilding day-to-day motivation and engagement",
	types.TrendConsistency:       "Establishing steadier routines and habits",
	types.TrendGrowthOrientation: "Finding low-pressure opportunities to learn",
	types.TrendStressResponse:    "Developing sustainable ways to handle pressure",
}

// growthAreaThreshold: a trend below this capped score surfaces its
// growth-opportunity statement.
const growthAreaThreshold = 0.45
