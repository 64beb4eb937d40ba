// Package trends scores the four behavioral trend dimensions (motivation,
// consistency, growth orientation, stress response) from a session's scored
// responses and its sentiment context.
package trends

import (
	"github.com/jonathan/reflection-insights/internal/keywords"
	"github.com/jonathan/reflection-insights/internal/types"
)

// Squashing and threshold constants. The logistic parameters and penalty
// magnitudes are tunable configuration, not algorithmic constants; they were
// chosen so that a session with no relevant tags lands at the 0.5 midpoint
// and two quality-1.0 positive tags push a trend near 0.75.
const (
	// logisticSlope controls how fast the squash saturates per unit of
	// quality-weighted tag evidence.
	logisticSlope = 1.1

	// Direction thresholds, with the band between them biased toward
	// reporting "stable".
	upwardThreshold   = 0.60
	downwardThreshold = 0.40

	// Penalty magnitudes
	exhaustionPenalty  = 0.15
	uncertaintyPenalty = 0.12
	lowDrivePenalty    = 0.15
	avoidancePenalty   = 0.15

	// hedgingDominanceRatio: fraction of responses carrying uncertainty
	// tags above which hedging is considered dominant.
	hedgingDominanceRatio = 0.5
)

// InsufficientData is the sentinel description returned for every trend
// when a session has no responses. Absence of data is not an error.
const InsufficientData = "Insufficient data for analysis"

// trendConfig describes one trend dimension: which tags raise it, which
// lower it, and the fixed description templates per score bracket.
type trendConfig struct {
	positiveTags []string
	penaltyTags  []string

	// Fixed description templates by score bracket. Descriptions are never
	// generated outside this set.
	highTemplate     string
	moderateTemplate string
	lowTemplate      string
}

// trendTable is the fixed per-trend configuration
var trendTable = map[types.TrendName]trendConfig{
	types.TrendMotivation: {
		positiveTags:     []string{keywords.TagAchievement, keywords.TagPassion, keywords.TagResilience},
		penaltyTags:      []string{keywords.TagLowMotivation, keywords.TagAvoidance},
		highTemplate:     "Responses show sustained drive, with concrete goals and engagement mentioned across topics.",
		moderateTemplate: "Responses show moderate drive, with some engagement alongside neutral or mixed signals.",
		lowTemplate:      "Responses show limited drive signals; motivation may currently be under strain.",
	},
	types.TrendConsistency: {
		positiveTags:     []string{keywords.TagSelfImprovement, keywords.TagResilience},
		penaltyTags:      []string{keywords.TagAvoidance, keywords.TagLowMotivation},
		highTemplate:     "Responses describe steady routines and habits maintained over time.",
		moderateTemplate: "Responses show partial routine signals, balanced with variability.",
		lowTemplate:      "Responses show few routine signals; patterns appear variable or disrupted.",
	},
	types.TrendGrowthOrientation: {
		positiveTags:     []string{keywords.TagGrowth, keywords.TagSelfImprovement, keywords.TagChallenge},
		penaltyTags:      []string{keywords.TagUncertainty, keywords.TagAvoidance},
		highTemplate:     "Responses emphasize learning and development, with concrete examples of progress.",
		moderateTemplate: "Responses show some openness to learning alongside neutral signals.",
		lowTemplate:      "Responses show few learning signals; growth orientation is not currently evident.",
	},
	types.TrendStressResponse: {
		positiveTags:     []string{keywords.TagChallenge, keywords.TagResilience, keywords.TagAdaptation, keywords.TagTeamwork},
		penaltyTags:      []string{keywords.TagStress, keywords.TagExhaustion, keywords.TagAvoidance},
		highTemplate:     "Responses describe challenges being addressed directly or with support.",
		moderateTemplate: "Responses show a mixed picture of coping, with both handled and unresolved pressure.",
		lowTemplate:      "Responses indicate current pressure with few coping signals; stress handling may need attention.",
	},
}
