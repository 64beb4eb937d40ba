package types

// TrendName identifies one of the four fixed behavioral dimensions
type TrendName string

// The four behavioral trend dimensions
const (
	TrendMotivation        TrendName = "motivation"
	TrendConsistency       TrendName = "consistency"
	TrendGrowthOrientation TrendName = "growth_orientation"
	TrendStressResponse    TrendName = "stress_response"
)

// AllTrends lists the trend dimensions in report order
var AllTrends = []TrendName{
	TrendMotivation,
	TrendConsistency,
	TrendGrowthOrientation,
	TrendStressResponse,
}

// TrendDirection describes the movement of a trend score
type TrendDirection string

// Trend direction values
const (
	DirectionUpward   TrendDirection = "upward"
	DirectionStable   TrendDirection = "stable"
	DirectionDownward TrendDirection = "downward"
)

// TrendScore is the output of one trend scorer.
// CappedScore = min(RawScore, cap) when the session is negative-dominant,
// otherwise CappedScore = RawScore. Both are in [0, 1]. Description is
// always drawn from a fixed template table, never generated.
type TrendScore struct {
	Name        TrendName      `json:"name"`
	RawScore    float64        `json:"raw_score"`
	CappedScore float64        `json:"capped_score"`
	Direction   TrendDirection `json:"direction"`
	Description string         `json:"description"`
}

// SentimentContext is the session-level aggregation verdict. It is computed
// once from all per-response sentiment results, is immutable afterward, and
// is recomputed from scratch whenever the response set changes.
type SentimentContext struct {
	NegativeDominant  bool                  `json:"negative_dominant"`
	DominanceRatio    float64               `json:"dominance_ratio"`
	MeanScore         float64               `json:"mean_score"`
	ScoreCaps         map[TrendName]float64 `json:"score_caps"`
	BlockedArchetypes []string              `json:"blocked_archetypes,omitempty"`
	AttentionFlags    []string              `json:"attention_flags,omitempty"`
}

// CapFor returns the score ceiling for a trend, defaulting to 1.0 when no
// cap has been recorded.
func (c *SentimentContext) CapFor(name TrendName) float64 {
	if c == nil || c.ScoreCaps == nil {
		return 1.0
	}
	if cap, ok := c.ScoreCaps[name]; ok {
		return cap
	}
	return 1.0
}

// IsBlocked reports whether an archetype name is in the blocked set
func (c *SentimentContext) IsBlocked(archetype string) bool {
	if c == nil {
		return false
	}
	for _, b := range c.BlockedArchetypes {
		if b == archetype {
			return true
		}
	}
	return false
}
