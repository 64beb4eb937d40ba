package types

// SentimentCategory classifies the overall polarity of a text span
type SentimentCategory string

// Sentiment polarity categories
const (
	SentimentPositive SentimentCategory = "positive"
	SentimentNeutral  SentimentCategory = "neutral"
	SentimentNegative SentimentCategory = "negative"
)

// SentimentResult is the per-response output of the sentiment scorer.
// Score is in [-1, 1]; Intensity is the mean absolute magnitude of the
// contributing lexicon matches and is always >= 0.
type SentimentResult struct {
	Score     float64           `json:"score"`
	Category  SentimentCategory `json:"category"`
	Intensity float64           `json:"intensity"`
}

// KeywordSet holds the behavioral keyword tags extracted from one response.
// Tags contains only tags found outside negation scope; NegatedTags records
// tags that appeared under negation, for auditability only. A tag never
// appears in both sets for the same response.
type KeywordSet struct {
	Tags        []string `json:"tags"`
	NegatedTags []string `json:"negated_tags,omitempty"`
}

// Has reports whether tag is present among the non-negated tags
func (k *KeywordSet) Has(tag string) bool {
	for _, t := range k.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasNegated reports whether tag was recorded under negation scope
func (k *KeywordSet) HasNegated(tag string) bool {
	for _, t := range k.NegatedTags {
		if t == tag {
			return true
		}
	}
	return false
}
