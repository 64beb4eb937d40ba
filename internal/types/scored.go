package types

// ScoredResponse bundles a response with its per-response stage outputs
// (sentiment, quality, keywords). It is the unit the session-level stages
// consume; none of them re-run the per-response stages.
type ScoredResponse struct {
	Response  Response        `json:"response"`
	Sentiment SentimentResult `json:"sentiment"`
	Quality   float64         `json:"quality"`
	Keywords  KeywordSet      `json:"keywords"`
}
