// Package quality scores how much usable signal a reflection response carries.
// Quality is a weighting factor in [0, 1]; low-quality responses are
// down-weighted by downstream stages, never discarded.
package quality

import (
	"strings"

	"github.com/jonathan/reflection-insights/internal/sentiment"
)

// Component weights for the quality score. Length carries most of the
// signal; structure and substance adjust it.
const (
	lengthWeight    = 0.5
	structureWeight = 0.25
	substanceWeight = 0.25

	// fullLengthWords is the word count at which the length component saturates
	fullLengthWords = 20

	// LowConfidenceThreshold marks responses whose contribution should be
	// treated as low-confidence by aggregate scoring.
	LowConfidenceThreshold = 0.3
)

// fillerTokens are low-information responses that carry no analyzable content
var fillerTokens = map[string]bool{
	"idk": true, "ok": true, "okay": true, "fine": true, "good": true,
	"yes": true, "no": true, "maybe": true, "sure": true, "dunno": true,
	"nothing": true, "meh": true, "yeah": true, "nope": true,
}

// verbMarkers is a small heuristic set of verb-like tokens used to detect
// sentence structure. Suffix checks catch regular inflections.
var verbMarkers = map[string]bool{
	"am": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true,
	"do": true, "did": true, "felt": true, "feel": true, "went": true,
	"got": true, "made": true, "took": true, "want": true, "like": true,
	"think": true, "thought": true, "know": true, "knew": true,
}

// Score computes the quality of a text span in [0, 1]. Empty or missing
// text scores 0 rather than producing an error, keeping the pipeline total
// over malformed input.
func Score(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0.0
	}

	tokens := sentiment.Tokenize(trimmed)
	if len(tokens) == 0 {
		return 0.0
	}

	// All-filler responses ("idk", "ok fine") carry no signal.
	if allFiller(tokens) {
		return 0.1
	}

	length := float64(len(tokens)) / fullLengthWords
	if length > 1.0 {
		length = 1.0
	}

	structure := 0.0
	if hasVerbLikeToken(tokens) {
		structure = 1.0
	}

	substance := 1.0 - fillerRatio(tokens)

	return lengthWeight*length + structureWeight*structure + substanceWeight*substance
}

// IsLowConfidence reports whether a quality score falls below the
// low-confidence threshold.
func IsLowConfidence(q float64) bool {
	return q < LowConfidenceThreshold
}

func allFiller(tokens []string) bool {
	for _, t := range tokens {
		if !fillerTokens[t] {
			return false
		}
	}
	return true
}

func fillerRatio(tokens []string) float64 {
	count := 0
	for _, t := range tokens {
		if fillerTokens[t] {
			count++
		}
	}
	return float64(count) / float64(len(tokens))
}

func hasVerbLikeToken(tokens []string) bool {
	for _, t := range tokens {
		if verbMarkers[t] {
			return true
		}
		if len(t) > 4 && (strings.HasSuffix(t, "ed") || strings.HasSuffix(t, "ing")) {
			return true
		}
	}
	return false
}
