package sentiment

import (
	"strings"
	"unicode"

	"github.com/jonathan/reflection-insights/internal/types"
)

// Score performs lexicon-based sentiment analysis on a single text span.
// It is a pure function: deterministic given the fixed lexicons, with no
// side effects. Empty or unmatched text scores neutral.
func Score(text string) types.SentimentResult {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return types.SentimentResult{Category: types.SentimentNeutral}
	}

	var sum, absSum float64
	matches := 0

	for i, token := range tokens {
		base, ok := positiveLexicon[token]
		if !ok {
			base, ok = negativeLexicon[token]
		}
		if !ok {
			continue
		}

		contribution := base * modifierFor(tokens, i)
		if negatedAt(tokens, i) {
			contribution = -contribution * negationDamping
		}

		sum += contribution
		absSum += abs(contribution)
		matches++
	}

	if matches == 0 {
		return types.SentimentResult{Category: types.SentimentNeutral}
	}

	score := clamp(sum/float64(matches), -1.0, 1.0)
	intensity := absSum / float64(matches)

	return types.SentimentResult{
		Score:     score,
		Category:  Categorize(score),
		Intensity: intensity,
	}
}

// Categorize maps a sentiment score to its polarity category using the
// fixed asymmetric thresholds.
func Categorize(score float64) types.SentimentCategory {
	switch {
	case score > positiveThreshold:
		return types.SentimentPositive
	case score < negativeThreshold:
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}

// Tokenize lowercases and splits text into word tokens, keeping internal
// apostrophes so contractions like "didn't" survive as single tokens.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

// negatedAt reports whether any token inside the lookback window preceding
// position i is a negation marker or a contracted negation ("didn't").
func negatedAt(tokens []string, i int) bool {
	start := i - negationLookback
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if negationMarkers[tokens[j]] || strings.HasSuffix(tokens[j], "n't") {
			return true
		}
	}
	return false
}

// modifierFor returns the intensity multiplier contributed by the token
// immediately preceding position i.
func modifierFor(tokens []string, i int) float64 {
	if i == 0 {
		return 1.0
	}
	prev := tokens[i-1]
	if m, ok := intensifiers[prev]; ok {
		return m
	}
	if m, ok := diminishers[prev]; ok {
		return m
	}
	return 1.0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
