package sentiment

import (
	"testing"

	"github.com/jonathan/reflection-insights/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestScore_PositiveText(t *testing.T) {
	result := Score("I felt really happy and proud of my work")

	assert.Greater(t, result.Score, 0.0)
	assert.Equal(t, types.SentimentPositive, result.Category)
	assert.Greater(t, result.Intensity, 0.0)
}

func TestScore_NegativeText(t *testing.T) {
	result := Score("It was a terrible and exhausting week, I felt hopeless")

	assert.Less(t, result.Score, 0.0)
	assert.Equal(t, types.SentimentNegative, result.Category)
}

func TestScore_EmptyText(t *testing.T) {
	result := Score("")

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, types.SentimentNeutral, result.Category)
	assert.Equal(t, 0.0, result.Intensity)
}

func TestScore_NoLexiconMatches(t *testing.T) {
	result := Score("the quick brown fox jumps over the lazy dog")

	assert.Equal(t, 0.0, result.Score)
	assert.Equal(t, types.SentimentNeutral, result.Category)
}

func TestScore_NegationFlipsPositive(t *testing.T) {
	positive := Score("I was happy about it")
	negated := Score("I was not happy about it")

	assert.Greater(t, positive.Score, 0.0)
	assert.Less(t, negated.Score, 0.0, "negated positive word should contribute negatively")
}

func TestScore_NegationFlipsNegative(t *testing.T) {
	negative := Score("the project was a failure")
	negated := Score("the project was not a failure")

	assert.Less(t, negative.Score, 0.0)
	assert.Greater(t, negated.Score, 0.0, "negated negative word should contribute positively")
}

func TestScore_ContractedNegation(t *testing.T) {
	result := Score("I didn't enjoy the course at all")

	assert.Less(t, result.Score, 0.0)
}

func TestScore_NegationDampensMagnitude(t *testing.T) {
	plain := Score("happy")
	negated := Score("not happy")

	// Flip reduces magnitude: |not happy| < |happy|
	assert.InDelta(t, -plain.Score*negationDamping, negated.Score, 0.001)
}

func TestScore_IntensifierAmplifies(t *testing.T) {
	plain := Score("I was happy")
	intense := Score("I was extremely happy")

	assert.Greater(t, intense.Score, plain.Score)
}

func TestScore_DiminisherReduces(t *testing.T) {
	plain := Score("I was worried")
	diminished := Score("I was slightly worried")

	assert.Greater(t, diminished.Score, plain.Score, "diminished negative should be closer to zero")
	assert.Less(t, diminished.Score, 0.0)
}

func TestScore_ClampedToBounds(t *testing.T) {
	result := Score("extremely thrilled absolutely ecstatic incredibly overjoyed")

	assert.LessOrEqual(t, result.Score, 1.0)
	assert.GreaterOrEqual(t, result.Score, -1.0)
}

func TestCategorize_AsymmetricThresholds(t *testing.T) {
	// The negative threshold sits closer to zero than the positive one.
	assert.Equal(t, types.SentimentNeutral, Categorize(0.12))
	assert.Equal(t, types.SentimentNegative, Categorize(-0.12))
	assert.Equal(t, types.SentimentPositive, Categorize(0.2))
	assert.Equal(t, types.SentimentNeutral, Categorize(0.0))
}

func TestScore_Deterministic(t *testing.T) {
	text := "I was very proud but also somewhat worried about the deadline"
	first := Score(text)
	second := Score(text)

	assert.Equal(t, first, second)
}

func TestTokenize_KeepsContractions(t *testing.T) {
	tokens := Tokenize("I didn't like it, really!")

	assert.Equal(t, []string{"i", "didn't", "like", "it", "really"}, tokens)
}
