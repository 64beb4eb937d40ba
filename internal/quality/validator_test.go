package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyText(t *testing.T) {
	assert.Equal(t, 0.0, Score(""))
	assert.Equal(t, 0.0, Score("   "))
}

func TestScore_FillerOnly(t *testing.T) {
	score := Score("idk")

	assert.True(t, IsLowConfidence(score))
}

func TestScore_MultipleFillers(t *testing.T) {
	score := Score("ok fine idk")

	assert.True(t, IsLowConfidence(score))
}

func TestScore_SubstantiveResponse(t *testing.T) {
	score := Score("Last year I completed a certification course while working full time, and it taught me how to manage competing priorities")

	assert.Greater(t, score, 0.7)
	assert.LessOrEqual(t, score, 1.0)
	assert.False(t, IsLowConfidence(score))
}

func TestScore_ShortButStructured(t *testing.T) {
	score := Score("I finished my degree")

	assert.Greater(t, score, LowConfidenceThreshold)
	assert.Less(t, score, 0.8)
}

func TestScore_LengthSaturates(t *testing.T) {
	long := Score("I worked through a number of projects this year and learned how to balance competing deadlines while still keeping my own study routine going every single week without fail")
	veryLong := Score("I worked through a number of projects this year and learned how to balance competing deadlines while still keeping my own study routine going every single week without fail and then some more words that add nothing new to the structure of the answer at all")

	assert.InDelta(t, long, veryLong, 0.05)
}

func TestScore_Bounds(t *testing.T) {
	for _, text := range []string{"", "idk", "ok", "I learned a lot", "a b c d e f g"} {
		score := Score(text)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}
