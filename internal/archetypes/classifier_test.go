package archetypes

import (
	"testing"

	"github.com/jonathan/reflection-insights/internal/keywords"
	"github.com/jonathan/reflection-insights/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_AchievementEvidenceSelectsAchiever(t *testing.T) {
	match := Classify(map[string]int{
		keywords.TagAchievement: 2,
		keywords.TagPassion:     1,
	}, nil)

	assert.Equal(t, Achiever, match.Name)
	assert.Greater(t, match.Affinity, 0.5)
}

func TestClassify_AchieverGatedWithoutAchievementEvidence(t *testing.T) {
	// Passion and resilience give Achiever the highest raw affinity of any
	// non-neutral entry, but without an achievement tag the gate removes it
	// before ranking.
	match := Classify(map[string]int{
		keywords.TagPassion:    3,
		keywords.TagResilience: 3,
	}, nil)

	assert.NotEqual(t, Achiever, match.Name)
	assert.Equal(t, Stabilizer, match.Name)
}

func TestClassify_InnovatorGatedWithoutCreativityEvidence(t *testing.T) {
	match := Classify(map[string]int{
		keywords.TagGrowth:     2,
		keywords.TagLeadership: 2,
	}, nil)

	assert.NotEqual(t, Innovator, match.Name)
}

func TestClassify_BlockedArchetypeNeverSelected(t *testing.T) {
	ctx := &types.SentimentContext{
		NegativeDominant:  true,
		BlockedArchetypes: []string{Achiever},
	}

	// Achievement evidence is present, but the sentiment context blocks the
	// entry. No other entry matches this tag, so the neutral fallback wins.
	match := Classify(map[string]int{keywords.TagAchievement: 3}, ctx)

	assert.Equal(t, Developing, match.Name)
}

func TestClassify_EmptyEvidenceFallsBackToDeveloping(t *testing.T) {
	match := Classify(map[string]int{}, nil)

	assert.Equal(t, Developing, match.Name)
	assert.Equal(t, 0.0, match.Affinity)
}

func TestClassify_UncertaintyEvidenceSelectsNeutral(t *testing.T) {
	match := Classify(map[string]int{keywords.TagUncertainty: 2}, nil)

	entry := Lookup(match.Name)
	require.NotNil(t, entry)
	assert.Equal(t, types.ArchetypeNeutral, entry.Category)
}

func TestClassify_TraitsLimited(t *testing.T) {
	match := Classify(map[string]int{
		keywords.TagAchievement: 2,
	}, nil)

	assert.Equal(t, Achiever, match.Name)
	assert.LessOrEqual(t, len(match.Traits), maxTraits)
}

func TestPrefer_NeutralWinsTiesUnderDominance(t *testing.T) {
	neutral := Lookup(Uncertain)
	stability := Lookup(Stabilizer)
	require.NotNil(t, neutral)
	require.NotNil(t, stability)

	assert.True(t, prefer(neutral, stability, true))
	assert.False(t, prefer(neutral, stability, false), "without dominance ties fall back to name order")
}

func TestAffinity_Bounds(t *testing.T) {
	counts := map[string]int{
		keywords.TagAchievement: 5,
		keywords.TagPassion:     5,
		keywords.TagResilience:  5,
	}
	for i := range Catalogue {
		score := affinity(counts, &Catalogue[i])
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	counts := map[string]int{
		keywords.TagGrowth:      1,
		keywords.TagChallenge:   1,
		keywords.TagUncertainty: 1,
	}
	want := Classify(counts, nil)
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, Classify(counts, nil))
	}
}

func TestLookup_UnknownName(t *testing.T) {
	assert.Nil(t, Lookup("Wanderer"))
	assert.NotNil(t, Lookup(Achiever))
}
