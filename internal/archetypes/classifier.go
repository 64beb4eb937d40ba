package archetypes

import (
	"math"

	"github.com/jonathan/reflection-insights/internal/types"
)

// Classify selects the primary archetype for a session from its non-negated
// tag frequencies. Eligibility is resolved before any ranking happens:
// evidence-gated entries without a required tag and entries blocked by the
// sentiment context are removed first, then the survivors are ranked by
// affinity. A high raw affinity can never resurrect an ineligible entry.
func Classify(tagCounts map[string]int, ctx *types.SentimentContext) types.ArchetypeMatch {
	negativeDominant := ctx != nil && ctx.NegativeDominant

	candidates := eligible(tagCounts, ctx)
	if len(candidates) == 0 {
		// Everything gated or blocked: fall back to the conservative
		// neutral entry rather than inventing a classification.
		return matchFor(Lookup(Developing), 0.0)
	}

	best := candidates[0]
	bestAffinity := affinity(tagCounts, best)
	for _, a := range candidates[1:] {
		score := affinity(tagCounts, a)
		switch {
		case score > bestAffinity:
			best, bestAffinity = a, score
		case score == bestAffinity && prefer(a, best, negativeDominant):
			best = a
		}
	}

	if bestAffinity == 0.0 {
		return matchFor(Lookup(Developing), 0.0)
	}
	return matchFor(best, bestAffinity)
}

// eligible filters the catalogue down to selectable entries: evidence gates
// and sentiment-context blocks are applied here, before ranking.
func eligible(tagCounts map[string]int, ctx *types.SentimentContext) []*types.Archetype {
	var out []*types.Archetype
	for i := range Catalogue {
		a := &Catalogue[i]
		if ctx != nil && ctx.IsBlocked(a.Name) {
			continue
		}
		if a.EvidenceGated() && !hasRequiredEvidence(a, tagCounts) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func hasRequiredEvidence(a *types.Archetype, tagCounts map[string]int) bool {
	for _, tag := range a.RequiredEvidence {
		if tagCounts[tag] > 0 {
			return true
		}
	}
	return false
}

// affinity is the cosine similarity between the session's tag frequency
// vector and the archetype's characteristic tag set (an indicator vector).
// Both vectors are non-negative, so the result is in [0,1].
func affinity(tagCounts map[string]int, a *types.Archetype) float64 {
	if len(a.Keywords) == 0 {
		return 0.0
	}

	dot := 0.0
	for _, tag := range a.Keywords {
		dot += float64(tagCounts[tag])
	}
	if dot == 0.0 {
		return 0.0
	}

	sessionNorm := 0.0
	for _, count := range tagCounts {
		sessionNorm += float64(count * count)
	}
	return dot / (math.Sqrt(sessionNorm) * math.Sqrt(float64(len(a.Keywords))))
}

// prefer breaks exact affinity ties: under negative dominance a neutral
// entry beats a non-neutral one; otherwise the lexically smaller name wins
// so classification stays deterministic.
func prefer(candidate, incumbent *types.Archetype, negativeDominant bool) bool {
	if negativeDominant {
		candidateNeutral := candidate.Category == types.ArchetypeNeutral
		incumbentNeutral := incumbent.Category == types.ArchetypeNeutral
		if candidateNeutral != incumbentNeutral {
			return candidateNeutral
		}
	}
	return candidate.Name < incumbent.Name
}

func matchFor(a *types.Archetype, affinity float64) types.ArchetypeMatch {
	traits := a.Traits
	if len(traits) > maxTraits {
		traits = traits[:maxTraits]
	}
	out := make([]string, len(traits))
	copy(out, traits)

	return types.ArchetypeMatch{
		Name:        a.Name,
		Affinity:    round3(affinity),
		Traits:      out,
		Description: a.Description,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
