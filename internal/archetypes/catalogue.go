// Package archetypes classifies a session's keyword evidence into one of a
// fixed catalogue of behavioral archetypes. Evidence-gated entries are
// filtered out before any affinity ranking.
package archetypes

import (
	"github.com/jonathan/reflection-insights/internal/keywords"
	"github.com/jonathan/reflection-insights/internal/types"
)

// Archetype names
const (
	Achiever   = "Achiever"
	Explorer   = "Explorer"
	Connector  = "Connector"
	Stabilizer = "Stabilizer"
	Adapter    = "Adapter"
	Innovator  = "Innovator"
	Developing = "Developing"
	Exploring  = "Exploring"
	Emerging   = "Emerging"
	Uncertain  = "Uncertain"
)

// maxTraits bounds how many trait descriptors a classification reports
const maxTraits = 3

// Catalogue is the fixed, closed archetype catalogue. Achiever and
// Innovator carry required evidence: without a matching non-negated tag
// they are unselectable regardless of affinity. The four neutral entries
// are the conservative fallbacks preferred under negative dominance.
var Catalogue = []types.Archetype{
	{
		Name:             Achiever,
		Category:         types.ArchetypeAchievement,
		Traits:           []string{"goal-oriented", "persistent", "competitive", "growth-minded"},
		Keywords:         []string{keywords.TagAchievement, keywords.TagPassion, keywords.TagResilience},
		Description:      "Driven by goals and measurable achievements",
		RequiredEvidence: []string{keywords.TagAchievement},
	},
	{
		Name:        Explorer,
		Category:    types.ArchetypeExploration,
		Traits:      []string{"curious", "adventurous", "open-minded"},
		Keywords:    []string{keywords.TagGrowth, keywords.TagChallenge, keywords.TagPassion},
		Description: "Motivated by new experiences and learning",
	},
	{
		Name:        Connector,
		Category:    types.ArchetypeSocial,
		Traits:      []string{"collaborative", "supportive", "relationship-focused"},
		Keywords:    []string{keywords.TagTeamwork, keywords.TagLeadership},
		Description: "Values relationships and team collaboration",
	},
	{
		Name:        Stabilizer,
		Category:    types.ArchetypeStability,
		Traits:      []string{"consistent", "reliable", "methodical"},
		Keywords:    []string{keywords.TagSelfImprovement, keywords.TagResilience},
		Description: "Prefers stability and established routines",
	},
	{
		Name:        Adapter,
		Category:    types.ArchetypeExploration,
		Traits:      []string{"flexible", "pragmatic", "resourceful"},
		Keywords:    []string{keywords.TagAdaptation, keywords.TagChallenge, keywords.TagResilience},
		Description: "Handles changing circumstances well",
	},
	{
		Name:             Innovator,
		Category:         types.ArchetypeAchievement,
		Traits:           []string{"creative", "independent", "problem-solver"},
		Keywords:         []string{keywords.TagCreativity, keywords.TagGrowth, keywords.TagLeadership},
		Description:      "Focuses on creating and improving",
		RequiredEvidence: []string{keywords.TagCreativity},
	},
	{
		Name:        Developing,
		Category:    types.ArchetypeNeutral,
		Traits:      []string{"growing", "learning", "building"},
		Keywords:    []string{keywords.TagGrowth, keywords.TagSelfImprovement},
		Description: "Currently in a developmental phase, building skills and direction",
	},
	{
		Name:        Exploring,
		Category:    types.ArchetypeNeutral,
		Traits:      []string{"searching", "questioning", "open"},
		Keywords:    []string{keywords.TagUncertainty, keywords.TagChallenge},
		Description: "Currently exploring options and directions",
	},
	{
		Name:        Emerging,
		Category:    types.ArchetypeNeutral,
		Traits:      []string{"transitioning", "evolving", "adapting"},
		Keywords:    []string{keywords.TagAdaptation, keywords.TagGrowth},
		Description: "In transition, with patterns still forming",
	},
	{
		Name:        Uncertain,
		Category:    types.ArchetypeNeutral,
		Traits:      []string{"questioning", "reflective", "undecided"},
		Keywords:    []string{keywords.TagUncertainty},
		Description: "Currently facing uncertainty about direction or goals",
	},
}

// Lookup returns the catalogue entry for a name, or nil when unknown
func Lookup(name string) *types.Archetype {
	for i := range Catalogue {
		if Catalogue[i].Name == name {
			return &Catalogue[i]
		}
	}
	return nil
}
