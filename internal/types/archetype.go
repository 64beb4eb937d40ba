package types

// ArchetypeCategory groups catalogue entries by the kind of behavior they describe
type ArchetypeCategory string

// Archetype categories
const (
	ArchetypeAchievement ArchetypeCategory = "achievement"
	ArchetypeExploration ArchetypeCategory = "exploration"
	ArchetypeSocial      ArchetypeCategory = "social"
	ArchetypeStability   ArchetypeCategory = "stability"
	ArchetypeNeutral     ArchetypeCategory = "neutral"
)

// Archetype is one entry of the fixed behavioral archetype catalogue.
// Entries with a non-empty RequiredEvidence set are evidence-gated: they are
// unselectable unless at least one required tag is present among the
// session's non-negated keywords, regardless of affinity score.
type Archetype struct {
	Name             string            `json:"name"`
	Category         ArchetypeCategory `json:"category"`
	Traits           []string          `json:"traits"`
	Keywords         []string          `json:"keywords"`
	Description      string            `json:"description"`
	RequiredEvidence []string          `json:"required_evidence,omitempty"`
}

// EvidenceGated reports whether the archetype requires keyword evidence
// before it may be selected
func (a *Archetype) EvidenceGated() bool {
	return len(a.RequiredEvidence) > 0
}

// ArchetypeMatch is a classified archetype with its affinity score
type ArchetypeMatch struct {
	Name        string   `json:"name"`
	Affinity    float64  `json:"affinity"`
	Traits      []string `json:"traits"`
	Description string   `json:"description"`
}
