// Package keywords extracts behavioral keyword tags from reflection
// responses. Extraction is negation-aware: a trigger found under a negation
// marker is recorded separately and never feeds downstream scoring.
package keywords

// Behavioral keyword tags. Positive tags feed trend and archetype scoring;
// negative tags feed penalties and attention flags.
const (
	TagAchievement     = "achievement"
	TagGrowth          = "growth"
	TagChallenge       = "challenge"
	TagPassion         = "passion"
	TagResilience      = "resilience"
	TagLeadership      = "leadership"
	TagCreativity      = "creativity"
	TagTeamwork        = "teamwork"
	TagSelfImprovement = "self_improvement"
	TagAdaptation      = "adaptation"

	TagStress        = "stress"
	TagExhaustion    = "exhaustion"
	TagUncertainty   = "uncertainty"
	TagAvoidance     = "avoidance"
	TagLowMotivation = "low_motivation"
)

// triggerTable maps each tag to its trigger phrases. Multi-word triggers
// match contiguous token sequences. The table is fixed configuration; the
// extractor treats it as read-only.
var triggerTable = map[string][]string{
	TagAchievement: {
		"achieved", "accomplished", "succeeded", "won", "completed",
		"finished", "earned", "reached my goal", "milestone", "promoted",
		"first place", "award",
	},
	TagGrowth: {
		"grew", "learned", "improved", "developed", "progressed",
		"advanced", "evolved", "got better",
	},
	TagChallenge: {
		"struggled", "overcame", "faced", "dealt with", "handled",
		"managed", "survived", "worked through",
	},
	TagPassion: {
		"love", "passionate", "enjoy", "excited", "interested",
		"fascinated",
	},
	TagResilience: {
		"resilient", "persistent", "determined", "persevered",
		"bounced back", "kept going",
	},
	TagLeadership: {
		"led", "managed a team", "directed", "organized", "coordinated",
		"mentored",
	},
	TagCreativity: {
		"created", "designed", "innovated", "invented", "built",
	},
	TagTeamwork: {
		"team", "collaborated", "together", "group", "helped",
		"supported", "helped my team",
	},
	TagSelfImprovement: {
		"self-taught", "practice", "routine", "habit", "discipline",
		"every day", "daily",
	},
	TagAdaptation: {
		"adapted", "adjusted", "changed", "flexible", "transitioned",
	},

	TagStress: {
		"stressed", "pressure", "overwhelmed", "anxious", "worried",
		"tense", "overworked", "hectic", "hard time",
	},
	TagExhaustion: {
		"exhausted", "tired", "burnt out", "burned out", "draining",
		"drained", "worn out",
	},
	TagUncertainty: {
		"not sure", "uncertain", "confused", "unclear", "no idea",
		"unsure", "hard to say", "don't know", "dunno",
	},
	TagAvoidance: {
		"avoided", "ignored", "gave up", "quit", "walked away",
		"too much for me",
	},
	TagLowMotivation: {
		"unmotivated", "lazy", "bored", "indifferent", "no motivation",
		"reluctant", "unwilling", "dread", "hate",
	},
}

// negativeTags lists the tags that indicate strain rather than strength
var negativeTags = map[string]bool{
	TagStress:        true,
	TagExhaustion:    true,
	TagUncertainty:   true,
	TagAvoidance:     true,
	TagLowMotivation: true,
}

// IsNegativeTag reports whether a tag indicates strain rather than strength
func IsNegativeTag(tag string) bool {
	return negativeTags[tag]
}

// KnownTags returns every tag in the trigger table
func KnownTags() []string {
	tags := make([]string, 0, len(triggerTable))
	for tag := range triggerTable {
		tags = append(tags, tag)
	}
	return tags
}
