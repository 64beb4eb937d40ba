package keywords

import (
	"sort"
	"strings"

	"github.com/jonathan/reflection-insights/internal/sentiment"
	"github.com/jonathan/reflection-insights/internal/types"
)

// negationLookback is the number of tokens inspected before a trigger match
const negationLookback = 3

// negationMarkers guard trigger matches: a trigger preceded by one of these
// within the lookback window is recorded as negated.
var negationMarkers = map[string]bool{
	"not": true, "never": true, "no": true, "nothing": true,
	"nobody": true, "neither": true, "without": true, "n't": true,
}

// Extract finds behavioral keyword tags in a text span. A tag lands in
// Tags when at least one of its trigger occurrences is outside negation
// scope; tags seen only under negation land in NegatedTags. A tag never
// appears in both sets.
func Extract(text string) types.KeywordSet {
	tokens := sentiment.Tokenize(text)
	if len(tokens) == 0 {
		return types.KeywordSet{}
	}

	affirmed := make(map[string]bool)
	negated := make(map[string]bool)

	for tag, triggers := range triggerTable {
		for _, trigger := range triggers {
			for _, pos := range findTrigger(tokens, trigger) {
				if negatedAt(tokens, pos) {
					negated[tag] = true
				} else {
					affirmed[tag] = true
				}
			}
		}
	}

	// Affirmed evidence wins: a tag with any non-negated occurrence is not
	// reported as negated.
	set := types.KeywordSet{}
	for tag := range affirmed {
		set.Tags = append(set.Tags, tag)
	}
	for tag := range negated {
		if !affirmed[tag] {
			set.NegatedTags = append(set.NegatedTags, tag)
		}
	}
	sort.Strings(set.Tags)
	sort.Strings(set.NegatedTags)
	return set
}

// findTrigger returns the start positions of every contiguous occurrence of
// the trigger's token sequence within tokens.
func findTrigger(tokens []string, trigger string) []int {
	want := sentiment.Tokenize(trigger)
	if len(want) == 0 || len(want) > len(tokens) {
		return nil
	}

	var positions []int
	for i := 0; i+len(want) <= len(tokens); i++ {
		match := true
		for j, w := range want {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			positions = append(positions, i)
		}
	}
	return positions
}

// negatedAt reports whether a negation marker sits inside the lookback
// window before position i.
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
