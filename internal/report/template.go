package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/reflection-insights/internal/types"
)

// trendOrder fixes the section ordering in the rendered report
var trendOrder = []types.TrendName{
	types.TrendMotivation,
	types.TrendConsistency,
	types.TrendGrowthOrientation,
	types.TrendStressResponse,
}

var trendHeadings = map[types.TrendName]string{
	types.TrendMotivation:        "Motivation",
	types.TrendConsistency:       "Consistency",
	types.TrendGrowthOrientation: "Growth orientation",
	types.TrendStressResponse:    "Stress response",
}

// TemplateNarrative renders a deterministic plain-text report from an
// analysis result. Every sentence traces to a field of the result; the
// template introduces no scores or claims of its own.
func TemplateNarrative(result *types.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("Reflection Report\n\n")

	archetype := result.BehavioralProfile.PrimaryArchetype
	fmt.Fprintf(&b, "Profile: %s. %s\n", archetype.Name, archetype.Description)
	if len(archetype.Traits) > 0 {
		fmt.Fprintf(&b, "Traits: %s.\n", strings.Join(archetype.Traits, ", "))
	}
	if result.SentimentContext.NegativeDominant {
		b.WriteString("The overall tone of these answers leaned negative, so the scores below are deliberately conservative.\n")
	}

	b.WriteString("\nTrends\n")
	for _, name := range trendOrder {
		score, ok := result.TrendAnalysis[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %.0f%% (%s). %s\n",
			trendHeadings[name], score.CappedScore*100, score.Direction, score.Description)
	}

	if len(result.Strengths) > 0 {
		b.WriteString("\nStrengths\n")
		for _, s := range result.Strengths {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	if len(result.GrowthAreas) > 0 {
		b.WriteString("\nGrowth opportunities\n")
		for _, g := range result.GrowthAreas {
			fmt.Fprintf(&b, "- %s\n", g)
		}
	}

	if len(result.Predictions) > 0 {
		b.WriteString("\nOutlook\n")
		for _, p := range result.Predictions {
			fmt.Fprintf(&b, "- %s: %.0f%% (%s confidence). %s\n",
				p.Type, p.Probability*100, p.Confidence, p.Explanation)
		}
	}

	if len(result.SentimentContext.AttentionFlags) > 0 {
		b.WriteString("\nWorth attention\n")
		for _, flag := range result.SentimentContext.AttentionFlags {
			fmt.Fprintf(&b, "- %s\n", strings.ReplaceAll(flag, "_", " "))
		}
	}

	return b.String()
}
