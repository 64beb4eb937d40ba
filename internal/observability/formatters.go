// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/reflection-insights/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// trendOrder fixes the display ordering of trend dimensions
var trendOrder = []types.TrendName{
	types.TrendMotivation,
	types.TrendConsistency,
	types.TrendGrowthOrientation,
	types.TrendStressResponse,
}

// PrintSentimentContext outputs the session-level dominance verdict
func (p *Printer) PrintSentimentContext(ctx *types.SentimentContext) {
	if ctx == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Negative dominant: %t\n", ctx.NegativeDominant))
	sb.WriteString(fmt.Sprintf("Dominance ratio:   %.2f\n", ctx.DominanceRatio))
	sb.WriteString(fmt.Sprintf("Mean sentiment:    %.2f\n", ctx.MeanScore))

	if len(ctx.BlockedArchetypes) > 0 {
		sb.WriteString(fmt.Sprintf("Blocked:           %s\n", strings.Join(ctx.BlockedArchetypes, ", ")))
	}
	if len(ctx.AttentionFlags) > 0 {
		sb.WriteString(fmt.Sprintf("Attention flags:   %s\n", strings.Join(ctx.AttentionFlags, ", ")))
	}

	p.printBox("SENTIMENT CONTEXT", strings.TrimRight(sb.String(), "\n"))
}

// PrintTrends outputs the four trend scores with raw/capped values
func (p *Printer) PrintTrends(trends map[types.TrendName]types.TrendScore) {
	if len(trends) == 0 {
		return
	}

	var sb strings.Builder
	for _, name := range trendOrder {
		score, ok := trends[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-20s raw=%.2f capped=%.2f %s\n",
			name, score.RawScore, score.CappedScore, score.Direction))
	}

	p.printBox("TREND SCORES", strings.TrimRight(sb.String(), "\n"))
}

// PrintAnalysis outputs a full analysis result summary
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	p.PrintSentimentContext(&result.SentimentContext)
	p.PrintTrends(result.TrendAnalysis)

	var sb strings.Builder
	archetype := result.BehavioralProfile.PrimaryArchetype
	sb.WriteString(fmt.Sprintf("Archetype: %s (affinity %.2f)\n", archetype.Name, archetype.Affinity))
	if len(archetype.Traits) > 0 {
		sb.WriteString(fmt.Sprintf("Traits:    %s\n", strings.Join(archetype.Traits, ", ")))
	}
	sb.WriteString("\n")

	if len(result.Predictions) > 0 {
		sb.WriteString("Predictions:\n")
		count := min(len(result.Predictions), maxItemsToShow)
		for i := 0; i < count; i++ {
			pred := result.Predictions[i]
			sb.WriteString(fmt.Sprintf("  • %s: %.2f (%s)\n", pred.Type, pred.Probability, pred.Confidence))
		}
		sb.WriteString("\n")
	}

	if len(result.Strengths) > 0 {
		sb.WriteString("Strengths:\n")
		for _, strength := range result.Strengths {
			sb.WriteString(fmt.Sprintf("  • %s\n", strength))
		}
	}
	if len(result.GrowthAreas) > 0 {
		sb.WriteString("Growth opportunities:\n")
		for _, area := range result.GrowthAreas {
			sb.WriteString(fmt.Sprintf("  • %s\n", area))
		}
	}

	p.printBox("BEHAVIORAL PROFILE", strings.TrimRight(sb.String(), "\n"))
}

// PrintResponses outputs the per-response scoring breakdown
func (p *Printer) PrintResponses(scored []types.ScoredResponse) {
	if len(scored) == 0 {
		return
	}

	var sb strings.Builder
	for i, s := range scored {
		sb.WriteString(fmt.Sprintf("%d. [%s] sentiment=%.2f (%s) quality=%.2f\n",
			i+1, s.Response.Category, s.Sentiment.Score, s.Sentiment.Category, s.Quality))
		if len(s.Keywords.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("   tags: %s\n", strings.Join(s.Keywords.Tags, ", ")))
		}
		if len(s.Keywords.NegatedTags) > 0 {
			sb.WriteString(fmt.Sprintf("   negated: %s\n", strings.Join(s.Keywords.NegatedTags, ", ")))
		}
	}

	p.printBox("SCORED RESPONSES", strings.TrimRight(sb.String(), "\n"))
}
