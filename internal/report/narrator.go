// Package report renders an AnalysisResult into prose. The analysis is the
// source of truth: narration reads it and never alters or recomputes a
// score. An LLM narrates when a client is configured; otherwise (or on any
// LLM failure) a deterministic template renders the same content.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jonathan/reflection-insights/internal/llm"
	"github.com/jonathan/reflection-insights/internal/prompts"
	"github.com/jonathan/reflection-insights/internal/types"
)

// Narrator renders analysis results into a report narrative
type Narrator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewNarrator creates a narrator. A nil client means template-only
// narration, which is a fully supported mode rather than a degradation.
func NewNarrator(client llm.Client, tier llm.ModelTier) *Narrator {
	if tier == "" {
		tier = llm.TierStandard
	}
	return &Narrator{client: client, tier: tier}
}

// Narrate renders the narrative for an analysis result. LLM failures fall
// back to the template so report generation never fails outright.
func (n *Narrator) Narrate(ctx context.Context, result *types.AnalysisResult) string {
	if n.client == nil {
		return TemplateNarrative(result)
	}

	prompt, err := buildPrompt(result)
	if err != nil {
		log.Printf("[report] prompt build failed, using template: %v", err)
		return TemplateNarrative(result)
	}

	narrative, err := n.client.GenerateContent(ctx, prompt, n.tier)
	if err != nil {
		log.Printf("[report] narration failed, using template: %v", err)
		return TemplateNarrative(result)
	}
	return narrative
}

// buildPrompt renders the narration prompt with the serialized analysis and
// the tone guidance matching the session's dominance verdict.
func buildPrompt(result *types.AnalysisResult) (string, error) {
	analysisJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal analysis for narration: %w", err)
	}

	toneKey := "tone-neutral"
	if result.SentimentContext.NegativeDominant {
		toneKey = "tone-negative"
	}
	tone, err := prompts.Get("report.json", toneKey)
	if err != nil {
		return "", err
	}
	template, err := prompts.Get("report.json", "narrate-report")
	if err != nil {
		return "", err
	}

	return prompts.Format(template, map[string]string{
		"ToneGuidance": tone,
		"AnalysisJSON": string(analysisJSON),
	}), nil
}
