package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/reflection-insights/internal/analysis"
	"github.com/jonathan/reflection-insights/internal/observability"
	"github.com/jonathan/reflection-insights/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analysis pipeline over a responses file",
	Long:  "Run sentiment scoring, keyword extraction, trend scoring, archetype classification, and predictions over a JSON file of reflection responses, without a database.",
	RunE:  runAnalyze,
}

var (
	analyzeInput   string
	analyzeOut     string
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Path to JSON file containing an array of responses (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOut, "out", "o", "", "Output directory for the analysis JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted analysis summary")

	analyzeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	responses, err := loadResponses(analyzeInput)
	if err != nil {
		return err
	}

	sessionID := uuid.New()
	if len(responses) > 0 && responses[0].SessionID != uuid.Nil {
		sessionID = responses[0].SessionID
	}

	result, err := analysis.Analyze(cmd.Context(), sessionID, responses)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		scored := make([]types.ScoredResponse, 0, len(responses))
		for _, r := range responses {
			scored = append(scored, analysis.ScoreResponse(r))
		}
		printer.PrintResponses(scored)
		printer.PrintAnalysis(result)
	}

	if analyzeOut != "" {
		path, err := writeAnalysis(analyzeOut, result)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Analysis written: %s\n", path)
		return nil
	}

	if !analyzeVerbose {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode analysis: %w", err)
		}
	}

	return nil
}

// loadResponses reads a JSON array of responses from disk
func loadResponses(path string) ([]types.Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var responses []types.Response
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("failed to parse responses: %w", err)
	}

	for i, r := range responses {
		if !r.Category.IsValid() {
			return nil, fmt.Errorf("response %d has unknown category %q", i, r.Category)
		}
	}

	return responses, nil
}

// writeAnalysis writes the analysis result to <outDir>/analysis.json
func writeAnalysis(outDir string, result *types.AnalysisResult) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(outDir, "analysis.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
