package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/reflection-insights/internal/types"
)

func writeResponsesFile(t *testing.T, dir string, responses []types.Response) string {
	t.Helper()

	data, err := json.Marshal(responses)
	require.NoError(t, err)

	path := filepath.Join(dir, "responses.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadResponses_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeResponsesFile(t, tmpDir, []types.Response{
		{SessionID: uuid.New(), Category: types.CategoryCareer, Text: "I enjoy my work."},
		{SessionID: uuid.New(), Category: types.CategoryRoutine, Text: "I run every morning."},
	})

	responses, err := loadResponses(path)

	require.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, types.CategoryCareer, responses[0].Category)
}

func TestLoadResponses_MissingFile(t *testing.T) {
	_, err := loadResponses("/nonexistent/responses.json")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestLoadResponses_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "responses.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := loadResponses(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse responses")
}

func TestLoadResponses_UnknownCategory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "responses.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"category":"hobbies","text":"chess"}]`), 0o644))

	_, err := loadResponses(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestWriteAnalysis_CreatesOutputDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	outDir := filepath.Join(tmpDir, "new", "output")

	result := &types.AnalysisResult{SessionID: uuid.New()}
	path, err := writeAnalysis(outDir, result)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), result.SessionID.String())
}

func TestAnalyzeCommand_MissingInputFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "analyze")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestAnalyzeCommand_ProducesAnalysisFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	inputPath := writeResponsesFile(t, tmpDir, []types.Response{
		{SessionID: uuid.New(), Category: types.CategoryAchievement, Text: "I accomplished a big goal this year."},
	})
	outDir := filepath.Join(tmpDir, "output")

	cmd := exec.Command(binaryPath, "analyze", "--input", inputPath, "--out", outDir)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))

	data, err := os.ReadFile(filepath.Join(outDir, "analysis.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "trend_analysis")
	assert.Contains(t, string(data), "behavioral_profile")
}
