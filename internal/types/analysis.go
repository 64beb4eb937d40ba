package types

import (
	"time"

	"github.com/google/uuid"
)

// BehavioralProfile holds the primary archetype classification for a session
type BehavioralProfile struct {
	PrimaryArchetype ArchetypeMatch `json:"primary_archetype"`
}

// AnalysisResult is the complete output of the analysis pipeline for one
// session. Downstream consumers (report narration included) treat every
// field as authoritative and read-only.
type AnalysisResult struct {
	SessionID         uuid.UUID                `json:"session_id"`
	AnalyzedAt        time.Time                `json:"analyzed_at"`
	TotalResponses    int                      `json:"total_responses"`
	TrendAnalysis     map[TrendName]TrendScore `json:"trend_analysis"`
	BehavioralProfile BehavioralProfile        `json:"behavioral_profile"`
	Predictions       []PredictionResult       `json:"predictions"`
	Strengths         []string                 `json:"strengths"`
	GrowthAreas       []string                 `json:"growth_opportunities"`
	SentimentContext  SentimentContext         `json:"sentiment_context"`
}
