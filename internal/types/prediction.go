package types

// ConfidenceLevel labels how much the input data supports a prediction
type ConfidenceLevel string

// Confidence levels
const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// PredictionResult is one probabilistic behavioral prediction. Probability
// comes from a fixed linear combination of trend scores and keyword
// densities, never from a learned model.
type PredictionResult struct {
	Type        string          `json:"type"`
	Probability float64         `json:"probability"`
	Confidence  ConfidenceLevel `json:"confidence"`
	Explanation string          `json:"explanation"`
	Factors     []string        `json:"factors"`
}
