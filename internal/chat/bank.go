// Package chat drives the reflection conversation: a fixed question bank
// covering the five response categories, with sentiment-aware
// acknowledgments between questions.
package chat

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/reflection-insights/internal/schemas"
	"github.com/jonathan/reflection-insights/internal/types"
)

//go:embed questions.json
var questionBankJSON string

//go:embed question_bank.schema.json
var questionBankSchema string

// Acknowledgments holds the short reply prefixes keyed by the sentiment of
// the answer being acknowledged.
type Acknowledgments struct {
	Positive string `json:"positive"`
	Neutral  string `json:"neutral"`
	Negative string `json:"negative"`
}

// CategoryQuestion is one question bank entry
type CategoryQuestion struct {
	Category        types.ResponseCategory `json:"category"`
	Question        string                 `json:"question"`
	Acknowledgments Acknowledgments        `json:"acknowledgments"`
}

// Bank is the validated question bank
type Bank struct {
	Greeting   string             `json:"greeting"`
	Closing    string             `json:"closing"`
	Categories []CategoryQuestion `json:"categories"`
}

// LoadBank parses and schema-validates the embedded question bank
func LoadBank() (*Bank, error) {
	return parseBank(questionBankJSON)
}

func parseBank(raw string) (*Bank, error) {
	if err := schemas.ValidateJSONString(questionBankSchema, raw); err != nil {
		return nil, fmt.Errorf("question bank failed schema validation: %w", err)
	}

	var bank Bank
	if err := json.Unmarshal([]byte(raw), &bank); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}

	// Schema validation covers shape; cross-check the category sequence
	// against the known category set.
	for _, entry := range bank.Categories {
		if !entry.Category.IsValid() {
			return nil, fmt.Errorf("question bank references unknown category %q", entry.Category)
		}
	}
	return &bank, nil
}

// QuestionAt returns the question bank entry at a category index, or nil
// when the index is past the end of the conversation.
func (b *Bank) QuestionAt(index int) *CategoryQuestion {
	if index < 0 || index >= len(b.Categories) {
		return nil
	}
	return &b.Categories[index]
}

// Len returns the number of question categories
func (b *Bank) Len() int {
	return len(b.Categories)
}

// acknowledgmentFor picks the reply prefix matching an answer's sentiment
func (q *CategoryQuestion) acknowledgmentFor(category types.SentimentCategory) string {
	switch category {
	case types.SentimentPositive:
		return q.Acknowledgments.Positive
	case types.SentimentNegative:
		return q.Acknowledgments.Negative
	default:
		return q.Acknowledgments.Neutral
	}
}
