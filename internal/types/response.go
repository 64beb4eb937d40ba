// Package types provides type definitions for structured data used throughout the reflection-insights system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// ResponseCategory identifies which reflection topic a response belongs to
type ResponseCategory string

// Reflection topic categories covered by the question flow
const (
	CategoryEducation   ResponseCategory = "education"
	CategoryCareer      ResponseCategory = "career"
	CategoryAchievement ResponseCategory = "achievement"
	CategoryRoutine     ResponseCategory = "routine"
	CategoryChallenge   ResponseCategory = "challenge"
)

// AllCategories lists the categories in the order the question flow visits them
var AllCategories = []ResponseCategory{
	CategoryEducation,
	CategoryCareer,
	CategoryAchievement,
	CategoryRoutine,
	CategoryChallenge,
}

// IsValid reports whether the category is one of the known reflection topics
func (c ResponseCategory) IsValid() bool {
	switch c {
	case CategoryEducation, CategoryCareer, CategoryAchievement, CategoryRoutine, CategoryChallenge:
		return true
	}
	return false
}

// Response is a single free-text self-reflection answer.
// Responses are immutable once created; the analysis pipeline reads them
// but never modifies them.
type Response struct {
	SessionID uuid.UUID        `json:"session_id"`
	Category  ResponseCategory `json:"category"`
	Text      string           `json:"text"`
	CreatedAt time.Time        `json:"created_at"`
}
