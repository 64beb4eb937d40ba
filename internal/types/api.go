package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateSessionRequest represents the request to start a new reflection session.
type CreateSessionRequest struct {
	UserName string `json:"user_name,omitempty" validate:"omitempty,max=100"`
}

// CreateSessionResponse represents the session creation response.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatRequest represents an incoming user message in a session.
type ChatRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid4"`
	Message   string `json:"message" validate:"required,min=1,max=4000"`
}

// ChatResponse represents the bot reply to a user message.
type ChatResponse struct {
	SessionID       string  `json:"session_id"`
	Message         string  `json:"message"`
	IsComplete      bool    `json:"is_complete"`
	CurrentCategory string  `json:"current_category,omitempty"`
	Progress        float64 `json:"progress"`
}

// AnalyzeRequest represents a direct analysis request over raw responses,
// used by the CLI and batch callers that bypass session storage.
type AnalyzeRequest struct {
	Responses []Response `json:"responses" validate:"required,dive"`
}

// Validate validates the CreateSessionRequest using the validator.
func (r *CreateSessionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
