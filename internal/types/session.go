package types

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole identifies who sent a conversation message
type MessageRole string

// Conversation roles
const (
	RoleUser MessageRole = "user"
	RoleBot  MessageRole = "bot"
)

// Message is a single turn in the reflection conversation
type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

// Session tracks one reflection conversation and its progress through the
// question categories.
type Session struct {
	ID            uuid.UUID `json:"id"`
	UserName      string    `json:"user_name,omitempty"`
	CategoryIndex int       `json:"category_index"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
