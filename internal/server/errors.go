// Package server provides the HTTP REST API for the reflection insight
// service.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrSessionNotFound indicates the session does not exist
type ErrSessionNotFound struct {
	SessionID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.SessionID)
}

// ErrSessionIncomplete indicates analysis was requested before the session
// answered every question category.
type ErrSessionIncomplete struct {
	SessionID uuid.UUID
	Answered  int
	Expected  int
}

func (e *ErrSessionIncomplete) Error() string {
	return fmt.Sprintf("session %s is incomplete: %d of %d answers recorded", e.SessionID, e.Answered, e.Expected)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrSessionNotFound:
		return http.StatusNotFound
	case *ErrSessionIncomplete:
		return http.StatusConflict
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
