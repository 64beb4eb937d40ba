package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/reflection-insights/internal/server/ratelimit"
)

func TestHTTPStatus_Mappings(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrSessionNotFound{SessionID: uuid.New()}))
	assert.Equal(t, http.StatusConflict, HTTPStatus(&ErrSessionIncomplete{SessionID: uuid.New(), Answered: 2, Expected: 5}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "message", Message: "required"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestErrSessionIncomplete_Message(t *testing.T) {
	id := uuid.New()
	err := &ErrSessionIncomplete{SessionID: id, Answered: 3, Expected: 5}

	assert.Contains(t, err.Error(), id.String())
	assert.Contains(t, err.Error(), "3 of 5")
}

func TestExtractClientID(t *testing.T) {
	s := &Server{}

	r := httptest.NewRequest("GET", "/health", nil)
	r.RemoteAddr = "192.0.2.10:52611"
	assert.Equal(t, "192.0.2.10", s.extractClientID(r))

	r.RemoteAddr = "not-an-addr"
	assert.Equal(t, "not-an-addr", s.extractClientID(r))
}

func TestWithCORS_PreflightShortCircuits(t *testing.T) {
	s := &Server{}
	called := false
	handler := s.withCORS(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/chat", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called, "preflight must not reach the next handler")
}

func TestSetRateLimitHeaders(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()

	s.setRateLimitHeaders(w, ratelimit.Info{
		Limit:     60,
		Remaining: 12,
		ResetTime: time.Unix(1700000000, 0),
	})

	assert.Equal(t, "60", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "12", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "1700000000", w.Header().Get("X-RateLimit-Reset"))
}

func TestPathUUID_Invalid(t *testing.T) {
	s := &Server{}
	r := httptest.NewRequest("GET", "/sessions/not-a-uuid", nil)
	r.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()

	_, ok := s.pathUUID(w, r, "id")

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
