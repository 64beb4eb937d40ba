package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/reflection-insights/internal/analysis"
	"github.com/jonathan/reflection-insights/internal/types"
)

// handleCreateSession starts a new reflection session and returns the
// greeting plus the first question.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req types.CreateSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := s.store.CreateSession(r.Context(), req.UserName)
	if err != nil {
		log.Printf("[server] create session failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	opening := s.bank.Opening()
	if err := s.store.SaveMessage(r.Context(), session.ID, types.RoleBot, opening); err != nil {
		log.Printf("[server] save greeting failed: %v", err)
	}

	s.jsonResponse(w, http.StatusCreated, types.CreateSessionResponse{
		SessionID: session.ID.String(),
		Message:   opening,
	})
}

// handleListSessions returns recent sessions
func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	sessions, err := s.store.ListRecentSessions(r.Context(), limit)
	if err != nil {
		log.Printf("[server] list sessions failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list sessions")
		return
	}
	if sessions == nil {
		sessions = []types.Session{}
	}
	s.jsonResponse(w, http.StatusOK, sessions)
}

// handleGetSession returns one session by ID
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	session, err := s.store.GetSession(r.Context(), id)
	if err != nil {
		log.Printf("[server] get session failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to get session")
		return
	}
	if session == nil {
		s.notFound(w, id)
		return
	}
	s.jsonResponse(w, http.StatusOK, session)
}

// handleDeleteSession deletes a session and its dependent records
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	session, err := s.store.GetSession(r.Context(), id)
	if err != nil {
		log.Printf("[server] get session failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete session")
		return
	}
	if session == nil {
		s.notFound(w, id)
		return
	}

	if err := s.store.DeleteSession(r.Context(), id); err != nil {
		log.Printf("[server] delete session failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete session")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleListMessages returns a session's conversation history
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	messages, err := s.store.ListMessages(r.Context(), id)
	if err != nil {
		log.Printf("[server] list messages failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list messages")
		return
	}
	if messages == nil {
		messages = []types.Message{}
	}
	s.jsonResponse(w, http.StatusOK, messages)
}

// handleChat records one user answer and returns the bot reply with the
// next question.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid session_id")
		return
	}

	session, err := s.store.GetSession(r.Context(), sessionID)
	if err != nil {
		log.Printf("[server] get session failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	if session == nil {
		s.notFound(w, sessionID)
		return
	}

	turn, err := s.bank.HandleMessage(session, req.Message)
	if err != nil {
		log.Printf("[server] chat turn failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	if err := s.store.SaveMessage(r.Context(), sessionID, types.RoleUser, req.Message); err != nil {
		log.Printf("[server] save user message failed: %v", err)
	}
	if turn.Recorded != nil {
		if err := s.store.SaveResponse(r.Context(), *turn.Recorded); err != nil {
			log.Printf("[server] save response failed: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to record answer")
			return
		}
		if err := s.store.AdvanceSession(r.Context(), sessionID, turn.NextIndex, turn.Completed); err != nil {
			log.Printf("[server] advance session failed: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to advance session")
			return
		}
	}
	if err := s.store.SaveMessage(r.Context(), sessionID, types.RoleBot, turn.Reply); err != nil {
		log.Printf("[server] save bot message failed: %v", err)
	}

	s.jsonResponse(w, http.StatusOK, types.ChatResponse{
		SessionID:       sessionID.String(),
		Message:         turn.Reply,
		IsComplete:      turn.Completed,
		CurrentCategory: string(turn.CurrentCategory),
		Progress:        turn.Progress,
	})
}

// handleGetAnalysis runs the scoring pipeline over a session's recorded
// responses. Partial sessions analyze fine; absence of data degrades the
// output rather than erroring.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	session, err := s.store.GetSession(r.Context(), id)
	if err != nil {
		log.Printf("[server] get session failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	if session == nil {
		s.notFound(w, id)
		return
	}

	responses, err := s.store.ListResponses(r.Context(), id)
	if err != nil {
		log.Printf("[server] list responses failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load responses")
		return
	}

	result, err := analysis.Analyze(r.Context(), id, responses)
	if err != nil {
		log.Printf("[server] analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// reportEnvelope is the report endpoint response body
type reportEnvelope struct {
	Analysis  *types.AnalysisResult `json:"analysis"`
	Narrative string                `json:"narrative"`
}

// handleGetReport returns the narrated report for a completed session,
// generating and persisting it on first request.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	session, err := s.store.GetSession(r.Context(), id)
	if err != nil {
		log.Printf("[server] get session failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	if session == nil {
		s.notFound(w, id)
		return
	}
	if !session.Completed {
		answered, err := s.store.CountResponses(r.Context(), id)
		if err != nil {
			answered = session.CategoryIndex
		}
		incomplete := &ErrSessionIncomplete{SessionID: id, Answered: answered, Expected: s.bank.Len()}
		s.errorResponse(w, HTTPStatus(incomplete), incomplete.Error())
		return
	}

	// Saved reports are served as-is: analysis is deterministic and
	// responses are immutable once recorded, so a stored report cannot go
	// stale.
	saved, narrative, err := s.store.GetReport(r.Context(), id)
	if err != nil {
		log.Printf("[server] get report failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load report")
		return
	}
	if saved != nil {
		s.jsonResponse(w, http.StatusOK, reportEnvelope{Analysis: saved, Narrative: narrative})
		return
	}

	responses, err := s.store.ListResponses(r.Context(), id)
	if err != nil {
		log.Printf("[server] list responses failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to load responses")
		return
	}

	result, err := analysis.Analyze(r.Context(), id, responses)
	if err != nil {
		log.Printf("[server] analysis failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	rendered := s.narrator.Narrate(r.Context(), result)
	if err := s.store.SaveReport(r.Context(), id, result, rendered); err != nil {
		log.Printf("[server] save report failed: %v", err)
	}

	s.jsonResponse(w, http.StatusOK, reportEnvelope{Analysis: result, Narrative: rendered})
}

// pathUUID parses a UUID path parameter, writing a 400 on failure
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// notFound writes the session-not-found error response
func (s *Server) notFound(w http.ResponseWriter, id uuid.UUID) {
	err := &ErrSessionNotFound{SessionID: id}
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
