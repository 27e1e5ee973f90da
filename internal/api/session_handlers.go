package api

import (
	"net/http"
	"strconv"

	"assessment-portal/internal/enrich"

	"github.com/go-chi/chi/v5"
)

type StartSessionRequest struct {
	ChildID string `json:"childId" example:"CH001"`
}

type StartSessionResponse struct {
	Message   string `json:"message" example:"Session started successfully"`
	SessionID int64  `json:"sessionId" example:"42"`
}

type FailSessionRequest struct {
	AttemptedChildID string `json:"attemptedChildId" example:"CH999"`
}

// @Summary      Start a child session
// @Description  Records a successful child login together with device, browser, OS and approximate location.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session  body      StartSessionRequest  true  "Child identifier"
// @Success      201      {object}  StartSessionResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /sessions/start [post]
func (s *Server) StartSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sessionID, err := s.sessions.StartChild(r.Context(), req.ChildID, r.UserAgent(), enrich.ClientAddress(r))
	if err != nil {
		respondServiceError(w, r, err, "Server error while starting session.")
		return
	}

	respondJSON(w, http.StatusCreated, StartSessionResponse{
		Message:   "Session started successfully",
		SessionID: sessionID,
	})
}

// @Summary      Record a failed child login
// @Description  Appends a failed attempt to the child ledger. A missing identifier is stored as UNKNOWN.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        attempt  body      FailSessionRequest  false  "Identifier the user typed"
// @Success      200      {object}  MessageResponse
// @Failure      429      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /sessions/fail [post]
func (s *Server) FailSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req FailSessionRequest
	// An unreadable body is still a failed attempt.
	_ = decodeJSON(r, &req)

	if err := s.sessions.FailChild(r.Context(), req.AttemptedChildID, r.UserAgent(), enrich.ClientAddress(r)); err != nil {
		respondServiceError(w, r, err, "Server error while logging failed session.")
		return
	}

	respondMessage(w, http.StatusOK, "Failed attempt logged")
}

// @Summary      End a child session
// @Description  Stamps logout time and duration on an open child session. Each session can be ended once.
// @Tags         sessions
// @Produce      json
// @Param        sessionId  path      int  true  "Session ID"
// @Success      200        {object}  MessageResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /sessions/end/{sessionId} [post]
func (s *Server) EndSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	if _, err := s.sessions.EndChild(r.Context(), sessionID); err != nil {
		respondServiceError(w, r, err, "Server error while ending session.")
		return
	}

	respondMessage(w, http.StatusOK, "Session ended successfully")
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "sessionId")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "Session ID is required.")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid session ID.")
		return 0, false
	}
	return id, true
}
