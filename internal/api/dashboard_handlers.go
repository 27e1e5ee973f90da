package api

import (
	"net/http"
	"strconv"

	"assessment-portal/internal/models"

	_ "assessment-portal/internal/database"
)

// @Summary      Dashboard counters
// @Description  Children totals by status and today's session activity.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  database.DashboardStats
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/dashboard [get]
func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.dashboard.Stats(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Server error while loading dashboard.")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// @Summary      List ledger rows
// @Description  Returns up to 100 sessions of one kind with an id greater than since, oldest first. Used to catch up before subscribing to the live feed.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        kind   query     string  false  "child or admin"  default(child)
// @Param        since  query     int     false  "Last session ID already seen"
// @Success      200    {array}   models.Session
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /admin/sessions [get]
func (s *Server) ListSessionsHandler(w http.ResponseWriter, r *http.Request) {
	kind := models.PrincipalKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = models.PrincipalChild
	}

	sinceStr := r.URL.Query().Get("since")
	if sinceStr == "" {
		sinceStr = "0"
	}

	sinceID, err := strconv.ParseInt(sinceStr, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid 'since' parameter, must be a number")
		return
	}

	sessions, err := s.sessions.List(r.Context(), kind, sinceID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve sessions")
		return
	}
	respondJSON(w, http.StatusOK, sessions)
}
