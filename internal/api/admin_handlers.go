package api

import (
	"net/http"

	_ "assessment-portal/internal/models"
)

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

// @Summary      Current admin
// @Description  Returns the profile of the admin the bearer token was issued to.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.AdminProfile
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/me [get]
func (s *Server) GetCurrentAdminHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetAdminFromContext(r.Context())
	if claims == nil {
		respondError(w, http.StatusInternalServerError, "Could not retrieve admin from token")
		return
	}

	profile, err := s.auth.Profile(r.Context(), claims.AdminID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve admin")
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: err.Error()})
		return
	}
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
