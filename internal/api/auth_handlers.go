package api

import (
	"errors"
	"net/http"

	"assessment-portal/internal/enrich"
	"assessment-portal/internal/models"
	"assessment-portal/internal/service"
)

type LoginRequest struct {
	Email    string `json:"email" example:"admin@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginResponse struct {
	Message   string              `json:"message" example:"Login successful"`
	Token     string              `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	SessionID int64               `json:"sessionId" example:"12"`
	Admin     models.AdminProfile `json:"admin"`
}

// @Summary      Admin login
// @Description  Authenticates an admin, opens an admin session and returns a JWT valid for the configured lifetime.
// @Description  Unknown emails and wrong passwords produce the same 401 response and are both recorded as failed sessions.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Admin credentials"
// @Success      200          {object}  LoginResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      401          {object}  ErrorResponse
// @Failure      429          {object}  ErrorResponse
// @Failure      500          {object}  ErrorResponse
// @Router       /admin/login [post]
func (s *Server) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := s.auth.Login(r.Context(), service.LoginParams{
		Email:           req.Email,
		Password:        req.Password,
		ClientSignature: r.UserAgent(),
		ClientAddress:   enrich.ClientAddress(r),
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			respondJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Please provide email and password.", Fields: verr.Fields})
			return
		}
		respondServiceError(w, r, err, "Server error during login.")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Message:   "Login successful",
		Token:     res.Token,
		SessionID: res.SessionID,
		Admin:     res.Admin,
	})
}

// @Summary      Admin logout
// @Description  Ends an open admin session.
// @Tags         admin
// @Produce      json
// @Param        sessionId  path      int  true  "Admin session ID"
// @Success      200        {object}  MessageResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /admin/logout/{sessionId} [post]
func (s *Server) AdminLogoutHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	if err := s.auth.Logout(r.Context(), sessionID); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			respondError(w, http.StatusNotFound, "Active admin session not found or already ended.")
			return
		}
		respondServiceError(w, r, err, "Server error during admin logout.")
		return
	}

	respondMessage(w, http.StatusOK, "Admin session ended successfully")
}
