package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"assessment-portal/internal/database"
	"assessment-portal/internal/service"

	"github.com/rs/zerolog/hlog"
)

type MessageResponse struct {
	Message string `json:"message" example:"Session ended successfully"`
}

type ErrorResponse struct {
	Message string               `json:"message" example:"All fields are required."`
	Fields  []service.FieldError `json:"fields,omitempty"`
}

func decodeJSON(r *http.Request, dest any) error {
	if r.Body == nil {
		return errors.New("request body required")
	}
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, MessageResponse{Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message})
}

// respondServiceError maps service errors to HTTP statuses. Anything it does
// not recognise is logged and answered with 500 and fallback.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Message: verr.Message, Fields: verr.Fields})
	case errors.Is(err, service.ErrChildNotFound):
		respondError(w, http.StatusNotFound, "Child ID not found.")
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "Active session not found or already ended.")
	case errors.Is(err, service.ErrAdminNotFound):
		respondError(w, http.StatusNotFound, "Admin not found.")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password.")
	case errors.Is(err, database.ErrDuplicate):
		respondError(w, http.StatusConflict, "Record already exists.")
	default:
		hlog.FromRequest(r).Error().Err(err).Msg(fallback)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
