package api

import (
	"net/http"

	"assessment-portal/internal/service"

	"github.com/go-chi/chi/v5"
)

type RegisterChildRequest struct {
	Name   string `json:"name" example:"Asha"`
	DOB    string `json:"dob" example:"2016-05-10"`
	Gender string `json:"gender" example:"female"`
	Mobile string `json:"mobile" example:"9876543210"`
}

func (req RegisterChildRequest) params() service.RegisterChildParams {
	return service.RegisterChildParams{
		Name:   req.Name,
		DOB:    req.DOB,
		Gender: req.Gender,
		Mobile: req.Mobile,
	}
}

type RegisterChildResponse struct {
	Message string `json:"message" example:"Child registered successfully!"`
	ChildID string `json:"childId" example:"CH001"`
}

// @Summary      Register a child
// @Description  Validates the child's details, stores them and returns the generated public identifier.
// @Tags         children
// @Accept       json
// @Produce      json
// @Param        child  body      RegisterChildRequest  true  "Child details"
// @Success      201    {object}  RegisterChildResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      429    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /children/register [post]
func (s *Server) RegisterChildHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterChildRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	childID, err := s.children.Register(r.Context(), req.params())
	if err != nil {
		respondServiceError(w, r, err, "Server error while registering the child. Please try again later.")
		return
	}

	respondJSON(w, http.StatusCreated, RegisterChildResponse{
		Message: "Child registered successfully!",
		ChildID: childID,
	})
}

// @Summary      Look up a child
// @Description  Returns the public details of a child. The identifier is matched case-insensitively.
// @Tags         children
// @Produce      json
// @Param        childId  path      string  true  "Child identifier"  example(CH001)
// @Success      200      {object}  models.PublicChild
// @Failure      404      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /children/lookup/{childId} [get]
func (s *Server) LookupChildHandler(w http.ResponseWriter, r *http.Request) {
	child, err := s.children.Lookup(r.Context(), chi.URLParam(r, "childId"))
	if err != nil {
		respondServiceError(w, r, err, "Server error while looking up child.")
		return
	}

	respondJSON(w, http.StatusOK, child)
}
