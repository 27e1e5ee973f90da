package api

import (
	"fmt"
	"net/http"

	"assessment-portal/internal/service"

	"github.com/go-chi/chi/v5"
)

type AdminCreateChildResponse struct {
	Message string `json:"message" example:"Child registered successfully by Admin."`
	ChildID string `json:"child_id" example:"CH002"`
}

type UpdateChildRequest struct {
	Name   *string `json:"name,omitempty" example:"Asha K"`
	DOB    *string `json:"dob,omitempty" example:"2016-05-10"`
	Gender *string `json:"gender,omitempty" example:"female"`
	Mobile *string `json:"mobile,omitempty" example:"9876543210"`
	Status *string `json:"status,omitempty" example:"active"`
}

type SetChildStatusRequest struct {
	Status string `json:"status" example:"inactive"`
}

// @Summary      List children
// @Description  Returns every registered child, newest first.
// @Tags         admin-children
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Child
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/children [get]
func (s *Server) ListChildrenHandler(w http.ResponseWriter, r *http.Request) {
	children, err := s.children.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, r, err, "Server error while fetching children.")
		return
	}
	respondJSON(w, http.StatusOK, children)
}

// @Summary      Register a child as admin
// @Tags         admin-children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        child  body      RegisterChildRequest  true  "Child details"
// @Success      201    {object}  AdminCreateChildResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /admin/children [post]
func (s *Server) AdminCreateChildHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterChildRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	childID, err := s.children.Register(r.Context(), req.params())
	if err != nil {
		respondServiceError(w, r, err, "Server error during child registration.")
		return
	}

	respondJSON(w, http.StatusCreated, AdminCreateChildResponse{
		Message: "Child registered successfully by Admin.",
		ChildID: childID,
	})
}

// @Summary      Get a child
// @Description  Returns the full record of a child including status and creation time.
// @Tags         admin-children
// @Produce      json
// @Security     BearerAuth
// @Param        childId  path      string  true  "Child identifier"
// @Success      200      {object}  models.Child
// @Failure      401      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /admin/children/{childId} [get]
func (s *Server) AdminGetChildHandler(w http.ResponseWriter, r *http.Request) {
	child, err := s.children.Get(r.Context(), chi.URLParam(r, "childId"))
	if err != nil {
		respondServiceError(w, r, err, "Server error while fetching child details.")
		return
	}
	respondJSON(w, http.StatusOK, child)
}

// @Summary      Update a child
// @Description  Replaces the given fields. Omitted fields keep their current values.
// @Tags         admin-children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        childId  path      string              true  "Child identifier"
// @Param        child    body      UpdateChildRequest  true  "Fields to change"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /admin/children/{childId} [put]
func (s *Server) AdminUpdateChildHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateChildRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := s.children.Update(r.Context(), chi.URLParam(r, "childId"), service.UpdateChildParams{
		Name:   req.Name,
		DOB:    req.DOB,
		Gender: req.Gender,
		Mobile: req.Mobile,
		Status: req.Status,
	})
	if err != nil {
		respondServiceError(w, r, err, "Server error while updating child details.")
		return
	}

	respondMessage(w, http.StatusOK, "Child updated successfully.")
}

// @Summary      Change child status
// @Tags         admin-children
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        childId  path      string                 true  "Child identifier"
// @Param        status   body      SetChildStatusRequest  true  "active or inactive"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /admin/children/{childId}/status [put]
func (s *Server) AdminSetChildStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req SetChildStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.children.SetStatus(r.Context(), chi.URLParam(r, "childId"), req.Status); err != nil {
		respondServiceError(w, r, err, "Server error while updating status.")
		return
	}

	respondMessage(w, http.StatusOK, fmt.Sprintf("Child status updated to %s.", req.Status))
}
