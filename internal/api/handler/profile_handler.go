package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/sleepmitra/internal/api/validation"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/service"
	"github.com/blaisecz/sleepmitra/pkg/problem"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Create handles POST /v1/profiles
// @Summary Create a profile
// @Description Create an anonymous profile. Every stored value is scoped to it.
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body domain.CreateProfileRequest true "Profile creation request"
// @Success 201 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Create(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to create profile").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, profile.ToResponse())
}

// GetByID handles GET /v1/profiles/{profileId}
// @Summary Get profile by ID
// @Tags profiles
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId} [get]
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	profile, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Profile not found").Write(w)
			return
		}
		problem.InternalError("Failed to get profile").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, profile.ToResponse())
}
