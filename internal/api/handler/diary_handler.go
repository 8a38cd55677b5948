package handler

import (
	"net/http"

	"github.com/blaisecz/sleepmitra/internal/api/validation"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/service"
	"github.com/blaisecz/sleepmitra/pkg/pagination"
	"github.com/blaisecz/sleepmitra/pkg/problem"
)

type DiaryHandler struct {
	service service.DiaryService
}

func NewDiaryHandler(service service.DiaryService) *DiaryHandler {
	return &DiaryHandler{service: service}
}

// Create handles POST /v1/profiles/{profileId}/diary
// @Summary Record a night
// @Description Add a sleep diary entry. Entries are listed most recent first. Sleep quality defaults to 7.
// @Tags diary
// @Accept json
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Param request body domain.CreateDiaryEntryRequest true "Diary entry"
// @Success 201 {object} domain.DiaryEntryResponse
// @Failure 400 {object} problem.Problem "Invalid JSON or profile ID"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 422 {object} problem.Problem "Missing or invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/diary [post]
func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	var req domain.CreateDiaryEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError(msgRequiredFields, fieldErrors).Write(w)
		return
	}

	entry, err := h.service.Create(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err, "Failed to save diary entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry.ToResponse())
}

// List handles GET /v1/profiles/{profileId}/diary
// @Summary List diary entries
// @Description Most recent entries first, with computed durations.
// @Tags diary
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(5) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DiaryListResponse
// @Failure 400 {object} problem.Problem "Invalid profile ID"
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /profiles/{profileId}/diary [get]
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	limit, ok := parseIntParam(r, "limit", pagination.DefaultLimit)
	if !ok || limit < 1 {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{
			{Field: "limit", Message: "must be a positive integer"},
		}).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), id, domain.DiaryFilter{
		Limit:  limit,
		Cursor: r.URL.Query().Get("cursor"),
	})
	if err != nil {
		writeServiceError(w, err, "Failed to list diary entries")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Metrics handles GET /v1/profiles/{profileId}/diary/metrics
// @Summary Diary metrics
// @Description Sleep efficiency and descriptive statistics over all diary entries.
// @Tags diary
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.DiaryMetrics
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/diary/metrics [get]
func (h *DiaryHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	metrics, err := h.service.Metrics(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to compute diary metrics")
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}
