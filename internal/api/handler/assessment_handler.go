package handler

import (
	"errors"
	"net/http"

	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/service"
	"github.com/blaisecz/sleepmitra/pkg/problem"
)

// AssessmentHandler drives the questionnaire wizard.
type AssessmentHandler struct {
	service service.AssessmentService
}

func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// Current handles GET /v1/profiles/{profileId}/assessment
// @Summary Current wizard step
// @Description Returns the step to render, with answers already given for it.
// @Tags assessment
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.AssessmentView
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/assessment [get]
func (h *AssessmentHandler) Current(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Current(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to load assessment")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Advance handles POST /v1/profiles/{profileId}/assessment/advance
// @Summary Submit the current step
// @Description Records the answers of the current step and moves forward. Submitting the last step scores the run, stores the result and returns it with the wizard reset to step 1.
// @Tags assessment
// @Accept json
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Param request body domain.AdvanceRequest true "Selections for the current step"
// @Success 200 {object} domain.AssessmentView
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem "Unanswered or out-of-range questions"
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/assessment/advance [post]
func (h *AssessmentHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	var req domain.AdvanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// An absent answers map is an incomplete step like any other; the
	// wizard reports each question and counts the rejection.
	view, err := h.service.Advance(r.Context(), id, req.Answers)
	if err != nil {
		var verr *assessment.ValidationError
		if errors.As(err, &verr) {
			problem.ValidationError(msgAnswerAll, stepFieldErrors(verr)).Write(w)
			return
		}
		writeServiceError(w, err, "Failed to advance assessment")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Retreat handles POST /v1/profiles/{profileId}/assessment/retreat
// @Summary Go back one step
// @Description Has no effect on the first step.
// @Tags assessment
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.AssessmentView
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/assessment/retreat [post]
func (h *AssessmentHandler) Retreat(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Retreat(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to retreat assessment")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Restart handles POST /v1/profiles/{profileId}/assessment/restart
// @Summary Start over
// @Description Clears the answers of the running wizard. The stored result is kept.
// @Tags assessment
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.AssessmentView
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/assessment/restart [post]
func (h *AssessmentHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Restart(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to restart assessment")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Result handles GET /v1/profiles/{profileId}/assessment/result
// @Summary Last assessment result
// @Tags assessment
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} assessment.Result
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Unknown profile or no completed assessment"
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/assessment/result [get]
func (h *AssessmentHandler) Result(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	result, err := h.service.LastResult(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNoAssessmentResult) {
			problem.NotFound("No assessment has been completed yet").Write(w)
			return
		}
		writeServiceError(w, err, "Failed to load assessment result")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func stepFieldErrors(verr *assessment.ValidationError) []problem.FieldError {
	var out []problem.FieldError
	for _, id := range verr.Missing {
		out = append(out, problem.FieldError{Field: "answers." + id, Message: "is required"})
	}
	for _, id := range verr.Invalid {
		out = append(out, problem.FieldError{Field: "answers." + id, Message: "is not an option of this question"})
	}
	return out
}
