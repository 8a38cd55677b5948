package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/blaisecz/sleepmitra/internal/api/validation"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/langfuse"
	"github.com/blaisecz/sleepmitra/internal/llm"
	"github.com/blaisecz/sleepmitra/internal/logging"
	"github.com/blaisecz/sleepmitra/internal/service"
	"github.com/blaisecz/sleepmitra/pkg/problem"
	"go.uber.org/zap"
)

// TherapyHandler serves the therapy page: result summary, progress
// counters, plans and LLM insights.
type TherapyHandler struct {
	service        service.TherapyService
	langfuseClient langfuse.Client
	logger         *zap.Logger
}

func NewTherapyHandler(service service.TherapyService, langfuseClient langfuse.Client, logger *zap.Logger) *TherapyHandler {
	logger = logging.OrNop(logger)
	return &TherapyHandler{
		service:        service,
		langfuseClient: langfuseClient,
		logger:         logger,
	}
}

// View handles GET /v1/profiles/{profileId}/therapy
// @Summary Therapy overview
// @Description Last assessment result with its badge, and progress counters. The result fields are omitted when no assessment has been completed.
// @Tags therapy
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.TherapyView
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/therapy [get]
func (h *TherapyHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	view, err := h.service.View(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to load therapy")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// StartSession handles POST /v1/profiles/{profileId}/therapy/session
// @Summary Start a therapy session
// @Description Counts today as an active day (once per day in the profile's timezone) and the intro video as watched.
// @Tags therapy
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.SessionStartResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/therapy/session [post]
func (h *TherapyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.StartSession(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to start session")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// TrackVideo handles POST /v1/profiles/{profileId}/therapy/videos
// @Summary Record a watched video
// @Tags therapy
// @Accept json
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Param request body domain.TrackVideoRequest true "Watched video"
// @Success 200 {object} domain.ProgressNotice
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/therapy/videos [post]
func (h *TherapyHandler) TrackVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	var req domain.TrackVideoRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	notice, err := h.service.TrackVideo(r.Context(), id, req.Title)
	if err != nil {
		writeServiceError(w, err, "Failed to record video")
		return
	}
	writeJSON(w, http.StatusOK, notice)
}

// LearnTechnique handles POST /v1/profiles/{profileId}/therapy/techniques
// @Summary Record a learned technique
// @Tags therapy
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.ProgressNotice
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/therapy/techniques [post]
func (h *TherapyHandler) LearnTechnique(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	notice, err := h.service.LearnTechnique(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to record technique")
		return
	}
	writeJSON(w, http.StatusOK, notice)
}

// Plan handles GET /v1/profiles/{profileId}/therapy/plan
// @Summary Therapy plan
// @Description Module plan for the last assessment severity; the mild plan when none exists.
// @Tags therapy
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} therapy.Plan
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/therapy/plan [get]
func (h *TherapyHandler) Plan(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	plan, err := h.service.Plan(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to build plan")
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// DownloadPlan handles GET /v1/profiles/{profileId}/therapy/plan/download
// @Summary Download the therapy plan
// @Description Plain-text plan, personal when an assessment result exists and general otherwise.
// @Tags therapy
// @Produce plain
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {string} string "Plan document"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/therapy/plan/download [get]
func (h *TherapyHandler) DownloadPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	filename, body, err := h.service.DownloadPlan(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to build plan")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// Insights handles GET /v1/profiles/{profileId}/therapy/insights
// @Summary LLM-powered therapy insights
// @Description Generates a summary, observations and guidance from the last assessment, diary metrics and therapy progress.
// @Tags therapy
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Success 200 {object} domain.InsightsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Profile not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /profiles/{profileId}/therapy/insights [get]
func (h *TherapyHandler) Insights(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Insights(r.Context(), id)
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.BadGateway("Failed to generate insights from LLM").Write(w)
			return
		}
		writeServiceError(w, err, "Failed to generate insights")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Feedback handles POST /v1/profiles/{profileId}/therapy/insights/feedback
// @Summary Rate generated insights
// @Description Submit a 1-5 rating and optional comment for a previous insights response. The rating is attached to its Langfuse trace when Langfuse is configured.
// @Tags therapy
// @Accept json
// @Param profileId path string true "Profile ID" format(uuid)
// @Param request body domain.InsightsFeedbackRequest true "Feedback"
// @Success 204 "Feedback accepted"
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /profiles/{profileId}/therapy/insights/feedback [post]
func (h *TherapyHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	var req domain.InsightsFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	// Scoring failures are logged and do not fail the request
	if err := h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	}); err != nil {
		h.logger.Warn("langfuse score failed",
			zap.String("profile_id", id.String()),
			zap.String("trace_id", req.TraceID),
			zap.Error(err),
		)
	}

	w.WriteHeader(http.StatusNoContent)
}
