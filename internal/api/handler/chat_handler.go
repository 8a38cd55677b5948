package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/blaisecz/sleepmitra/internal/api/validation"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/service"
	"github.com/blaisecz/sleepmitra/pkg/problem"
)

type ChatHandler struct {
	service service.ChatService
}

func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Reply handles POST /v1/chat
// @Summary Ask the FAQ chatbot
// @Description Answers from the sleep knowledge base: exact question match first, then keyword rules, then a fallback with suggestions. The reply is delayed to mimic typing.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body domain.ChatRequest true "User message"
// @Success 200 {object} domain.ChatResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /chat [post]
func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	resp, err := h.service.Reply(r.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			problem.ValidationError("कृपया अपना सवाल लिखें।", []problem.FieldError{
				{Field: "message", Message: "is required"},
			}).Write(w)
		case errors.Is(err, context.Canceled):
			// Client went away; nobody reads the response
		default:
			problem.InternalError("Failed to answer").Write(w)
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Suggestions handles GET /v1/chat/suggestions
// @Summary Quick questions
// @Description Questions the chatbot answers exactly, for quick-reply buttons.
// @Tags chat
// @Produce json
// @Success 200 {array} string
// @Router /chat/suggestions [get]
func (h *ChatHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Suggestions())
}
