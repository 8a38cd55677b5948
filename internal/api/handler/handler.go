// Package handler holds the HTTP handlers of the SleepMitra API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	msgAnswerAll      = "कृपया सभी प्रश्नों के उत्तर दें"
	msgRequiredFields = "कृपया सभी आवश्यक फील्ड भरें"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// profileID parses the {profileId} URL parameter and writes a 400 when it
// is malformed.
func profileID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "profileId"))
	if err != nil {
		problem.BadRequest("Invalid profile ID format").WithInstance(r).Write(w)
		return uuid.Nil, false
	}
	return id, true
}

// decodeJSON decodes the request body and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return false
	}
	return true
}

// writeServiceError maps the errors shared by every profile-scoped
// endpoint. fallback is the detail of the 500 response.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Profile not found").Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.ValidationError(err.Error(), nil).Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}

// parseIntParam parses an integer query parameter with a default value.
// ok is false when the parameter is present but not an integer.
func parseIntParam(r *http.Request, name string, defaultValue int) (int, bool) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue, true
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue, false
	}
	return parsed, true
}
