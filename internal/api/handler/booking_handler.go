package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/blaisecz/sleepmitra/internal/api/validation"
	"github.com/blaisecz/sleepmitra/internal/booking"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/service"
	"github.com/blaisecz/sleepmitra/pkg/problem"
)

// BookingHandler serves the appointment calendar and doctor
// recommendations.
type BookingHandler struct {
	service service.BookingService
	now     func() time.Time
}

func NewBookingHandler(service service.BookingService) *BookingHandler {
	return &BookingHandler{service: service, now: time.Now}
}

// Slots handles GET /v1/booking/slots
// @Summary Appointment calendar
// @Description Hourly slots from 09:00 to 16:00 alternating tele and clinic visits. Availability is fixed per date.
// @Tags booking
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD), defaults to today" example(2024-01-15)
// @Param days query integer false "Number of days" default(7) minimum(1) maximum(31)
// @Success 200 {object} domain.CalendarResponse
// @Failure 422 {object} problem.Problem
// @Router /booking/slots [get]
func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	var fieldErrors []problem.FieldError

	from := h.now()
	if v := r.URL.Query().Get("from"); v != "" {
		d, err := time.Parse(domain.DateLayout, v)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "from", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			from = d
		}
	}

	days, ok := parseIntParam(r, "days", booking.DefaultDays)
	if !ok || days < 1 || days > booking.MaxDays {
		fieldErrors = append(fieldErrors, problem.FieldError{Field: "days", Message: "must be between 1 and 31"})
	}

	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Calendar(from, days))
}

// Select handles POST /v1/booking/select
// @Summary Select a slot
// @Description Returns the summary shown before confirming.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body domain.SlotRequest true "Chosen slot"
// @Success 200 {object} booking.Summary
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem "Unknown or unavailable slot"
// @Failure 500 {object} problem.Problem
// @Router /booking/select [post]
func (h *BookingHandler) Select(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSlot(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Select(req)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Confirm handles POST /v1/booking/confirm
// @Summary Confirm a slot
// @Description Confirms the appointment. Nothing is reserved; the slot stays bookable.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body domain.SlotRequest true "Chosen slot"
// @Success 200 {object} booking.Confirmation
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem "Unknown or unavailable slot"
// @Failure 500 {object} problem.Problem
// @Router /booking/confirm [post]
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSlot(w, r)
	if !ok {
		return
	}

	confirmation, err := h.service.Confirm(req)
	if err != nil {
		writeBookingError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, confirmation)
}

// Doctors handles GET /v1/profiles/{profileId}/doctors
// @Summary Recommended doctors
// @Description Doctors ranked by rating, language, location and the severity of the last assessment.
// @Tags booking
// @Produce json
// @Param profileId path string true "Profile ID" format(uuid)
// @Param language query string false "Preferred language" default(हिंदी)
// @Param location query string false "City"
// @Param limit query integer false "Number of doctors" default(3) minimum(1) maximum(10)
// @Success 200 {object} domain.DoctorsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profiles/{profileId}/doctors [get]
func (h *BookingHandler) Doctors(w http.ResponseWriter, r *http.Request) {
	id, ok := profileID(w, r)
	if !ok {
		return
	}

	limit, ok := parseIntParam(r, "limit", booking.DefaultRecommendLimit)
	if !ok || limit < 1 || limit > 10 {
		problem.ValidationError("Invalid query parameters", []problem.FieldError{
			{Field: "limit", Message: "must be between 1 and 10"},
		}).Write(w)
		return
	}

	resp, err := h.service.RecommendDoctors(r.Context(), id, booking.Criteria{
		Language: r.URL.Query().Get("language"),
		Location: r.URL.Query().Get("location"),
		Limit:    limit,
	})
	if err != nil {
		writeServiceError(w, err, "Failed to recommend doctors")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BookingHandler) decodeSlot(w http.ResponseWriter, r *http.Request) (*domain.SlotRequest, bool) {
	var req domain.SlotRequest
	if !decodeJSON(w, r, &req) {
		return nil, false
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return nil, false
	}
	return &req, true
}

func writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSlotUnavailable):
		problem.ValidationError("यह समय उपलब्ध नहीं है", []problem.FieldError{
			{Field: "time", Message: "is not available"},
		}).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.ValidationError("No such time slot", []problem.FieldError{
			{Field: "time", Message: "does not match a slot of this type"},
		}).Write(w)
	default:
		problem.InternalError("Failed to process booking").Write(w)
	}
}
