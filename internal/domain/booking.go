package domain

import "github.com/blaisecz/sleepmitra/internal/booking"

// ErrSlotUnavailable is returned when the chosen slot is not bookable.
var ErrSlotUnavailable = booking.ErrSlotUnavailable

// SlotRequest identifies one calendar slot.
// @Description A calendar slot chosen by the user.
type SlotRequest struct {
	Date string           `json:"date" validate:"required,date" example:"2024-01-15"`
	Time string           `json:"time" validate:"required,clock" example:"10:00"`
	Type booking.SlotType `json:"type" validate:"required,oneof=tele clinic" example:"tele" enums:"tele,clinic"`
}

// CalendarResponse lists bookable days.
// @Description Days with hourly slots.
type CalendarResponse struct {
	Days []booking.Day `json:"days"`
}

// DoctorsResponse lists recommended doctors.
// @Description Doctors ranked for the profile.
type DoctorsResponse struct {
	// Severity used for ranking, empty when no assessment exists
	Severity        string                   `json:"severity,omitempty" example:"moderate"`
	Recommendations []booking.Recommendation `json:"recommendations"`
}
