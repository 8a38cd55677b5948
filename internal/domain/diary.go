package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// DefaultSleepQuality applies when an entry is saved without a rating.
	DefaultSleepQuality = 7
)

// DiaryEntry is one night in the sleep diary.
type DiaryEntry struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	Bedtime      string    `json:"bedtime"`
	SleepLatency *int      `json:"sleep_latency,omitempty"`
	WakeTime     string    `json:"wake_time"`
	WakeUps      *int      `json:"wake_ups,omitempty"`
	SleepQuality int       `json:"sleep_quality"`
	Notes        string    `json:"notes,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// CreateDiaryEntryRequest is the request body for adding a diary entry.
// @Description Request payload for recording one night of sleep.
type CreateDiaryEntryRequest struct {
	// Night of the entry (YYYY-MM-DD)
	Date string `json:"date" validate:"required,date" example:"2024-01-15"`
	// Time the user went to bed (HH:MM, 24h)
	Bedtime string `json:"bedtime" validate:"required,clock" example:"23:00"`
	// Minutes it took to fall asleep
	SleepLatency *int `json:"sleep_latency,omitempty" validate:"omitempty,min=0,max=600" example:"15"`
	// Time the user woke up (HH:MM, 24h)
	WakeTime string `json:"wake_time" validate:"required,clock" example:"07:00"`
	// Number of times the user woke during the night
	WakeUps *int `json:"wake_ups,omitempty" validate:"omitempty,min=0,max=50" example:"1"`
	// Subjective quality from 1 to 10, defaults to 7
	SleepQuality *int `json:"sleep_quality,omitempty" validate:"omitempty,min=1,max=10" example:"7"`
	// Free-form notes
	Notes string `json:"notes,omitempty" validate:"max=1000" example:"अच्छी नींद"`
}

// DiaryEntryResponse is a diary entry with its derived duration.
// @Description Diary entry with the computed sleep duration.
type DiaryEntryResponse struct {
	DiaryEntry
	// Time between bedtime and wake time, e.g. "8 घंटे 0 मिनट"
	Duration string `json:"duration" example:"8 घंटे 0 मिनट"`
	// Same duration in minutes
	DurationMinutes int `json:"duration_minutes" example:"480"`
}

func (e *DiaryEntry) ToResponse() DiaryEntryResponse {
	resp := DiaryEntryResponse{DiaryEntry: *e, Duration: "N/A"}
	if d, err := SleepDuration(e.Bedtime, e.WakeTime); err == nil {
		resp.Duration = FormatDuration(d)
		resp.DurationMinutes = int(d.Minutes())
	}
	return resp
}

// DiaryListResponse is the response body for listing diary entries.
// @Description Paginated diary entries, most recent first.
type DiaryListResponse struct {
	Data       []DiaryEntryResponse `json:"data"`
	Pagination PaginationResponse   `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// DiaryFilter contains paging parameters for listing diary entries.
type DiaryFilter struct {
	Limit  int
	Cursor string
}

// SleepDuration is the time from bedtime to wake time. A wake time earlier
// than bedtime falls on the next day.
func SleepDuration(bedtime, wakeTime string) (time.Duration, error) {
	bed, err := time.Parse(ClockLayout, bedtime)
	if err != nil {
		return 0, fmt.Errorf("%w: bedtime %q", ErrInvalidInput, bedtime)
	}
	wake, err := time.Parse(ClockLayout, wakeTime)
	if err != nil {
		return 0, fmt.Errorf("%w: wake time %q", ErrInvalidInput, wakeTime)
	}
	if wake.Before(bed) {
		wake = wake.Add(24 * time.Hour)
	}
	return wake.Sub(bed), nil
}

func FormatDuration(d time.Duration) string {
	total := int(d.Minutes())
	return fmt.Sprintf("%d घंटे %d मिनट", total/60, total%60)
}
