package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTimezone is used when a profile is created without one.
const DefaultTimezone = "Asia/Kolkata"

// Profile stands in for one browser profile. Every stored value is scoped
// to a profile ID.
type Profile struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primaryKey" json:"id"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'Asia/Kolkata'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Location returns the profile's timezone, falling back to UTC.
func (p *Profile) Location() *time.Location {
	if p.Timezone != "" {
		if loc, err := time.LoadLocation(p.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// CreateProfileRequest is the request body for creating a profile.
// @Description Request payload for creating a profile.
type CreateProfileRequest struct {
	// IANA timezone, defaults to Asia/Kolkata
	Timezone string `json:"timezone" validate:"omitempty,timezone" example:"Asia/Kolkata"`
}

// ProfileResponse is the response body for profile endpoints.
// @Description Profile record.
type ProfileResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timezone  string    `json:"timezone" example:"Asia/Kolkata"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:00:00Z"`
}

func (p *Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Timezone:  p.Timezone,
		CreatedAt: p.CreatedAt,
	}
}
