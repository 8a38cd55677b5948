package service

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/sleepmitra/internal/booking"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/repository"
	"github.com/google/uuid"
)

// BookingService exposes the appointment calendar and dialog. Nothing is
// persisted and confirmed slots stay available.
type BookingService interface {
	Calendar(from time.Time, days int) *domain.CalendarResponse
	Select(req *domain.SlotRequest) (*booking.Summary, error)
	Confirm(req *domain.SlotRequest) (*booking.Confirmation, error)
	RecommendDoctors(ctx context.Context, profileID uuid.UUID, c booking.Criteria) (*domain.DoctorsResponse, error)
}

type bookingService struct {
	profiles repository.ProfileRepository
	state    repository.StateRepository
}

func NewBookingService(profiles repository.ProfileRepository, state repository.StateRepository) BookingService {
	return &bookingService{profiles: profiles, state: state}
}

func (s *bookingService) Calendar(from time.Time, days int) *domain.CalendarResponse {
	return &domain.CalendarResponse{Days: booking.Week(from, days)}
}

func (s *bookingService) Select(req *domain.SlotRequest) (*booking.Summary, error) {
	slot, err := lookupSlot(req)
	if err != nil {
		return nil, err
	}
	_, summary, err := booking.NewFlow().Select(slot)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *bookingService) Confirm(req *domain.SlotRequest) (*booking.Confirmation, error) {
	slot, err := lookupSlot(req)
	if err != nil {
		return nil, err
	}
	flow, _, err := booking.NewFlow().Select(slot)
	if err != nil {
		return nil, err
	}
	_, confirmation, err := flow.Confirm()
	if err != nil {
		return nil, err
	}
	return &confirmation, nil
}

// RecommendDoctors ranks doctors using the profile's last assessment
// severity, when one exists.
func (s *bookingService) RecommendDoctors(ctx context.Context, profileID uuid.UUID, c booking.Criteria) (*domain.DoctorsResponse, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	result, err := s.state.LastAssessmentResult(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if result != nil {
		c.Severity = result.Severity
	}

	return &domain.DoctorsResponse{
		Severity:        string(c.Severity),
		Recommendations: booking.Recommend(c),
	}, nil
}

// lookupSlot maps unknown slots to domain.ErrInvalidInput.
func lookupSlot(req *domain.SlotRequest) (booking.Slot, error) {
	slot, err := booking.Lookup(req.Date, req.Time, req.Type)
	if err != nil {
		return booking.Slot{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return slot, nil
}
