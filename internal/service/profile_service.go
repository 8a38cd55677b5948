package service

import (
	"context"

	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/repository"
	"github.com/google/uuid"
)

type ProfileService interface {
	Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type profileService struct {
	repo            repository.ProfileRepository
	defaultTimezone string
}

func NewProfileService(repo repository.ProfileRepository, defaultTimezone string) ProfileService {
	if defaultTimezone == "" {
		defaultTimezone = domain.DefaultTimezone
	}
	return &profileService{repo: repo, defaultTimezone: defaultTimezone}
}

func (s *profileService) Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	tz := req.Timezone
	if tz == "" {
		tz = s.defaultTimezone
	}

	profile := &domain.Profile{
		ID:       uuid.New(),
		Timezone: tz,
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *profileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.repo.GetByID(ctx, id)
}

// ensureProfile returns domain.ErrNotFound for unknown profiles.
func ensureProfile(ctx context.Context, repo repository.ProfileRepository, id uuid.UUID) error {
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}
