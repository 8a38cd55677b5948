package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/logging"
	"github.com/blaisecz/sleepmitra/internal/metrics"
	"github.com/blaisecz/sleepmitra/internal/repository"
	"github.com/blaisecz/sleepmitra/pkg/pagination"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DiaryService interface {
	Create(ctx context.Context, profileID uuid.UUID, req *domain.CreateDiaryEntryRequest) (*domain.DiaryEntry, error)
	List(ctx context.Context, profileID uuid.UUID, filter domain.DiaryFilter) (*domain.DiaryListResponse, error)
	Metrics(ctx context.Context, profileID uuid.UUID) (*domain.DiaryMetrics, error)
}

type diaryService struct {
	profiles repository.ProfileRepository
	state    repository.StateRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

func NewDiaryService(profiles repository.ProfileRepository, state repository.StateRepository, m *metrics.Metrics, logger *zap.Logger) DiaryService {
	if m == nil {
		m = metrics.NewNop()
	}
	logger = logging.OrNop(logger)
	return &diaryService{
		profiles: profiles,
		state:    state,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Create validates the entry and prepends it to the profile's diary.
// Nothing is stored when validation fails.
func (s *diaryService) Create(ctx context.Context, profileID uuid.UUID, req *domain.CreateDiaryEntryRequest) (*domain.DiaryEntry, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Date) == "" || req.Bedtime == "" || req.WakeTime == "" {
		return nil, fmt.Errorf("%w: date, bedtime and wake_time are required", domain.ErrInvalidInput)
	}
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("%w: date %q", domain.ErrInvalidInput, req.Date)
	}
	if _, err := domain.SleepDuration(req.Bedtime, req.WakeTime); err != nil {
		return nil, err
	}

	quality := domain.DefaultSleepQuality
	if req.SleepQuality != nil {
		quality = *req.SleepQuality
	}

	entry := domain.DiaryEntry{
		ID:           uuid.New(),
		Date:         req.Date,
		Bedtime:      req.Bedtime,
		SleepLatency: req.SleepLatency,
		WakeTime:     req.WakeTime,
		WakeUps:      req.WakeUps,
		SleepQuality: quality,
		Notes:        req.Notes,
		Timestamp:    s.now().UTC(),
	}

	entries, err := s.state.UpdateDiaryEntries(ctx, profileID, func(entries []domain.DiaryEntry) ([]domain.DiaryEntry, error) {
		return append([]domain.DiaryEntry{entry}, entries...), nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.DiaryEntries.Inc()
	s.logger.Debug("diary entry saved",
		zap.String("profile_id", profileID.String()),
		zap.String("date", entry.Date),
		zap.Int("entries", len(entries)),
	)
	return &entry, nil
}

// List returns entries most recent first, paged by cursor.
func (s *diaryService) List(ctx context.Context, profileID uuid.UUID, filter domain.DiaryFilter) (*domain.DiaryListResponse, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed cursor", domain.ErrInvalidInput)
	}

	entries, err := s.state.DiaryEntries(ctx, profileID)
	if err != nil {
		return nil, err
	}

	page, next, err := pagination.Page(entries, entryCursor, cursor, filter.Limit)
	if err != nil {
		if errors.Is(err, pagination.ErrCursorNotFound) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return nil, err
	}

	response := &domain.DiaryListResponse{
		Data: make([]domain.DiaryEntryResponse, len(page)),
		Pagination: domain.PaginationResponse{
			HasMore: next != nil,
		},
	}
	for i := range page {
		response.Data[i] = page[i].ToResponse()
	}
	if next != nil {
		response.Pagination.NextCursor = next.Encode()
	}

	return response, nil
}

func (s *diaryService) Metrics(ctx context.Context, profileID uuid.UUID) (*domain.DiaryMetrics, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	entries, err := s.state.DiaryEntries(ctx, profileID)
	if err != nil {
		return nil, err
	}

	m := ComputeDiaryMetrics(entries)
	return &m, nil
}

func entryCursor(e domain.DiaryEntry) pagination.Cursor {
	return pagination.Cursor{ID: e.ID, Timestamp: e.Timestamp}
}
