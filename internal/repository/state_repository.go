package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/logging"
	"github.com/blaisecz/sleepmitra/internal/therapy"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StateRepository gives typed access to the values the app persists per
// profile. Missing keys read as empty values. A value that no longer
// decodes is logged and also read as empty.
//
// The Update methods run a read-modify-write that concurrent callers for
// the same profile cannot interleave with.
type StateRepository interface {
	DiaryEntries(ctx context.Context, profileID uuid.UUID) ([]domain.DiaryEntry, error)
	PutDiaryEntries(ctx context.Context, profileID uuid.UUID, entries []domain.DiaryEntry) error
	UpdateDiaryEntries(ctx context.Context, profileID uuid.UUID, fn func([]domain.DiaryEntry) ([]domain.DiaryEntry, error)) ([]domain.DiaryEntry, error)

	// LastAssessmentResult returns nil when no run has completed.
	LastAssessmentResult(ctx context.Context, profileID uuid.UUID) (*assessment.Result, error)
	PutLastAssessmentResult(ctx context.Context, profileID uuid.UUID, result assessment.Result) error

	TherapyProgress(ctx context.Context, profileID uuid.UUID) (therapy.Progress, error)
	PutTherapyProgress(ctx context.Context, profileID uuid.UUID, progress therapy.Progress) error
	UpdateTherapyProgress(ctx context.Context, profileID uuid.UUID, fn func(therapy.Progress) (therapy.Progress, error)) (therapy.Progress, error)
}

type stateRepository struct {
	kv     KVRepository
	logger *zap.Logger
	locks  sync.Map // uuid.UUID -> *sync.Mutex
}

func NewStateRepository(kv KVRepository, logger *zap.Logger) StateRepository {
	logger = logging.OrNop(logger)
	return &stateRepository{kv: kv, logger: logger}
}

func (r *stateRepository) DiaryEntries(ctx context.Context, profileID uuid.UUID) ([]domain.DiaryEntry, error) {
	var entries []domain.DiaryEntry
	found, err := r.load(ctx, profileID, domain.KeyDiaryEntries, &entries)
	if err != nil || !found {
		return nil, err
	}
	return entries, nil
}

func (r *stateRepository) PutDiaryEntries(ctx context.Context, profileID uuid.UUID, entries []domain.DiaryEntry) error {
	if entries == nil {
		entries = []domain.DiaryEntry{}
	}
	return r.store(ctx, profileID, domain.KeyDiaryEntries, entries)
}

func (r *stateRepository) UpdateDiaryEntries(ctx context.Context, profileID uuid.UUID, fn func([]domain.DiaryEntry) ([]domain.DiaryEntry, error)) ([]domain.DiaryEntry, error) {
	return update(ctx, r, profileID, domain.KeyDiaryEntries, func(entries []domain.DiaryEntry) ([]domain.DiaryEntry, error) {
		entries, err := fn(entries)
		if entries == nil {
			entries = []domain.DiaryEntry{}
		}
		return entries, err
	})
}

func (r *stateRepository) LastAssessmentResult(ctx context.Context, profileID uuid.UUID) (*assessment.Result, error) {
	var result assessment.Result
	found, err := r.load(ctx, profileID, domain.KeyLastAssessmentResult, &result)
	if err != nil || !found {
		return nil, err
	}
	return &result, nil
}

func (r *stateRepository) PutLastAssessmentResult(ctx context.Context, profileID uuid.UUID, result assessment.Result) error {
	return r.store(ctx, profileID, domain.KeyLastAssessmentResult, result)
}

func (r *stateRepository) TherapyProgress(ctx context.Context, profileID uuid.UUID) (therapy.Progress, error) {
	var progress therapy.Progress
	found, err := r.load(ctx, profileID, domain.KeyTherapyProgress, &progress)
	if err != nil || !found {
		return therapy.Progress{}, err
	}
	return progress, nil
}

func (r *stateRepository) PutTherapyProgress(ctx context.Context, profileID uuid.UUID, progress therapy.Progress) error {
	return r.store(ctx, profileID, domain.KeyTherapyProgress, progress)
}

func (r *stateRepository) UpdateTherapyProgress(ctx context.Context, profileID uuid.UUID, fn func(therapy.Progress) (therapy.Progress, error)) (therapy.Progress, error) {
	return update(ctx, r, profileID, domain.KeyTherapyProgress, fn)
}

// lock serialises updates for one profile within this process. The KV
// transaction covers other processes once the row exists.
func (r *stateRepository) lock(profileID uuid.UUID) func() {
	v, _ := r.locks.LoadOrStore(profileID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func update[T any](ctx context.Context, r *stateRepository, profileID uuid.UUID, key string, fn func(T) (T, error)) (T, error) {
	defer r.lock(profileID)()

	var next T
	err := r.kv.Update(ctx, profileID, key, func(old string, found bool) (string, error) {
		var current T
		if found && !r.decode(profileID, key, old, &current) {
			var zero T
			current = zero
		}

		v, err := fn(current)
		if err != nil {
			return "", err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode %s: %w", key, err)
		}
		next = v
		return string(data), nil
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("update %s: %w", key, err)
	}
	return next, nil
}

// load decodes the value under key into dst and reports whether a usable
// value was found.
func (r *stateRepository) load(ctx context.Context, profileID uuid.UUID, key string, dst any) (bool, error) {
	raw, err := r.kv.Get(ctx, profileID, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}

	return r.decode(profileID, key, raw, dst), nil
}

func (r *stateRepository) decode(profileID uuid.UUID, key, raw string, dst any) bool {
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		r.logger.Warn("discarding undecodable stored value",
			zap.String("profile_id", profileID.String()),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (r *stateRepository) store(ctx context.Context, profileID uuid.UUID, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.kv.Put(ctx, profileID, key, string(data)); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}
