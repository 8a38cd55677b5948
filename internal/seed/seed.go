package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/logging"
	"github.com/blaisecz/sleepmitra/internal/repository"
	"github.com/blaisecz/sleepmitra/internal/therapy"
)

const seededNights = 14

// DemoProfileID is the profile created by Run.
var DemoProfileID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// Run creates a demo profile with two weeks of diary entries, a completed
// assessment and some therapy progress. Existing data for the demo profile
// is left alone, so it is safe to call on every start.
func Run(ctx context.Context, profiles repository.ProfileRepository, state repository.StateRepository, bank *assessment.Bank, now time.Time, logger *zap.Logger) error {
	logger = logging.OrNop(logger)

	exists, err := profiles.Exists(ctx, DemoProfileID)
	if err != nil {
		return fmt.Errorf("failed to check demo profile: %w", err)
	}
	if exists {
		logger.Info("seed skipped", zap.String("profile_id", DemoProfileID.String()))
		return nil
	}

	profile := &domain.Profile{ID: DemoProfileID, Timezone: domain.DefaultTimezone}
	if err := profiles.Create(ctx, profile); err != nil {
		return fmt.Errorf("failed to create demo profile: %w", err)
	}

	rng := rand.New(rand.NewSource(now.UnixNano()))
	local := now.In(profile.Location())

	entries := make([]domain.DiaryEntry, 0, seededNights)
	for i := 0; i < seededNights; i++ {
		entries = append(entries, diaryEntry(local.AddDate(0, 0, -i), rng))
	}
	if err := state.PutDiaryEntries(ctx, DemoProfileID, entries); err != nil {
		return fmt.Errorf("failed to seed diary: %w", err)
	}

	if bank != nil {
		answers, err := sampleAnswers(bank, rng)
		if err != nil {
			return err
		}
		if err := state.PutLastAssessmentResult(ctx, DemoProfileID, assessment.Score(bank, answers, now)); err != nil {
			return fmt.Errorf("failed to seed assessment result: %w", err)
		}
	}

	progress := therapy.Progress{VideosWatched: 3, DaysActive: 2, TechniquesLearned: 1, LastActiveDate: local.AddDate(0, 0, -1).Format(domain.DateLayout)}
	if err := state.PutTherapyProgress(ctx, DemoProfileID, progress); err != nil {
		return fmt.Errorf("failed to seed therapy progress: %w", err)
	}

	logger.Info("seed completed",
		zap.String("profile_id", DemoProfileID.String()),
		zap.Int("diary_entries", len(entries)),
	)
	return nil
}

// diaryEntry builds a plausible night ending on the morning after date.
func diaryEntry(date time.Time, rng *rand.Rand) domain.DiaryEntry {
	latency := 5 + rng.Intn(40)
	wakeUps := rng.Intn(4)
	bedHour := 22 + rng.Intn(2)
	wakeHour := 5 + rng.Intn(3)

	return domain.DiaryEntry{
		ID:           uuid.New(),
		Date:         date.Format(domain.DateLayout),
		Bedtime:      fmt.Sprintf("%02d:%02d", bedHour, rng.Intn(60)),
		SleepLatency: &latency,
		WakeTime:     fmt.Sprintf("%02d:%02d", wakeHour, rng.Intn(60)),
		WakeUps:      &wakeUps,
		SleepQuality: 4 + rng.Intn(7),
		Timestamp:    date.UTC(),
	}
}

func sampleAnswers(bank *assessment.Bank, rng *rand.Rand) (assessment.AnswerSet, error) {
	answers := assessment.AnswerSet{}
	for step := 1; step <= bank.StepCount(); step++ {
		s, ok := bank.StepAt(step)
		if !ok {
			return nil, fmt.Errorf("question bank step %d missing", step)
		}
		for _, q := range s.Questions {
			if len(q.Options) == 0 {
				return nil, errors.New("question bank has a question without options")
			}
			answers[q.ID] = q.Options[rng.Intn(len(q.Options))].Value
		}
	}
	return answers, nil
}
