package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/logging"
	"github.com/blaisecz/sleepmitra/internal/metrics"
	"github.com/blaisecz/sleepmitra/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// AssessmentService runs one questionnaire wizard per profile. Wizard
// state lives in memory only; completed results are persisted.
type AssessmentService interface {
	Current(ctx context.Context, profileID uuid.UUID) (*domain.AssessmentView, error)
	// Advance submits the current step. A rejected step returns an error
	// matching domain.ErrIncompleteStep and leaves the wizard unchanged.
	Advance(ctx context.Context, profileID uuid.UUID, selections map[string]int) (*domain.AssessmentView, error)
	Retreat(ctx context.Context, profileID uuid.UUID) (*domain.AssessmentView, error)
	Restart(ctx context.Context, profileID uuid.UUID) (*domain.AssessmentView, error)
	// LastResult returns domain.ErrNoAssessmentResult when no run has
	// completed for the profile.
	LastResult(ctx context.Context, profileID uuid.UUID) (*assessment.Result, error)
}

type assessmentService struct {
	bank     *assessment.Bank
	profiles repository.ProfileRepository
	state    repository.StateRepository
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]assessment.State
}

func NewAssessmentService(
	bank *assessment.Bank,
	profiles repository.ProfileRepository,
	state repository.StateRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) AssessmentService {
	if m == nil {
		m = metrics.NewNop()
	}
	logger = logging.OrNop(logger)
	return &assessmentService{
		bank:     bank,
		profiles: profiles,
		state:    state,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[uuid.UUID]assessment.State),
	}
}

func (s *assessmentService) Current(ctx context.Context, profileID uuid.UUID) (*domain.AssessmentView, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view(s.session(profileID), nil), nil
}

func (s *assessmentService) Advance(ctx context.Context, profileID uuid.UUID, selections map[string]int) (*domain.AssessmentView, error) {
	return s.apply(ctx, profileID, assessment.Advance{Selections: selections})
}

func (s *assessmentService) Retreat(ctx context.Context, profileID uuid.UUID) (*domain.AssessmentView, error) {
	return s.apply(ctx, profileID, assessment.Retreat{})
}

func (s *assessmentService) Restart(ctx context.Context, profileID uuid.UUID) (*domain.AssessmentView, error) {
	return s.apply(ctx, profileID, assessment.Restart{})
}

func (s *assessmentService) LastResult(ctx context.Context, profileID uuid.UUID) (*assessment.Result, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	result, err := s.state.LastAssessmentResult(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, domain.ErrNoAssessmentResult
	}
	return result, nil
}

// apply runs one transition and executes its effects. The session lock is
// held until the produced result is stored so a failed write leaves the
// wizard on its last step.
func (s *assessmentService) apply(ctx context.Context, profileID uuid.UUID, ev assessment.Event) (*domain.AssessmentView, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, effects := assessment.Transition(s.bank, s.session(profileID), ev, s.now())

	var produced *assessment.Result
	for _, eff := range effects {
		switch e := eff.(type) {
		case assessment.ValidationFailed:
			s.metrics.ValidationFailures.WithLabelValues(strconv.Itoa(e.Err.Step)).Inc()
			s.logger.Debug("assessment step rejected",
				zap.String("profile_id", profileID.String()),
				zap.Int("step", e.Err.Step),
				zap.Strings("missing", e.Err.Missing),
				zap.Strings("invalid", e.Err.Invalid),
			)
			return nil, e.Err
		case assessment.ResultProduced:
			result := e.Result
			if err := s.complete(ctx, profileID, result); err != nil {
				return nil, err
			}
			produced = &result
		}
	}

	s.sessions[profileID] = next
	return s.view(next, produced), nil
}

func (s *assessmentService) complete(ctx context.Context, profileID uuid.UUID, result assessment.Result) error {
	tracer := otel.Tracer("sleepmitra/assessment")
	ctx, span := tracer.Start(ctx, "AssessmentService.Complete",
		trace.WithAttributes(
			attribute.String("profile.id", profileID.String()),
			attribute.Int("assessment.total_score", result.TotalScore),
			attribute.String("assessment.severity", string(result.Severity)),
		),
	)
	defer span.End()

	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	if err := s.state.PutLastAssessmentResult(ctx, profileID, result); err != nil {
		span.RecordError(err)
		return fmt.Errorf("persist assessment result: %w", err)
	}

	s.metrics.AssessmentsCompleted.WithLabelValues(string(result.Severity)).Inc()
	s.logger.Info("assessment completed",
		zap.String("profile_id", profileID.String()),
		zap.Int("total_score", result.TotalScore),
		zap.String("severity", string(result.Severity)),
	)
	return nil
}

// session must be called with s.mu held.
func (s *assessmentService) session(profileID uuid.UUID) assessment.State {
	if st, ok := s.sessions[profileID]; ok {
		return st
	}
	return assessment.NewState()
}

func (s *assessmentService) view(st assessment.State, result *assessment.Result) *domain.AssessmentView {
	step, _ := s.bank.StepAt(st.Step)
	return &domain.AssessmentView{
		Progress:  assessment.NewProgress(st.Step, s.bank.StepCount()),
		Title:     step.Title,
		Questions: step.Questions,
		Answers:   assessment.AnswersFor(s.bank, st, st.Step),
		Result:    result,
	}
}
