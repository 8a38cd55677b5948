package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/langfuse"
	"github.com/blaisecz/sleepmitra/internal/llm"
	"github.com/blaisecz/sleepmitra/internal/logging"
	"github.com/blaisecz/sleepmitra/internal/repository"
	"github.com/blaisecz/sleepmitra/internal/therapy"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TherapyService reads the stored assessment result and keeps the
// profile's therapy progress.
type TherapyService interface {
	View(ctx context.Context, profileID uuid.UUID) (*domain.TherapyView, error)
	StartSession(ctx context.Context, profileID uuid.UUID) (*domain.SessionStartResponse, error)
	TrackVideo(ctx context.Context, profileID uuid.UUID, title string) (*domain.ProgressNotice, error)
	LearnTechnique(ctx context.Context, profileID uuid.UUID) (*domain.ProgressNotice, error)
	Plan(ctx context.Context, profileID uuid.UUID) (*therapy.Plan, error)
	// DownloadPlan returns the file name and plain-text body of the plan.
	DownloadPlan(ctx context.Context, profileID uuid.UUID) (string, string, error)
	Insights(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error)
}

type therapyService struct {
	profiles  repository.ProfileRepository
	state     repository.StateRepository
	llmClient llm.InsightsLLM
	langfuse  langfuse.Client
	logger    *zap.Logger
	now       func() time.Time
}

// NewTherapyService creates a TherapyService. llmClient may be nil, in
// which case Insights returns llm.ErrOpenAIUnavailable.
func NewTherapyService(
	profiles repository.ProfileRepository,
	state repository.StateRepository,
	llmClient llm.InsightsLLM,
	lf langfuse.Client,
	logger *zap.Logger,
) TherapyService {
	if lf == nil {
		lf = langfuse.NewClient(langfuse.Config{})
	}
	logger = logging.OrNop(logger)
	return &therapyService{
		profiles:  profiles,
		state:     state,
		llmClient: llmClient,
		langfuse:  lf,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *therapyService) View(ctx context.Context, profileID uuid.UUID) (*domain.TherapyView, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	result, err := s.state.LastAssessmentResult(ctx, profileID)
	if err != nil {
		return nil, err
	}
	progress, err := s.state.TherapyProgress(ctx, profileID)
	if err != nil {
		return nil, err
	}

	view := &domain.TherapyView{Progress: progress}
	if result != nil {
		badge := therapy.BadgeFor(result.Severity)
		view.Result = result
		view.Badge = &badge
		view.Recommendation = strings.Join(result.Recommendations, " ")
	}
	return view, nil
}

func (s *therapyService) StartSession(ctx context.Context, profileID uuid.UUID) (*domain.SessionStartResponse, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(profile.Location())
	var notice string
	progress, err := s.state.UpdateTherapyProgress(ctx, profileID, func(p therapy.Progress) (therapy.Progress, error) {
		p, notice = therapy.StartSession(p, now)
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.SessionStartResponse{
		Message:  notice,
		VideoURL: therapy.IntroVideoURL,
		Progress: progress,
	}, nil
}

func (s *therapyService) TrackVideo(ctx context.Context, profileID uuid.UUID, title string) (*domain.ProgressNotice, error) {
	return s.updateProgress(ctx, profileID, func(p therapy.Progress) (therapy.Progress, string) {
		return therapy.WatchVideo(p, title)
	})
}

func (s *therapyService) LearnTechnique(ctx context.Context, profileID uuid.UUID) (*domain.ProgressNotice, error) {
	return s.updateProgress(ctx, profileID, func(p therapy.Progress) (therapy.Progress, string) {
		return therapy.LearnTechnique(p), ""
	})
}

func (s *therapyService) updateProgress(ctx context.Context, profileID uuid.UUID, apply func(therapy.Progress) (therapy.Progress, string)) (*domain.ProgressNotice, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	var msg string
	progress, err := s.state.UpdateTherapyProgress(ctx, profileID, func(p therapy.Progress) (therapy.Progress, error) {
		p, msg = apply(p)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return &domain.ProgressNotice{Message: msg, Progress: progress}, nil
}

func (s *therapyService) Plan(ctx context.Context, profileID uuid.UUID) (*therapy.Plan, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	result, err := s.state.LastAssessmentResult(ctx, profileID)
	if err != nil {
		return nil, err
	}

	var sev assessment.Severity
	if result != nil {
		sev = result.Severity
	}
	plan := therapy.PlanFor(sev)
	return &plan, nil
}

func (s *therapyService) DownloadPlan(ctx context.Context, profileID uuid.UUID) (string, string, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return "", "", err
	}

	result, err := s.state.LastAssessmentResult(ctx, profileID)
	if err != nil {
		return "", "", err
	}

	now := s.now().In(profile.Location())
	return therapy.PlanFilename(now), therapy.PlanDocument(result, now), nil
}

func (s *therapyService) Insights(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error) {
	if err := ensureProfile(ctx, s.profiles, profileID); err != nil {
		return nil, err
	}

	tracer := otel.Tracer("sleepmitra/therapy")
	ctx, span := tracer.Start(ctx, "TherapyService.Insights",
		trace.WithAttributes(attribute.String("profile.id", profileID.String())),
	)
	defer span.End()

	result, err := s.state.LastAssessmentResult(ctx, profileID)
	if err != nil {
		return nil, err
	}
	entries, err := s.state.DiaryEntries(ctx, profileID)
	if err != nil {
		return nil, err
	}
	progress, err := s.state.TherapyProgress(ctx, profileID)
	if err != nil {
		return nil, err
	}

	insightsCtx := domain.InsightsContext{
		Assessment: result,
		Diary:      ComputeDiaryMetrics(entries),
		Progress:   progress,
	}
	if inputJSON, err := json.Marshal(insightsCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	if s.llmClient == nil {
		return nil, llm.ErrOpenAIUnavailable
	}
	output, err := s.llmClient.GenerateInsights(ctx, &insightsCtx)
	if err != nil {
		span.RecordError(err)
		s.logger.Warn("insights generation failed", zap.String("profile_id", profileID.String()), zap.Error(err))
		return nil, err
	}
	if outputJSON, err := json.Marshal(output); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	response := &domain.InsightsResponse{
		Context:  insightsCtx,
		Insights: *output,
	}

	// Link the Langfuse trace to the OTEL trace when there is one
	var traceID string
	if sc := span.SpanContext(); sc.IsValid() {
		traceID = sc.TraceID().String()
	}
	id, err := s.langfuse.CreateTrace(ctx, langfuse.TraceInput{
		ID:     traceID,
		UserID: profileID.String(),
		Name:   "therapy-insights",
		Input:  insightsCtx,
		Output: output,
		Tags:   []string{"sleepmitra", "therapy"},
	})
	if err != nil {
		s.logger.Warn("langfuse trace failed", zap.Error(err))
	}
	if id != "" {
		traceID = id
	}
	response.TraceID = traceID

	return response, nil
}
