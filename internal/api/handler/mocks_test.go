package handler

import (
	"context"
	"time"

	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/booking"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/langfuse"
	"github.com/blaisecz/sleepmitra/internal/service"
	"github.com/blaisecz/sleepmitra/internal/therapy"
	"github.com/google/uuid"
)

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	createFunc  func(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

func (m *MockProfileService) Create(ctx context.Context, req *domain.CreateProfileRequest) (*domain.Profile, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Profile{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockProfileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockAssessmentService is a mock implementation of AssessmentService
type MockAssessmentService struct {
	advanceFunc    func(ctx context.Context, profileID uuid.UUID, selections map[string]int) (*domain.AssessmentView, error)
	lastResultFunc func(ctx context.Context, profileID uuid.UUID) (*assessment.Result, error)
	err            error
}

func (m *MockAssessmentService) view(step int) (*domain.AssessmentView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.AssessmentView{Progress: assessment.NewProgress(step, 3), Answers: map[string]int{}}, nil
}

func (m *MockAssessmentService) Current(ctx context.Context, profileID uuid.UUID) (*domain.AssessmentView, error) {
	return m.view(1)
}

func (m *MockAssessmentService) Advance(ctx context.Context, profileID uuid.UUID, selections map[string]int) (*domain.AssessmentView, error) {
	if m.advanceFunc != nil {
		return m.advanceFunc(ctx, profileID, selections)
	}
	return m.view(2)
}

func (m *MockAssessmentService) Retreat(ctx context.Context, profileID uuid.UUID) (*domain.AssessmentView, error) {
	return m.view(1)
}

func (m *MockAssessmentService) Restart(ctx context.Context, profileID uuid.UUID) (*domain.AssessmentView, error) {
	return m.view(1)
}

func (m *MockAssessmentService) LastResult(ctx context.Context, profileID uuid.UUID) (*assessment.Result, error) {
	if m.lastResultFunc != nil {
		return m.lastResultFunc(ctx, profileID)
	}
	return nil, domain.ErrNoAssessmentResult
}

// MockDiaryService is a mock implementation of DiaryService
type MockDiaryService struct {
	createFunc func(ctx context.Context, profileID uuid.UUID, req *domain.CreateDiaryEntryRequest) (*domain.DiaryEntry, error)
	listFunc   func(ctx context.Context, profileID uuid.UUID, filter domain.DiaryFilter) (*domain.DiaryListResponse, error)
}

func (m *MockDiaryService) Create(ctx context.Context, profileID uuid.UUID, req *domain.CreateDiaryEntryRequest) (*domain.DiaryEntry, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, profileID, req)
	}
	quality := domain.DefaultSleepQuality
	if req.SleepQuality != nil {
		quality = *req.SleepQuality
	}
	return &domain.DiaryEntry{
		ID:           uuid.New(),
		Date:         req.Date,
		Bedtime:      req.Bedtime,
		WakeTime:     req.WakeTime,
		SleepQuality: quality,
		Timestamp:    time.Now(),
	}, nil
}

func (m *MockDiaryService) List(ctx context.Context, profileID uuid.UUID, filter domain.DiaryFilter) (*domain.DiaryListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, profileID, filter)
	}
	return &domain.DiaryListResponse{Data: []domain.DiaryEntryResponse{}}, nil
}

func (m *MockDiaryService) Metrics(ctx context.Context, profileID uuid.UUID) (*domain.DiaryMetrics, error) {
	return &domain.DiaryMetrics{}, nil
}

// MockTherapyService is a mock implementation of TherapyService
type MockTherapyService struct {
	insightsFunc func(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error)
	err          error
}

func (m *MockTherapyService) View(ctx context.Context, profileID uuid.UUID) (*domain.TherapyView, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.TherapyView{}, nil
}

func (m *MockTherapyService) StartSession(ctx context.Context, profileID uuid.UUID) (*domain.SessionStartResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.SessionStartResponse{VideoURL: therapy.IntroVideoURL, Progress: therapy.Progress{VideosWatched: 1, DaysActive: 1}}, nil
}

func (m *MockTherapyService) TrackVideo(ctx context.Context, profileID uuid.UUID, title string) (*domain.ProgressNotice, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, msg := therapy.WatchVideo(therapy.Progress{}, title)
	return &domain.ProgressNotice{Message: msg, Progress: p}, nil
}

func (m *MockTherapyService) LearnTechnique(ctx context.Context, profileID uuid.UUID) (*domain.ProgressNotice, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.ProgressNotice{Progress: therapy.Progress{TechniquesLearned: 1}}, nil
}

func (m *MockTherapyService) Plan(ctx context.Context, profileID uuid.UUID) (*therapy.Plan, error) {
	if m.err != nil {
		return nil, m.err
	}
	plan := therapy.PlanFor(assessment.SeverityMild)
	return &plan, nil
}

func (m *MockTherapyService) DownloadPlan(ctx context.Context, profileID uuid.UUID) (string, string, error) {
	if m.err != nil {
		return "", "", m.err
	}
	return "sleepmitra-therapy-plan-2024-01-15.txt", "नींद साथी - सामान्य चिकित्सा योजना", nil
}

func (m *MockTherapyService) Insights(ctx context.Context, profileID uuid.UUID) (*domain.InsightsResponse, error) {
	if m.insightsFunc != nil {
		return m.insightsFunc(ctx, profileID)
	}
	return &domain.InsightsResponse{
		Insights: domain.LLMInsightsOutput{
			Summary:      "नींद स्थिर है",
			Observations: []string{"नियमित सोने का समय"},
			Guidance:     []string{"ऐसे ही जारी रखें"},
		},
	}, nil
}

// MockBookingService wraps the real booking service; the calendar has no
// dependencies worth faking.
type MockBookingService struct {
	service.BookingService
	recommendFunc func(ctx context.Context, profileID uuid.UUID, c booking.Criteria) (*domain.DoctorsResponse, error)
	lastCriteria  booking.Criteria
}

func (m *MockBookingService) RecommendDoctors(ctx context.Context, profileID uuid.UUID, c booking.Criteria) (*domain.DoctorsResponse, error) {
	m.lastCriteria = c
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, profileID, c)
	}
	return &domain.DoctorsResponse{Recommendations: booking.Recommend(c)}, nil
}

// MockChatService is a mock implementation of ChatService
type MockChatService struct {
	replyFunc func(ctx context.Context, message string) (*domain.ChatResponse, error)
}

func (m *MockChatService) Reply(ctx context.Context, message string) (*domain.ChatResponse, error) {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, message)
	}
	return &domain.ChatResponse{Answer: "उत्तर", MatchedBy: "exact"}, nil
}

func (m *MockChatService) Suggestions() []string {
	return []string{"CBT-I क्या है?"}
}

// mockLangfuseClient for testing
type mockLangfuseClient struct {
	enabled    bool
	scoreCalls int
	lastScore  langfuse.ScoreInput
	scoreErr   error
}

func (m *mockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return "", nil
}

func (m *mockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scoreCalls++
	m.lastScore = in
	return m.scoreErr
}

func (m *mockLangfuseClient) Flush() {}

func (m *mockLangfuseClient) Close() {}
