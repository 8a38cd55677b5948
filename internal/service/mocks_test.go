package service

import (
	"context"
	"sync"

	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/langfuse"
	"github.com/blaisecz/sleepmitra/internal/therapy"
	"github.com/google/uuid"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	profiles map[uuid.UUID]*domain.Profile
	err      error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		profiles: make(map[uuid.UUID]*domain.Profile),
	}
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (m *MockProfileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.profiles[id]
	return ok, nil
}

// add registers a profile and returns its ID.
func (m *MockProfileRepository) add(timezone string) uuid.UUID {
	id := uuid.New()
	m.profiles[id] = &domain.Profile{ID: id, Timezone: timezone}
	return id
}

// MockStateRepository is an in-memory StateRepository
type MockStateRepository struct {
	mu       sync.Mutex
	diary    map[uuid.UUID][]domain.DiaryEntry
	results  map[uuid.UUID]assessment.Result
	progress map[uuid.UUID]therapy.Progress
	putErr   error
	puts     int
}

func NewMockStateRepository() *MockStateRepository {
	return &MockStateRepository{
		diary:    make(map[uuid.UUID][]domain.DiaryEntry),
		results:  make(map[uuid.UUID]assessment.Result),
		progress: make(map[uuid.UUID]therapy.Progress),
	}
}

func (m *MockStateRepository) DiaryEntries(ctx context.Context, profileID uuid.UUID) ([]domain.DiaryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := m.diary[profileID]
	out := make([]domain.DiaryEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (m *MockStateRepository) PutDiaryEntries(ctx context.Context, profileID uuid.UUID, entries []domain.DiaryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.diary[profileID] = entries
	return nil
}

func (m *MockStateRepository) UpdateDiaryEntries(ctx context.Context, profileID uuid.UUID, fn func([]domain.DiaryEntry) ([]domain.DiaryEntry, error)) ([]domain.DiaryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current := make([]domain.DiaryEntry, len(m.diary[profileID]))
	copy(current, m.diary[profileID])
	entries, err := fn(current)
	if err != nil {
		return nil, err
	}
	if m.putErr != nil {
		return nil, m.putErr
	}
	m.puts++
	m.diary[profileID] = entries
	return entries, nil
}

func (m *MockStateRepository) LastAssessmentResult(ctx context.Context, profileID uuid.UUID) (*assessment.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result, ok := m.results[profileID]
	if !ok {
		return nil, nil
	}
	return &result, nil
}

func (m *MockStateRepository) PutLastAssessmentResult(ctx context.Context, profileID uuid.UUID, result assessment.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.results[profileID] = result
	return nil
}

func (m *MockStateRepository) TherapyProgress(ctx context.Context, profileID uuid.UUID) (therapy.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress[profileID], nil
}

func (m *MockStateRepository) PutTherapyProgress(ctx context.Context, profileID uuid.UUID, progress therapy.Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.progress[profileID] = progress
	return nil
}

func (m *MockStateRepository) UpdateTherapyProgress(ctx context.Context, profileID uuid.UUID, fn func(therapy.Progress) (therapy.Progress, error)) (therapy.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	progress, err := fn(m.progress[profileID])
	if err != nil {
		return therapy.Progress{}, err
	}
	if m.putErr != nil {
		return therapy.Progress{}, m.putErr
	}
	m.puts++
	m.progress[profileID] = progress
	return progress, nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	generateFunc func(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
	lastContext  *domain.InsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.lastContext = insightsCtx
	if m.generateFunc != nil {
		return m.generateFunc(ctx, insightsCtx)
	}
	return &domain.LLMInsightsOutput{
		Summary:      "नींद स्थिर है",
		Observations: []string{"a"},
		Guidance:     []string{"b"},
	}, nil
}

// MockLangfuseClient records traces instead of sending them
type MockLangfuseClient struct {
	traces []langfuse.TraceInput
	scores []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return true }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	if in.ID != "" {
		return in.ID, nil
	}
	return "lf-trace-1", nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Flush() {}

func (m *MockLangfuseClient) Close() {}

// Helper functions
func intPtr(i int) *int {
	return &i
}
