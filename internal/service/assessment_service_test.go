package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/metrics"
	"github.com/google/uuid"
)

type assessmentFixture struct {
	svc       AssessmentService
	profiles  *MockProfileRepository
	state     *MockStateRepository
	metrics   *metrics.Metrics
	profileID uuid.UUID
}

func newAssessmentFixture(t *testing.T) *assessmentFixture {
	t.Helper()

	bank, err := assessment.DefaultBank()
	require.NoError(t, err)

	profiles := NewMockProfileRepository()
	state := NewMockStateRepository()
	m := metrics.New(prometheus.NewRegistry())

	svc := NewAssessmentService(bank, profiles, state, m, nil)
	svc.(*assessmentService).now = func() time.Time {
		return time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	}

	return &assessmentFixture{
		svc:       svc,
		profiles:  profiles,
		state:     state,
		metrics:   m,
		profileID: profiles.add("Asia/Kolkata"),
	}
}

func uniformSteps(v int) []map[string]int {
	return []map[string]int{
		{"isi_1": v, "isi_2": v, "isi_3": v},
		{"isi_4": v, "isi_5": v},
		{"isi_6": v, "isi_7": v},
	}
}

func TestAssessmentService_Current_FreshWizard(t *testing.T) {
	f := newAssessmentFixture(t)

	view, err := f.svc.Current(context.Background(), f.profileID)
	require.NoError(t, err)

	assert.Equal(t, 1, view.Progress.Step)
	assert.Equal(t, 3, view.Progress.Total)
	assert.False(t, view.Progress.CanRetreat)
	assert.Equal(t, "नींद की कठिनाई", view.Title)
	assert.Len(t, view.Questions, 3)
	assert.Empty(t, view.Answers)
	assert.Nil(t, view.Result)
}

func TestAssessmentService_FullRun(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		score    int
		severity assessment.Severity
	}{
		{"all zero", 0, 0, assessment.SeverityMild},
		{"all two", 2, 50, assessment.SeverityModerate},
		{"all four", 4, 100, assessment.SeveritySevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAssessmentFixture(t)
			ctx := context.Background()

			var view *domain.AssessmentView
			var err error
			for _, sel := range uniformSteps(tt.value) {
				view, err = f.svc.Advance(ctx, f.profileID, sel)
				require.NoError(t, err)
			}

			require.NotNil(t, view.Result)
			assert.Equal(t, tt.score, view.Result.TotalScore)
			assert.Equal(t, 28, view.Result.MaxScore)
			assert.Equal(t, tt.severity, view.Result.Severity)

			// The wizard starts over after completion
			assert.Equal(t, 1, view.Progress.Step)
			assert.Empty(t, view.Answers)

			stored, err := f.svc.LastResult(ctx, f.profileID)
			require.NoError(t, err)
			assert.Equal(t, tt.score, stored.TotalScore)

			assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AssessmentsCompleted.WithLabelValues(string(tt.severity))))
		})
	}
}

func TestAssessmentService_Advance_Incomplete(t *testing.T) {
	f := newAssessmentFixture(t)
	ctx := context.Background()

	_, err := f.svc.Advance(ctx, f.profileID, map[string]int{"isi_1": 2, "isi_3": 9})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIncompleteStep))

	var verr *assessment.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.Step)
	assert.Contains(t, verr.Missing, "isi_2")
	assert.Contains(t, verr.Invalid, "isi_3")

	view, err := f.svc.Current(ctx, f.profileID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Progress.Step)
	assert.Empty(t, view.Answers)

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ValidationFailures.WithLabelValues("1")))
	assert.Zero(t, f.state.puts)
}

func TestAssessmentService_Advance_NoAnswersCounted(t *testing.T) {
	f := newAssessmentFixture(t)
	ctx := context.Background()

	_, err := f.svc.Advance(ctx, f.profileID, nil)

	var verr *assessment.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"isi_1", "isi_2", "isi_3"}, verr.Missing)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.ValidationFailures.WithLabelValues("1")))
}

func TestAssessmentService_RetreatKeepsAnswers(t *testing.T) {
	f := newAssessmentFixture(t)
	ctx := context.Background()
	steps := uniformSteps(3)

	_, err := f.svc.Advance(ctx, f.profileID, steps[0])
	require.NoError(t, err)
	view, err := f.svc.Advance(ctx, f.profileID, steps[1])
	require.NoError(t, err)
	assert.Equal(t, 3, view.Progress.Step)
	assert.Equal(t, "पूर्ण करें", view.Progress.NextLabel)

	view, err = f.svc.Retreat(ctx, f.profileID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Progress.Step)
	assert.Equal(t, map[string]int{"isi_4": 3, "isi_5": 3}, view.Answers)

	view, err = f.svc.Retreat(ctx, f.profileID)
	require.NoError(t, err)
	view, err = f.svc.Retreat(ctx, f.profileID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Progress.Step)
	assert.Equal(t, map[string]int{"isi_1": 3, "isi_2": 3, "isi_3": 3}, view.Answers)
}

func TestAssessmentService_Restart(t *testing.T) {
	f := newAssessmentFixture(t)
	ctx := context.Background()

	_, err := f.svc.Advance(ctx, f.profileID, uniformSteps(1)[0])
	require.NoError(t, err)

	view, err := f.svc.Restart(ctx, f.profileID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Progress.Step)
	assert.Empty(t, view.Answers)
}

func TestAssessmentService_SessionsArePerProfile(t *testing.T) {
	f := newAssessmentFixture(t)
	ctx := context.Background()
	other := f.profiles.add("UTC")

	_, err := f.svc.Advance(ctx, f.profileID, uniformSteps(1)[0])
	require.NoError(t, err)

	view, err := f.svc.Current(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Progress.Step)
}

func TestAssessmentService_PersistFailureKeepsLastStep(t *testing.T) {
	f := newAssessmentFixture(t)
	ctx := context.Background()
	steps := uniformSteps(2)

	for _, sel := range steps[:2] {
		_, err := f.svc.Advance(ctx, f.profileID, sel)
		require.NoError(t, err)
	}

	f.state.putErr = errors.New("disk full")
	_, err := f.svc.Advance(ctx, f.profileID, steps[2])
	require.Error(t, err)

	view, err := f.svc.Current(ctx, f.profileID)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Progress.Step)

	f.state.putErr = nil
	view, err = f.svc.Advance(ctx, f.profileID, steps[2])
	require.NoError(t, err)
	require.NotNil(t, view.Result)
}

func TestAssessmentService_UnknownProfile(t *testing.T) {
	f := newAssessmentFixture(t)

	_, err := f.svc.Current(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.Advance(context.Background(), uuid.New(), uniformSteps(0)[0])
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssessmentService_LastResult_None(t *testing.T) {
	f := newAssessmentFixture(t)

	_, err := f.svc.LastResult(context.Background(), f.profileID)
	assert.ErrorIs(t, err, domain.ErrNoAssessmentResult)
}
