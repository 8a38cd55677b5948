package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/internal/llm"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func therapyRouter(svc *MockTherapyService, lf *mockLangfuseClient) *chi.Mux {
	h := NewTherapyHandler(svc, lf, nil)
	r := chi.NewRouter()
	r.Route("/v1/profiles/{profileId}/therapy", func(r chi.Router) {
		r.Get("/", h.View)
		r.Post("/session", h.StartSession)
		r.Post("/videos", h.TrackVideo)
		r.Post("/techniques", h.LearnTechnique)
		r.Get("/plan", h.Plan)
		r.Get("/plan/download", h.DownloadPlan)
		r.Get("/insights", h.Insights)
		r.Post("/insights/feedback", h.Feedback)
	})
	return r
}

func therapyPath(profileID uuid.UUID, suffix string) string {
	return "/v1/profiles/" + profileID.String() + "/therapy" + suffix
}

func TestTherapyHandler_Endpoints(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name           string
		method         string
		suffix         string
		body           string
		svc            *MockTherapyService
		wantStatusCode int
	}{
		{"view", http.MethodGet, "", "", &MockTherapyService{}, http.StatusOK},
		{"view unknown profile", http.MethodGet, "", "", &MockTherapyService{err: domain.ErrNotFound}, http.StatusNotFound},
		{"session", http.MethodPost, "/session", "", &MockTherapyService{}, http.StatusOK},
		{"video", http.MethodPost, "/videos", `{"title": "नींद स्वच्छता"}`, &MockTherapyService{}, http.StatusOK},
		{"video without title", http.MethodPost, "/videos", `{}`, &MockTherapyService{}, http.StatusUnprocessableEntity},
		{"technique", http.MethodPost, "/techniques", "", &MockTherapyService{}, http.StatusOK},
		{"plan", http.MethodGet, "/plan", "", &MockTherapyService{}, http.StatusOK},
		{"plan failure", http.MethodGet, "/plan", "", &MockTherapyService{err: errors.New("boom")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, therapyPath(profileID, tt.suffix), strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			therapyRouter(tt.svc, &mockLangfuseClient{}).ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatusCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestTherapyHandler_DownloadPlan(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, therapyPath(uuid.New(), "/plan/download"), nil)
	w := httptest.NewRecorder()
	therapyRouter(&MockTherapyService{}, &mockLangfuseClient{}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
	want := `attachment; filename="sleepmitra-therapy-plan-2024-01-15.txt"`
	if cd := w.Header().Get("Content-Disposition"); cd != want {
		t.Errorf("expected Content-Disposition %q, got %q", want, cd)
	}
	if !strings.HasPrefix(w.Body.String(), "नींद साथी") {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestTherapyHandler_Insights(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{"success", nil, http.StatusOK},
		{"not configured", llm.ErrOpenAIUnavailable, http.StatusServiceUnavailable},
		{"request failed", llm.ErrOpenAIRequest, http.StatusBadGateway},
		{"bad response", llm.ErrOpenAIResponse, http.StatusBadGateway},
		{"unknown profile", domain.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockTherapyService{}
			if tt.err != nil {
				err := tt.err
				svc.insightsFunc = func(ctx context.Context, id uuid.UUID) (*domain.InsightsResponse, error) {
					return nil, err
				}
			}

			req := httptest.NewRequest(http.MethodGet, therapyPath(uuid.New(), "/insights"), nil)
			w := httptest.NewRecorder()
			therapyRouter(svc, &mockLangfuseClient{}).ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d: %s", tt.wantStatusCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestTherapyHandler_Insights_NoTraceIDWhenAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, therapyPath(uuid.New(), "/insights"), nil)
	w := httptest.NewRecorder()
	therapyRouter(&MockTherapyService{}, &mockLangfuseClient{}).ServeHTTP(w, req)

	if strings.Contains(w.Body.String(), `"trace_id"`) {
		t.Error("expected trace_id to be omitted when no trace was recorded")
	}
}

func TestTherapyHandler_Feedback(t *testing.T) {
	lf := &mockLangfuseClient{enabled: true}
	body := `{"trace_id": "trace-123", "score": 4, "comment": "उपयोगी"}`

	req := httptest.NewRequest(http.MethodPost, therapyPath(uuid.New(), "/insights/feedback"), strings.NewReader(body))
	w := httptest.NewRecorder()
	therapyRouter(&MockTherapyService{}, lf).ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d: %s", w.Code, w.Body.String())
	}
	if lf.scoreCalls != 1 {
		t.Fatalf("expected 1 CreateScore call, got %d", lf.scoreCalls)
	}
	if lf.lastScore.TraceID != "trace-123" || lf.lastScore.Value != 4 || lf.lastScore.Name != "user_rating" {
		t.Errorf("unexpected score %+v", lf.lastScore)
	}
}

func TestTherapyHandler_Feedback_ScoreErrorIgnored(t *testing.T) {
	lf := &mockLangfuseClient{scoreErr: errors.New("langfuse down")}
	body := `{"trace_id": "trace-123", "score": 5}`

	req := httptest.NewRequest(http.MethodPost, therapyPath(uuid.New(), "/insights/feedback"), strings.NewReader(body))
	w := httptest.NewRecorder()
	therapyRouter(&MockTherapyService{}, lf).ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", w.Code)
	}
}

func TestTherapyHandler_Feedback_ValidationErrors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{"missing trace_id", `{"score": 4}`, http.StatusUnprocessableEntity},
		{"score too low", `{"trace_id": "abc", "score": 0}`, http.StatusUnprocessableEntity},
		{"score too high", `{"trace_id": "abc", "score": 6}`, http.StatusUnprocessableEntity},
		{"invalid JSON", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lf := &mockLangfuseClient{enabled: true}
			req := httptest.NewRequest(http.MethodPost, therapyPath(uuid.New(), "/insights/feedback"), strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			therapyRouter(&MockTherapyService{}, lf).ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Errorf("expected status %d, got %d", tt.wantStatusCode, w.Code)
			}
			if lf.scoreCalls != 0 {
				t.Errorf("expected no CreateScore call, got %d", lf.scoreCalls)
			}
		})
	}
}
