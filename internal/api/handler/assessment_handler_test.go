package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/domain"
	"github.com/blaisecz/sleepmitra/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func assessmentRouter(svc *MockAssessmentService) *chi.Mux {
	h := NewAssessmentHandler(svc)
	r := chi.NewRouter()
	r.Route("/v1/profiles/{profileId}/assessment", func(r chi.Router) {
		r.Get("/", h.Current)
		r.Post("/advance", h.Advance)
		r.Post("/retreat", h.Retreat)
		r.Post("/restart", h.Restart)
		r.Get("/result", h.Result)
	})
	return r
}

func TestAssessmentHandler_Advance(t *testing.T) {
	profileID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockService    *MockAssessmentService
		wantStatusCode int
		wantFields     []string
	}{
		{
			name:           "complete step",
			body:           `{"answers": {"isi_1": 2, "isi_2": 1, "isi_3": 0}}`,
			mockService:    &MockAssessmentService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{"answers": [}`,
			mockService:    &MockAssessmentService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "no answers goes through the wizard",
			body: `{"answers": null}`,
			mockService: &MockAssessmentService{
				advanceFunc: func(ctx context.Context, id uuid.UUID, sel map[string]int) (*domain.AssessmentView, error) {
					if len(sel) != 0 {
						t.Errorf("expected no selections, got %v", sel)
					}
					return nil, &assessment.ValidationError{Step: 1, Missing: []string{"isi_1", "isi_2", "isi_3"}}
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantFields:     []string{"answers.isi_1", "answers.isi_2", "answers.isi_3"},
		},
		{
			name: "incomplete step",
			body: `{"answers": {"isi_1": 2, "isi_3": 7}}`,
			mockService: &MockAssessmentService{
				advanceFunc: func(ctx context.Context, id uuid.UUID, sel map[string]int) (*domain.AssessmentView, error) {
					return nil, &assessment.ValidationError{Step: 1, Missing: []string{"isi_2"}, Invalid: []string{"isi_3"}}
				},
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantFields:     []string{"answers.isi_2", "answers.isi_3"},
		},
		{
			name:           "unknown profile",
			body:           `{"answers": {"isi_1": 2}}`,
			mockService:    &MockAssessmentService{err: domain.ErrNotFound},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/profiles/"+profileID.String()+"/assessment/advance", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			assessmentRouter(tt.mockService).ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatusCode, w.Code, w.Body.String())
			}
			if tt.wantFields == nil {
				return
			}

			var p problem.Problem
			if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
				t.Fatalf("failed to decode problem: %v", err)
			}
			if p.Detail != msgAnswerAll {
				t.Errorf("expected detail %q, got %q", msgAnswerAll, p.Detail)
			}
			if len(p.Errors) != len(tt.wantFields) {
				t.Fatalf("expected %d field errors, got %+v", len(tt.wantFields), p.Errors)
			}
			for i, f := range tt.wantFields {
				if p.Errors[i].Field != f {
					t.Errorf("error %d: expected field %q, got %q", i, f, p.Errors[i].Field)
				}
			}
		})
	}
}

func TestAssessmentHandler_Navigation(t *testing.T) {
	profileID := uuid.New()
	router := assessmentRouter(&MockAssessmentService{})

	tests := []struct {
		method   string
		path     string
		wantStep int
	}{
		{http.MethodGet, "", 1},
		{http.MethodPost, "/retreat", 1},
		{http.MethodPost, "/restart", 1},
	}

	for _, tt := range tests {
		t.Run(tt.method+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/profiles/"+profileID.String()+"/assessment"+tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
			}
			var view domain.AssessmentView
			if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if view.Progress.Step != tt.wantStep {
				t.Errorf("expected step %d, got %d", tt.wantStep, view.Progress.Step)
			}
		})
	}
}

func TestAssessmentHandler_Result(t *testing.T) {
	profileID := uuid.New()

	t.Run("no result", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/profiles/"+profileID.String()+"/assessment/result", nil)
		w := httptest.NewRecorder()
		assessmentRouter(&MockAssessmentService{}).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
	})

	t.Run("stored result", func(t *testing.T) {
		svc := &MockAssessmentService{
			lastResultFunc: func(ctx context.Context, id uuid.UUID) (*assessment.Result, error) {
				return &assessment.Result{TotalScore: 55, Severity: assessment.SeverityModerate}, nil
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/v1/profiles/"+profileID.String()+"/assessment/result", nil)
		w := httptest.NewRecorder()
		assessmentRouter(svc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		var result assessment.Result
		if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if result.TotalScore != 55 || result.Severity != assessment.SeverityModerate {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("invalid profile ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/profiles/abc/assessment/result", nil)
		w := httptest.NewRecorder()
		assessmentRouter(&MockAssessmentService{}).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", w.Code)
		}
	})
}
