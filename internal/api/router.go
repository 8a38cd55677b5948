package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleepmitra/docs"
	"github.com/blaisecz/sleepmitra/internal/api/handler"
	"github.com/blaisecz/sleepmitra/internal/api/middleware"
	"github.com/blaisecz/sleepmitra/internal/logging"
	"github.com/blaisecz/sleepmitra/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Profile    *handler.ProfileHandler
	Assessment *handler.AssessmentHandler
	Diary      *handler.DiaryHandler
	Therapy    *handler.TherapyHandler
	Booking    *handler.BookingHandler
	Chat       *handler.ChatHandler
	Analytics  *handler.AnalyticsHandler
}

type Router struct {
	handlers Handlers
	logger   *zap.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

func NewRouter(handlers Handlers, logger *zap.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *Router {
	logger = logging.OrNop(logger)
	if m == nil {
		m = metrics.NewNop()
	}
	if gatherer == nil {
		gatherer = prometheus.NewRegistry()
	}
	return &Router{
		handlers: handlers,
		logger:   logger,
		metrics:  m,
		gatherer: gatherer,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()
	h := rt.handlers

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Metrics(rt.metrics))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", h.Profile.Create)

			r.Route("/{profileId}", func(r chi.Router) {
				r.Get("/", h.Profile.GetByID)

				r.Route("/assessment", func(r chi.Router) {
					r.Get("/", h.Assessment.Current)
					r.Post("/advance", h.Assessment.Advance)
					r.Post("/retreat", h.Assessment.Retreat)
					r.Post("/restart", h.Assessment.Restart)
					r.Get("/result", h.Assessment.Result)
				})

				r.Route("/diary", func(r chi.Router) {
					r.Post("/", h.Diary.Create)
					r.Get("/", h.Diary.List)
					r.Get("/metrics", h.Diary.Metrics)
				})

				r.Route("/therapy", func(r chi.Router) {
					r.Get("/", h.Therapy.View)
					r.Post("/session", h.Therapy.StartSession)
					r.Post("/videos", h.Therapy.TrackVideo)
					r.Post("/techniques", h.Therapy.LearnTechnique)
					r.Get("/plan", h.Therapy.Plan)
					r.Get("/plan/download", h.Therapy.DownloadPlan)
					r.Get("/insights", h.Therapy.Insights)
					r.Post("/insights/feedback", h.Therapy.Feedback)
				})

				r.Get("/doctors", h.Booking.Doctors)
			})
		})

		r.Get("/analytics/dashboard", h.Analytics.Dashboard)

		r.Post("/chat", h.Chat.Reply)
		r.Get("/chat/suggestions", h.Chat.Suggestions)

		r.Route("/booking", func(r chi.Router) {
			r.Get("/slots", h.Booking.Slots)
			r.Post("/select", h.Booking.Select)
			r.Post("/confirm", h.Booking.Confirm)
		})
	})

	return r
}
