// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's collectors. All names are prefixed with
// "sleepmitra_".
//
//   - sleepmitra_http_requests_total{method,route,status}
//   - sleepmitra_http_request_duration_seconds{method,route}
//   - sleepmitra_assessments_completed_total{severity}
//   - sleepmitra_assessment_validation_failures_total{step}
//   - sleepmitra_chat_replies_total{match}
//   - sleepmitra_diary_entries_created_total
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AssessmentsCompleted *prometheus.CounterVec
	ValidationFailures   *prometheus.CounterVec

	ChatReplies  *prometheus.CounterVec
	DiaryEntries prometheus.Counter
}

// New creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which tests use to avoid global state.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sleepmitra_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sleepmitra_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AssessmentsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sleepmitra_assessments_completed_total",
				Help: "Total number of completed assessments",
			},
			[]string{"severity"},
		),
		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sleepmitra_assessment_validation_failures_total",
				Help: "Total number of rejected wizard steps",
			},
			[]string{"step"},
		),
		ChatReplies: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sleepmitra_chat_replies_total",
				Help: "Total number of chatbot replies",
			},
			[]string{"match"}, // "exact", "keyword" or "fallback"
		),
		DiaryEntries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sleepmitra_diary_entries_created_total",
				Help: "Total number of diary entries saved",
			},
		),
	}
}

// NewNop returns unregistered collectors.
func NewNop() *Metrics {
	return New(nil)
}
