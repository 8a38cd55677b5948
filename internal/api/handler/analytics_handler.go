package handler

import (
	"net/http"

	"github.com/blaisecz/sleepmitra/internal/service"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Dashboard handles GET /v1/analytics/dashboard
// @Summary Analytics dashboard
// @Description KPI sparklines and charts. The figures are fixed sample data.
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Dashboard())
}
