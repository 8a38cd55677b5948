package service

import "github.com/blaisecz/sleepmitra/internal/domain"

// AnalyticsService serves the sample analytics dashboard. The series are
// fixed demo data and do not read the diary.
type AnalyticsService interface {
	Dashboard() *domain.Dashboard
}

type analyticsService struct{}

func NewAnalyticsService() AnalyticsService {
	return &analyticsService{}
}

var (
	weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	dayLabels     = []string{"8 जन", "9 जन", "10 जन", "11 जन", "12 जन", "13 जन", "14 जन"}
	weekLabels    = []string{"सप्ताह 1", "सप्ताह 2", "सप्ताह 3", "सप्ताह 4"}
)

const (
	colorPrimary = "#6C5CE7"
	colorSuccess = "#00B894"
	colorWarning = "#FDCB6E"
)

// Dashboard returns a fresh copy on every call so callers may modify it.
func (s *analyticsService) Dashboard() *domain.Dashboard {
	return &domain.Dashboard{
		KPIs: []domain.KPI{
			sparklineKPI("sleep_efficiency", "नींद दक्षता", "%", []float64{85, 87, 86, 89, 88, 90, 87}),
			sparklineKPI("sleep_latency", "नींद आने में समय", "मिनट", []float64{15, 12, 14, 11, 13, 10, 12}),
			sparklineKPI("sleep_duration", "नींद की अवधि", "घंटे", []float64{7.2, 7.5, 7.3, 7.8, 7.6, 7.9, 7.5}),
			sparklineKPI("wake_ups", "जागने की संख्या", "", []float64{2, 1, 2, 1, 2, 0, 1}),
		},
		Duration: domain.Chart{
			Kind:   "line",
			Labels: copyLabels(dayLabels),
			Series: []domain.ChartSeries{
				{Label: "नींद अवधि (घंटे)", Data: []float64{7.5, 8.0, 7.2, 7.8, 6.5, 8.5, 7.0}, Color: colorPrimary},
			},
		},
		Efficiency: domain.Chart{
			Kind:   "line",
			Labels: copyLabels(dayLabels),
			Series: []domain.ChartSeries{
				{Label: "नींद दक्षता (%)", Data: []float64{85, 90, 82, 88, 75, 92, 80}, Color: colorSuccess},
			},
		},
		WakeUps: domain.Chart{
			Kind:   "bar",
			Labels: copyLabels(dayLabels),
			Series: []domain.ChartSeries{
				{Label: "जागने की संख्या", Data: []float64{2, 1, 3, 1, 4, 0, 2}, Color: colorWarning},
			},
		},
		WeeklyAverages: domain.Chart{
			Kind:   "bar",
			Labels: copyLabels(weekLabels),
			Series: []domain.ChartSeries{
				{Label: "औसत अवधि (घंटे)", Data: []float64{7.2, 7.5, 7.8, 8.0}, Color: colorPrimary},
				{Label: "औसत दक्षता (%)", Data: []float64{82, 85, 88, 90}, Color: colorSuccess},
			},
		},
		SparklineLabels: copyLabels(weekdayLabels),
	}
}

func sparklineKPI(name, label, unit string, data []float64) domain.KPI {
	return domain.KPI{
		Name:      name,
		Label:     label,
		Unit:      unit,
		Current:   data[len(data)-1],
		Sparkline: data,
	}
}

func copyLabels(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
