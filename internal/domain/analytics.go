package domain

// DescriptiveStats holds basic statistical measures.
// @Description Basic statistical measures for a metric.
type DescriptiveStats struct {
	Avg float64 `json:"avg" example:"7.2"`
	Std float64 `json:"std" example:"0.8"`
	Min float64 `json:"min" example:"5.5"`
	Max float64 `json:"max" example:"9.0"`
}

// DiaryMetrics summarises the stored diary.
// @Description Sleep metrics computed from diary entries.
type DiaryMetrics struct {
	// Number of entries used
	EntryCount int `json:"entry_count" example:"7"`
	// Total sleep time over total time in bed, as a percentage
	SleepEfficiency float64 `json:"sleep_efficiency" example:"88.5"`
	// Estimated sleep hours: time in bed minus latency minus 15 minutes per wake-up
	SleepHours DescriptiveStats `json:"sleep_hours"`
	// Hours between bedtime and wake time
	TimeInBedHours DescriptiveStats `json:"time_in_bed_hours"`
	// Minutes to fall asleep
	LatencyMinutes DescriptiveStats `json:"latency_minutes"`
	// Night-time wake-ups
	WakeUps DescriptiveStats `json:"wake_ups"`
	// Subjective quality (1-10)
	Quality DescriptiveStats `json:"quality"`
}

// ChartSeries is one labelled data set.
type ChartSeries struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
	Color string    `json:"color,omitempty"`
}

// Chart is a set of series sharing x-axis labels.
type Chart struct {
	Kind   string        `json:"kind" example:"line"`
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

// KPI is a headline metric with its sparkline.
type KPI struct {
	Name      string    `json:"name" example:"sleep_efficiency"`
	Label     string    `json:"label" example:"नींद दक्षता"`
	Unit      string    `json:"unit" example:"%"`
	Current   float64   `json:"current" example:"87"`
	Sparkline []float64 `json:"sparkline"`
}

// Dashboard is the analytics page payload.
// @Description Sample analytics dashboard. The series are fixed demo data and are not derived from the diary.
type Dashboard struct {
	KPIs []KPI `json:"kpis"`
	// X-axis labels shared by all KPI sparklines
	SparklineLabels []string `json:"sparkline_labels"`
	Duration        Chart    `json:"duration"`
	Efficiency      Chart    `json:"efficiency"`
	WakeUps         Chart    `json:"wake_ups"`
	WeeklyAverages  Chart    `json:"weekly_averages"`
}
