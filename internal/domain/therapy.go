package domain

import (
	"github.com/blaisecz/sleepmitra/internal/assessment"
	"github.com/blaisecz/sleepmitra/internal/therapy"
)

// TherapyView is what the therapy page renders.
// @Description Last assessment result (if any), badge and progress counters.
type TherapyView struct {
	// Omitted when no assessment has been completed
	Result *assessment.Result `json:"result,omitempty"`
	// Badge colours for the severity
	Badge *therapy.Badge `json:"badge,omitempty"`
	// Recommendations joined into one paragraph
	Recommendation string `json:"recommendation,omitempty"`
	// Progress counters
	Progress therapy.Progress `json:"progress"`
}

// SessionStartResponse is returned when a therapy session starts.
// @Description Updated progress and the video to open.
type SessionStartResponse struct {
	Message  string           `json:"message" example:"चिकित्सा सत्र शुरू हो रहा है! पहले वीडियो से शुरुआत करें।"`
	VideoURL string           `json:"video_url" example:"https://www.youtube.com/watch?v=GyxqKoQAxTk"`
	Progress therapy.Progress `json:"progress"`
}

// TrackVideoRequest records a watched video.
// @Description Title of the watched video.
type TrackVideoRequest struct {
	Title string `json:"title" validate:"required,max=200" example:"नींद स्वच्छता"`
}

// ProgressNotice pairs updated counters with a user-facing message.
// @Description Updated progress and a notice to show.
type ProgressNotice struct {
	Message  string           `json:"message,omitempty" example:"\"नींद स्वच्छता\" वीडियो देखने के लिए धन्यवाद!"`
	Progress therapy.Progress `json:"progress"`
}

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated therapy insights.
type LLMInsightsOutput struct {
	// Summary of the current situation (2-3 sentences)
	Summary string `json:"summary" example:"आपकी नींद पिछले सप्ताह में स्थिर रही है..."`
	// Observations about patterns (3-6 items)
	Observations []string `json:"observations"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance"`
}

// InsightsContext is the context object sent to the LLM.
// @Description Context data for LLM insights generation.
type InsightsContext struct {
	Assessment *assessment.Result `json:"assessment,omitempty"`
	Diary      DiaryMetrics       `json:"diary"`
	Progress   therapy.Progress   `json:"progress"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Therapy insights with the data they were generated from.
type InsightsResponse struct {
	Context  InsightsContext   `json:"context"`
	Insights LLMInsightsOutput `json:"insights"`
	// Trace ID for feedback (optional, only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// InsightsFeedbackRequest rates a generated insight.
// @Description User rating for a generated insight.
type InsightsFeedbackRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=500" example:"उपयोगी सुझाव"`
}
