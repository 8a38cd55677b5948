package assessment

import (
	"math"
	"time"
)

// Result is the outcome of a completed assessment.
type Result struct {
	TotalScore      int       `json:"total_score"`
	RawScore        int       `json:"raw_score"`
	MaxScore        int       `json:"max_score"`
	Severity        Severity  `json:"severity"`
	SeverityLabel   string    `json:"severity_label"`
	Recommendations []string  `json:"recommendations"`
	Timestamp       time.Time `json:"timestamp"`
}

// Percent converts a raw sum into a 0..100 score, rounding half up.
func Percent(sum, max int) int {
	if max <= 0 {
		return 0
	}
	p := int(math.Floor(100*float64(sum)/float64(max) + 0.5))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Score builds a Result from a full answer set.
func Score(bank *Bank, answers AnswerSet, now time.Time) Result {
	sum := answers.Sum()
	max := bank.MaxPossibleScore()
	percent := Percent(sum, max)
	tier := bank.Classify(percent)

	recs := make([]string, len(tier.Recommendations))
	copy(recs, tier.Recommendations)

	return Result{
		TotalScore:      percent,
		RawScore:        sum,
		MaxScore:        max,
		Severity:        tier.Severity,
		SeverityLabel:   tier.Label,
		Recommendations: recs,
		Timestamp:       now.UTC(),
	}
}
