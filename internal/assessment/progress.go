package assessment

import "fmt"

const (
	nextLabel   = "अगला"
	finishLabel = "पूर्ण करें"
)

// Progress describes the wizard position for the presentation layer.
type Progress struct {
	Step       int    `json:"step"`
	Total      int    `json:"total"`
	Percent    int    `json:"percent"`
	Label      string `json:"label"`
	CanRetreat bool   `json:"can_retreat"`
	NextLabel  string `json:"next_label"`
}

func NewProgress(step, total int) Progress {
	p := Progress{
		Step:       step,
		Total:      total,
		Label:      fmt.Sprintf("चरण %d / %d", step, total),
		CanRetreat: step > 1,
		NextLabel:  nextLabel,
	}
	if total > 0 {
		p.Percent = step * 100 / total
	}
	if step == total {
		p.NextLabel = finishLabel
	}
	return p
}
