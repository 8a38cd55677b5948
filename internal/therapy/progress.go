package therapy

import (
	"fmt"
	"time"

	"github.com/blaisecz/sleepmitra/internal/assessment"
)

const (
	IntroVideoURL   = "https://www.youtube.com/watch?v=GyxqKoQAxTk"
	IntroVideoTitle = "CBT-I का परिचय"
	sessionNotice   = "चिकित्सा सत्र शुरू हो रहा है! पहले वीडियो से शुरुआत करें।"
	dayLayout       = "2006-01-02"
)

// Progress counters persisted per profile.
type Progress struct {
	VideosWatched     int    `json:"videos_watched"`
	DaysActive        int    `json:"days_active"`
	TechniquesLearned int    `json:"techniques_learned"`
	LastActiveDate    string `json:"last_active_date,omitempty"`
}

// StartSession counts today as active once and records the intro video.
// now must already be in the profile's timezone.
func StartSession(p Progress, now time.Time) (Progress, string) {
	today := now.Format(dayLayout)
	if p.LastActiveDate != today {
		p.DaysActive++
		p.LastActiveDate = today
	}
	p, _ = WatchVideo(p, IntroVideoTitle)
	return p, sessionNotice
}

func WatchVideo(p Progress, title string) (Progress, string) {
	p.VideosWatched++
	return p, fmt.Sprintf("\"%s\" वीडियो देखने के लिए धन्यवाद!", title)
}

func LearnTechnique(p Progress) Progress {
	p.TechniquesLearned++
	return p
}

type Badge struct {
	Background string `json:"background"`
	Color      string `json:"color"`
}

// BadgeFor returns the severity badge colours.
func BadgeFor(sev assessment.Severity) Badge {
	switch sev {
	case assessment.SeverityModerate:
		return Badge{Background: "rgba(253, 203, 110, 0.1)", Color: "#FDCB6E"}
	case assessment.SeveritySevere:
		return Badge{Background: "rgba(225, 112, 85, 0.1)", Color: "#E17055"}
	default:
		return Badge{Background: "rgba(0, 184, 148, 0.1)", Color: "#00B894"}
	}
}
