// Package therapy holds the CBT-I module catalog, per-severity plans,
// progress counters and the downloadable plan document.
package therapy

import "github.com/blaisecz/sleepmitra/internal/assessment"

type Module struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
	VideoURL    string `json:"video_url"`
}

var catalog = []Module{
	{ID: "cbti_basics", Name: "CBT-I मूल बातें", Description: "नींद चिकित्सा की मूल बातें और CBT-I तकनीकों का परिचय", Duration: "30 मिनट", Difficulty: "शुरुआती", VideoURL: "https://www.youtube.com/watch?v=GyxqKoQAxTk"},
	{ID: "sleep_restriction", Name: "नींद प्रतिबंध तकनीक", Description: "सोने के समय को नियंत्रित करने की तकनीक", Duration: "25 मिनट", Difficulty: "मध्यम", VideoURL: "https://www.youtube.com/watch?v=DdtHsaZ_Xp4"},
	{ID: "sleep_hygiene", Name: "नींद स्वच्छता", Description: "अच्छी नींद के लिए आदतें और वातावरण", Duration: "20 मिनट", Difficulty: "शुरुआती", VideoURL: "https://www.youtube.com/watch?v=s2dQPI9ZPO0"},
	{ID: "progressive_relaxation", Name: "प्रगतिशील मांसपेशी रिलैक्सेशन", Description: "शरीर को आराम देने की तकनीक", Duration: "35 मिनट", Difficulty: "मध्यम", VideoURL: "https://www.youtube.com/watch?v=STPuP0kUnTo"},
	{ID: "breathing_techniques", Name: "गहरी सांस लेने की तकनीक", Description: "तनाव कम करने के लिए सांस लेने के व्यायाम", Duration: "15 मिनट", Difficulty: "शुरुआती", VideoURL: "https://www.youtube.com/watch?v=kQUae5zodJ8"},
	{ID: "bedroom_environment", Name: "बेडरूम का वातावरण", Description: "नींद के लिए आदर्श वातावरण बनाना", Duration: "20 मिनट", Difficulty: "शुरुआती", VideoURL: "https://www.youtube.com/watch?v=dxsR_l5bu7w"},
	{ID: "sleep_routine", Name: "दिनचर्या और नींद", Description: "नियमित दिनचर्या का महत्व", Duration: "25 मिनट", Difficulty: "शुरुआती", VideoURL: "https://www.youtube.com/watch?v=KVfDhbFRfy0"},
	{ID: "cognitive_restructuring", Name: "संज्ञानात्मक पुनर्गठन", Description: "नींद के बारे में नकारात्मक विचारों को बदलना", Duration: "40 मिनट", Difficulty: "उन्नत", VideoURL: "https://www.youtube.com/watch?v=SclJBsQYI_Q"},
	{ID: "sleep_restriction_therapy", Name: "नींद प्रतिबंध चिकित्सा", Description: "नींद की दक्षता बढ़ाने की तकनीक", Duration: "30 मिनट", Difficulty: "उन्नत", VideoURL: "https://www.youtube.com/watch?v=7okjM6Tq14E"},
}

// videoTitles are the link titles used in the downloadable plan, in
// catalog order.
var videoTitles = []string{
	"CBT-I का परिचय",
	"नींद प्रतिबंध तकनीक",
	"नींद स्वच्छता",
	"प्रगतिशील मांसपेशी रिलैक्सेशन",
	"गहरी सांस लेने की तकनीक",
	"बेडरूम का वातावरण",
	"दिनचर्या और नींद",
	"संज्ञानात्मक पुनर्गठन",
	"नींद प्रतिबंध चिकित्सा",
}

func Catalog() []Module {
	out := make([]Module, len(catalog))
	copy(out, catalog)
	return out
}

func moduleByID(id string) (Module, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

type PlanModule struct {
	Module   Module `json:"module"`
	Week     int    `json:"week"`
	Required bool   `json:"required"`
	Unlocked bool   `json:"unlocked"`
}

type Plan struct {
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Severity      assessment.Severity `json:"severity"`
	DurationWeeks int                 `json:"duration_weeks"`
	Modules       []PlanModule        `json:"modules"`
}

type planStep struct {
	id       string
	week     int
	required bool
}

var mildSteps = []planStep{
	{"sleep_hygiene", 1, true},
	{"bedroom_environment", 1, true},
	{"sleep_routine", 2, true},
	{"breathing_techniques", 2, false},
	{"progressive_relaxation", 3, false},
	{"cbti_basics", 4, false},
}

var moderateSteps = []planStep{
	{"sleep_hygiene", 1, true},
	{"bedroom_environment", 1, true},
	{"sleep_routine", 2, true},
	{"breathing_techniques", 2, true},
	{"progressive_relaxation", 3, true},
	{"cbti_basics", 4, true},
	{"sleep_restriction", 5, true},
	{"cognitive_restructuring", 6, false},
}

var severeSteps = []planStep{
	{"sleep_hygiene", 1, true},
	{"bedroom_environment", 1, true},
	{"sleep_routine", 2, true},
	{"breathing_techniques", 2, true},
	{"progressive_relaxation", 3, true},
	{"cbti_basics", 4, true},
	{"sleep_restriction", 5, true},
	{"cognitive_restructuring", 6, true},
	{"sleep_restriction_therapy", 7, true},
}

// PlanFor builds the module plan for a severity. Unknown or empty
// severities get the mild plan. Only the first module starts unlocked.
func PlanFor(sev assessment.Severity) Plan {
	var p Plan
	var steps []planStep
	switch sev {
	case assessment.SeveritySevere:
		p = Plan{Name: "गहन नींद चिकित्सा योजना", Description: "गंभीर नींद की समस्याओं के लिए व्यापक चिकित्सा", Severity: sev, DurationWeeks: 8}
		steps = severeSteps
	case assessment.SeverityModerate:
		p = Plan{Name: "मध्यम नींद चिकित्सा योजना", Description: "मध्यम नींद की समस्याओं के लिए संरचित चिकित्सा", Severity: sev, DurationWeeks: 6}
		steps = moderateSteps
	default:
		p = Plan{Name: "बुनियादी नींद सुधार योजना", Description: "हल्की नींद की समस्याओं के लिए बुनियादी तकनीकें", Severity: assessment.SeverityMild, DurationWeeks: 4}
		steps = mildSteps
	}

	for i, st := range steps {
		m, ok := moduleByID(st.id)
		if !ok {
			continue
		}
		p.Modules = append(p.Modules, PlanModule{
			Module:   m,
			Week:     st.week,
			Required: st.required,
			Unlocked: i == 0,
		})
	}
	return p
}
