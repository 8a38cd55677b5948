package therapy

import (
	"fmt"
	"strings"
	"time"

	"github.com/blaisecz/sleepmitra/internal/assessment"
)

const planFooter = "नींद साथी - SleepMitra"

const personalProgram = `चिकित्सा कार्यक्रम:
सप्ताह 1: नींद स्वच्छता
• नियमित सोने का समय निर्धारित करें
• बेडरूम को ठंडा और अंधेरा रखें
• सोने से 1 घंटे पहले स्क्रीन से दूर रहें
• कैफीन का सेवन कम करें

सप्ताह 2: रिलैक्सेशन तकनीकें
• प्रगतिशील मांसपेशी रिलैक्सेशन सीखें
• गहरी सांस लेने की तकनीक अभ्यास करें
• मेडिटेशन शुरू करें
• सोने से पहले रिलैक्सेशन रूटीन बनाएं

सप्ताह 3-4: CBT-I तकनीकें
• नींद प्रतिबंध तकनीक सीखें
• संज्ञानात्मक पुनर्गठन अभ्यास करें
• नींद डायरी रखना जारी रखें
• प्रगति का मूल्यांकन करें`

const generalTips = `सामान्य नींद स्वच्छता सुझाव:
• नियमित सोने का समय निर्धारित करें
• बेडरूम को ठंडा, अंधेरा और शांत रखें
• सोने से 1 घंटे पहले स्क्रीन से दूर रहें
• कैफीन और शराब से बचें
• रिलैक्सेशन तकनीकों का उपयोग करें
• नियमित व्यायाम करें`

// PlanDocument renders the downloadable plain-text plan. A nil result
// yields the general plan.
func PlanDocument(result *assessment.Result, now time.Time) string {
	var b strings.Builder

	if result != nil {
		b.WriteString("नींद साथी - व्यक्तिगत चिकित्सा योजना\n\n")
		b.WriteString("आकलन परिणाम:\n")
		fmt.Fprintf(&b, "- ISI स्कोर: %d\n", result.TotalScore)
		fmt.Fprintf(&b, "- गंभीरता: %s\n\n", result.SeverityLabel)
		b.WriteString("अनुशंसित चिकित्सा:\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(&b, "• %s\n", rec)
		}
		b.WriteString("\n")
		b.WriteString(personalProgram)
	} else {
		b.WriteString("नींद साथी - सामान्य चिकित्सा योजना\n\n")
		b.WriteString(generalTips)
	}

	b.WriteString("\n\nवीडियो लिंक्स:\n")
	for i, m := range catalog {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, videoTitles[i], m.VideoURL)
	}

	fmt.Fprintf(&b, "\nतैयार किया गया: %s\n", now.Format("2/1/2006"))
	b.WriteString(planFooter)
	return b.String()
}

func PlanFilename(now time.Time) string {
	return fmt.Sprintf("sleepmitra-therapy-plan-%s.txt", now.Format(dayLayout))
}
