package booking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blaisecz/sleepmitra/internal/assessment"
)

const (
	DefaultLanguage       = "हिंदी"
	DefaultRecommendLimit = 3
)

type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	Qualification   string   `json:"qualification"`
	ExperienceYears int      `json:"experience_years"`
	Languages       []string `json:"languages"`
	Location        string   `json:"location"`
	Clinic          string   `json:"clinic"`
	Rating          float64  `json:"rating"`
	PatientsTreated int      `json:"patients_treated"`
	ConsultationFee int      `json:"consultation_fee"`
	Specialties     []string `json:"specialties"`
}

func (d Doctor) speaks(lang string) bool {
	for _, l := range d.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

func (d Doctor) hasSpecialty(s string) bool {
	for _, sp := range d.Specialties {
		if sp == s {
			return true
		}
	}
	return false
}

var roster = []Doctor{
	{
		ID: "dr_rajesh_kumar", Name: "डॉ. राजेश कुमार", Specialty: "नींद चिकित्सा विशेषज्ञ",
		Qualification: "MD, Sleep Medicine, AIIMS", ExperienceYears: 15,
		Languages: []string{"हिंदी", "English", "पंजाबी"}, Location: "दिल्ली", Clinic: "SleepCare Clinic, CP",
		Rating: 4.8, PatientsTreated: 2500, ConsultationFee: 1500,
		Specialties: []string{"CBT-I", "Sleep Apnea", "Insomnia"},
	},
	{
		ID: "dr_priya_sharma", Name: "डॉ. प्रिया शर्मा", Specialty: "मनोचिकित्सक और नींद विशेषज्ञ",
		Qualification: "MD Psychiatry, MBBS", ExperienceYears: 12,
		Languages: []string{"हिंदी", "English", "मराठी"}, Location: "मुंबई", Clinic: "Mind & Sleep Center, Bandra",
		Rating: 4.9, PatientsTreated: 1800, ConsultationFee: 2000,
		Specialties: []string{"Anxiety & Sleep", "Depression & Insomnia", "CBT-I"},
	},
	{
		ID: "dr_amit_singh", Name: "डॉ. अमित सिंह", Specialty: "नींद चिकित्सा और श्वसन विशेषज्ञ",
		Qualification: "MD Pulmonology, Sleep Medicine", ExperienceYears: 10,
		Languages: []string{"हिंदी", "English", "गुजराती"}, Location: "अहमदाबाद", Clinic: "Respiratory & Sleep Clinic",
		Rating: 4.7, PatientsTreated: 1200, ConsultationFee: 1200,
		Specialties: []string{"Sleep Apnea", "Snoring", "CBT-I"},
	},
	{
		ID: "dr_sunita_reddy", Name: "डॉ. सुनीता रेड्डी", Specialty: "नींद चिकित्सा और मनोविज्ञान",
		Qualification: "PhD Psychology, Sleep Medicine", ExperienceYears: 8,
		Languages: []string{"हिंदी", "English", "तेलुगु", "तमिल"}, Location: "बैंगलोर", Clinic: "Sleep Psychology Center",
		Rating: 4.6, PatientsTreated: 900, ConsultationFee: 1800,
		Specialties: []string{"Sleep Psychology", "CBT-I", "Relaxation Therapy"},
	},
	{
		ID: "dr_vikram_jain", Name: "डॉ. विक्रम जैन", Specialty: "नींद चिकित्सा और न्यूरोलॉजी",
		Qualification: "MD Neurology, Sleep Medicine", ExperienceYears: 18,
		Languages: []string{"हिंदी", "English", "राजस्थानी"}, Location: "जयपुर", Clinic: "Neuro Sleep Center",
		Rating: 4.9, PatientsTreated: 3000, ConsultationFee: 2500,
		Specialties: []string{"Neurological Sleep Disorders", "CBT-I", "Sleep Studies"},
	},
	{
		ID: "dr_meera_patel", Name: "डॉ. मीरा पटेल", Specialty: "नींद चिकित्सा और व्यवहार चिकित्सा",
		Qualification: "MD, Behavioral Medicine, Sleep Therapy", ExperienceYears: 6,
		Languages: []string{"हिंदी", "English", "गुजराती"}, Location: "सूरत", Clinic: "Behavioral Sleep Clinic",
		Rating: 4.5, PatientsTreated: 600, ConsultationFee: 1000,
		Specialties: []string{"Behavioral Sleep Therapy", "CBT-I", "Sleep Hygiene"},
	},
}

// Doctors returns a copy of the roster.
func Doctors() []Doctor {
	out := make([]Doctor, len(roster))
	copy(out, roster)
	return out
}

// Criteria drives doctor ranking. An empty Severity means no assessment
// has been completed and severity bonuses are skipped.
type Criteria struct {
	Severity assessment.Severity
	Language string
	Location string
	Limit    int
}

type Recommendation struct {
	Doctor  Doctor   `json:"doctor"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// Recommend scores every doctor and returns the best Limit of them.
func Recommend(c Criteria) []Recommendation {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Limit <= 0 {
		c.Limit = DefaultRecommendLimit
	}

	recs := make([]Recommendation, 0, len(roster))
	for _, d := range roster {
		recs = append(recs, score(d, c))
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > c.Limit {
		recs = recs[:c.Limit]
	}
	return recs
}

func score(d Doctor, c Criteria) Recommendation {
	var total float64
	var reasons []string

	base := d.Rating * 10
	total += base
	reasons = append(reasons, fmt.Sprintf("रेटिंग: %.1f (%.0f अंक)", d.Rating, base))

	if d.speaks(c.Language) {
		total += 20
		reasons = append(reasons, fmt.Sprintf("भाषा मैच: %s (+20 अंक)", c.Language))
	} else {
		reasons = append(reasons, fmt.Sprintf("भाषा मैच नहीं: %s (0 अंक)", c.Language))
	}

	if c.Location != "" {
		if strings.Contains(strings.ToLower(d.Location), strings.ToLower(c.Location)) {
			total += 15
			reasons = append(reasons, fmt.Sprintf("स्थान मैच: %s (+15 अंक)", c.Location))
		} else {
			reasons = append(reasons, fmt.Sprintf("स्थान मैच नहीं: %s (0 अंक)", c.Location))
		}
	}

	switch c.Severity {
	case "":
	case assessment.SeveritySevere:
		if d.hasSpecialty("CBT-I") {
			total += 25
			reasons = append(reasons, "CBT-I विशेषज्ञता (+25 अंक)")
		}
		if d.ExperienceYears >= 10 {
			total += 15
			reasons = append(reasons, "10+ वर्ष अनुभव (+15 अंक)")
		}
		if d.hasSpecialty("Neurological Sleep Disorders") {
			total += 20
			reasons = append(reasons, "न्यूरोलॉजिकल नींद विकार विशेषज्ञता (+20 अंक)")
		}
	case assessment.SeverityModerate:
		if d.hasSpecialty("CBT-I") {
			total += 20
			reasons = append(reasons, "CBT-I विशेषज्ञता (+20 अंक)")
		}
		if d.hasSpecialty("Sleep Psychology") {
			total += 15
			reasons = append(reasons, "नींद मनोविज्ञान विशेषज्ञता (+15 अंक)")
		}
	default:
		if d.hasSpecialty("Sleep Hygiene") {
			total += 15
			reasons = append(reasons, "नींद स्वच्छता विशेषज्ञता (+15 अंक)")
		}
		if d.hasSpecialty("Behavioral Sleep Therapy") {
			total += 10
			reasons = append(reasons, "व्यवहार नींद चिकित्सा (+10 अंक)")
		}
	}

	exp := float64(d.ExperienceYears * 2)
	total += exp
	reasons = append(reasons, fmt.Sprintf("अनुभव बोनस: %d वर्ष (+%.0f अंक)", d.ExperienceYears, exp))

	patients := float64(d.PatientsTreated) / 100
	if patients > 20 {
		patients = 20
	}
	total += patients
	reasons = append(reasons, fmt.Sprintf("मरीज अनुभव: %d मरीज (+%.0f अंक)", d.PatientsTreated, patients))

	return Recommendation{Doctor: d, Score: total, Reasons: reasons}
}
