// Package scoring implements the assessment scoring pipeline: normalizing raw
// answers, aggregating section scores, generating display summaries, matching
// careers and assembling the final report. Every function is a pure
// computation over the inputs it is handed; all data loading and persistence
// belongs to the caller.
package scoring

import "github.com/compass-edu/compass-api/internal/models"

// KeyOverall is the aggregate key reported alongside aptitude sub-domains.
const KeyOverall = "overall"

// TraitKeys lists the Big-Five traits in canonical order. Aggregation always
// reports all five; the order also breaks ties when ranking traits.
var TraitKeys = []string{
	"openness",
	"conscientiousness",
	"extraversion",
	"agreeableness",
	"neuroticism",
}

// RIASECKeys lists Holland's interest categories in canonical order.
var RIASECKeys = []string{
	"realistic",
	"investigative",
	"artistic",
	"social",
	"enterprising",
	"conventional",
}

// SectionScores maps a sub-key (sub-domain, trait or RIASEC category) to a
// score in [0,100].
type SectionScores map[string]float64

// Profile bundles the three section score maps produced for one user, plus
// which sections actually had answers.
type Profile struct {
	Aptitude    SectionScores
	Personality SectionScores
	Interest    SectionScores
	Completed   map[string]bool
}

// Empty reports whether no section received any answers.
func (p Profile) Empty() bool {
	return !p.Completed[models.SectionAptitude] &&
		!p.Completed[models.SectionPersonality] &&
		!p.Completed[models.SectionInterest]
}

// CompletedSections returns the completed section names in canonical order.
func (p Profile) CompletedSections() []string {
	sections := make([]string, 0, 3)
	for _, s := range []string{models.SectionAptitude, models.SectionPersonality, models.SectionInterest} {
		if p.Completed[s] {
			sections = append(sections, s)
		}
	}
	return sections
}

func indexQuestions(questions []models.Question) map[uint]models.Question {
	index := make(map[uint]models.Question, len(questions))
	for _, q := range questions {
		index[q.ID] = q
	}
	return index
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
