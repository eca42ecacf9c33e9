package scoring

import (
	"fmt"

	"github.com/compass-edu/compass-api/internal/models"
)

// Report is the assembled output of one scoring run. It carries everything
// the rendering layer needs; persisting it is the caller's responsibility.
type Report struct {
	UserID             uint
	AptitudeScores     SectionScores
	PersonalityScores  SectionScores
	InterestScores     SectionScores
	PersonalitySummary string
	InterestSummary    string
	Matches            []CareerMatch
	Strengths          []string
	DevelopmentAreas   []string
	Recommendations    []string
	CompletedSections  []string
}

// AssembleReport combines section scores, summaries and ranked matches into
// one report value. Partial input is fine: sections without answers keep
// their neutral aggregates and are simply absent from CompletedSections.
func (e *Engine) AssembleReport(userID uint, profile Profile, summaries Summaries, matches []CareerMatch) Report {
	return Report{
		UserID:             userID,
		AptitudeScores:     profile.Aptitude,
		PersonalityScores:  profile.Personality,
		InterestScores:     profile.Interest,
		PersonalitySummary: summaries.Personality,
		InterestSummary:    summaries.Interest,
		Matches:            matches,
		Strengths:          e.strengths(profile),
		DevelopmentAreas:   e.developmentAreas(profile),
		Recommendations:    e.recommendations(profile, matches),
		CompletedSections:  profile.CompletedSections(),
	}
}

func (e *Engine) strengths(profile Profile) []string {
	strengths := make([]string, 0, 4)
	if profile.Completed[models.SectionAptitude] {
		for _, domain := range e.cfg.SubDomains {
			if profile.Aptitude[domain] >= e.cfg.StrongScoreThreshold {
				strengths = append(strengths, fmt.Sprintf("Strong %s reasoning", domain))
			}
		}
	}
	if profile.Completed[models.SectionPersonality] {
		for _, trait := range TraitKeys {
			if profile.Personality[trait] >= e.cfg.StrongScoreThreshold {
				strengths = append(strengths, fmt.Sprintf("High %s", trait))
			}
		}
	}
	return strengths
}

func (e *Engine) developmentAreas(profile Profile) []string {
	areas := make([]string, 0, 4)
	if profile.Completed[models.SectionAptitude] {
		for _, domain := range e.cfg.SubDomains {
			if profile.Aptitude[domain] < e.cfg.WeakScoreThreshold {
				areas = append(areas, fmt.Sprintf("Practice %s problems", domain))
			}
		}
	}
	if profile.Completed[models.SectionPersonality] {
		for _, trait := range TraitKeys {
			if profile.Personality[trait] < e.cfg.LowTraitThreshold {
				areas = append(areas, fmt.Sprintf("Build on your %s", trait))
			}
		}
	}
	return areas
}

func (e *Engine) recommendations(profile Profile, matches []CareerMatch) []string {
	recommendations := make([]string, 0, 4)
	limit := 3
	if len(matches) < limit {
		limit = len(matches)
	}
	for _, match := range matches[:limit] {
		recommendations = append(recommendations, fmt.Sprintf("Explore a career as a %s", match.Title))
	}
	if missing := 3 - len(profile.CompletedSections()); missing > 0 {
		recommendations = append(recommendations, "Complete the remaining assessment sections for a fuller picture")
	}
	return recommendations
}
