package scoring

import (
	"math"
	"sort"

	"github.com/compass-edu/compass-api/internal/models"
)

// neutralFit stands in for any per-section fit the data cannot support, e.g.
// a career without a RIASEC profile or a section the user never answered.
const neutralFit = 50.0

// CareerMatch is one ranked catalog entry produced by MatchCareers.
type CareerMatch struct {
	CareerID        uint   `json:"career_id"`
	Title           string `json:"title"`
	MatchPercentage int    `json:"match_percentage"`
	Rank            int    `json:"rank"`
}

// MatchCareers scores every career against the user's profile, sorts
// descending by match percentage (catalog order on ties) and truncates to
// topN. A profile with no completed sections falls back to a deterministic
// index-based placeholder ranking so report generation never aborts.
func (e *Engine) MatchCareers(profile Profile, careers []models.Career, topN int) []CareerMatch {
	if topN <= 0 {
		topN = e.cfg.DefaultTopMatches
	}

	matches := make([]CareerMatch, 0, len(careers))
	if profile.Empty() {
		matches = placeholderMatches(careers)
	} else {
		wAptitude, wPersonality, wInterest := e.cfg.normalizedWeights()
		for _, career := range careers {
			combined := wAptitude*e.aptitudeFit(profile) +
				wPersonality*e.personalityFit(profile, career) +
				wInterest*e.interestFit(profile, career)
			matches = append(matches, CareerMatch{
				CareerID:        career.ID,
				Title:           career.Title,
				MatchPercentage: int(math.Round(clampScore(combined))),
			})
		}
		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].MatchPercentage > matches[j].MatchPercentage
		})
	}

	if len(matches) > topN {
		matches = matches[:topN]
	}
	for i := range matches {
		matches[i].Rank = i + 1
	}
	return matches
}

func (e *Engine) aptitudeFit(profile Profile) float64 {
	if !profile.Completed[models.SectionAptitude] {
		return neutralFit
	}
	return clampScore(profile.Aptitude[KeyOverall])
}

// personalityFit compares the user's trait scores against the career's ideal
// levels: 100 minus the mean absolute distance over the traits the career
// actually specifies.
func (e *Engine) personalityFit(profile Profile, career models.Career) float64 {
	if !profile.Completed[models.SectionPersonality] {
		return neutralFit
	}

	var distance, count float64
	for _, trait := range TraitKeys {
		ideal, ok := career.IdealTraitLevel(trait)
		if !ok {
			continue
		}
		user, ok := profile.Personality[trait]
		if !ok {
			continue
		}
		distance += math.Abs(user - ideal)
		count++
	}
	if count == 0 {
		return neutralFit
	}
	return clampScore(100 - distance/count)
}

// interestFit is the weighted RIASEC similarity: each category contributes
// (careerWeight/100) * userScore, normalized by the total career weight that
// actually matched. Careers with no profile or no overlap default to neutral.
func (e *Engine) interestFit(profile Profile, career models.Career) float64 {
	if !profile.Completed[models.SectionInterest] {
		return neutralFit
	}

	var contribution, weightUsed float64
	for _, category := range RIASECKeys {
		weight, ok := career.ProfileWeight(category)
		if !ok || weight <= 0 {
			continue
		}
		userScore, ok := profile.Interest[category]
		if !ok {
			continue
		}
		contribution += (weight / 100) * userScore
		weightUsed += weight / 100
	}
	if weightUsed <= 0 {
		return neutralFit
	}
	return clampScore(contribution / weightUsed)
}

// placeholderMatches ranks the catalog by a synthetic score derived from
// catalog position. Output is deliberately degraded but deterministic.
func placeholderMatches(careers []models.Career) []CareerMatch {
	matches := make([]CareerMatch, 0, len(careers))
	for i, career := range careers {
		pct := 85 - 3*i
		if pct < 10 {
			pct = 10
		}
		matches = append(matches, CareerMatch{
			CareerID:        career.ID,
			Title:           career.Title,
			MatchPercentage: pct,
		})
	}
	return matches
}
