package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/compass-edu/compass-api/internal/models"
)

func fullProfile() Profile {
	return Profile{
		Aptitude: SectionScores{
			KeyOverall: 80, "logical": 90, "numerical": 70, "verbal": 80, "spatial": 80,
		},
		Personality: SectionScores{
			"openness": 80, "conscientiousness": 70, "extraversion": 60, "agreeableness": 65, "neuroticism": 40,
		},
		Interest: SectionScores{
			"realistic": 20, "investigative": 90, "artistic": 60, "social": 30, "enterprising": 50, "conventional": 40,
		},
		Completed: map[string]bool{
			models.SectionAptitude:    true,
			models.SectionPersonality: true,
			models.SectionInterest:    true,
		},
	}
}

func careerFixture(id uint, title string, riasec, fit map[string]interface{}) models.Career {
	return models.Career{
		ID:             id,
		Title:          title,
		RIASECProfile:  datatypes.JSONMap(riasec),
		PersonalityFit: datatypes.JSONMap(fit),
	}
}

func TestMatchCareersDeterministic(t *testing.T) {
	engine := NewEngine(CollegeStudentConfig())
	careers := []models.Career{
		careerFixture(1, "Software Engineer", map[string]interface{}{"investigative": 90.0, "realistic": 40.0}, map[string]interface{}{"openness": 75.0, "conscientiousness": 80.0}),
		careerFixture(2, "Graphic Designer", map[string]interface{}{"artistic": 95.0, "enterprising": 30.0}, map[string]interface{}{"openness": 90.0}),
	}

	first := engine.MatchCareers(fullProfile(), careers, 10)
	second := engine.MatchCareers(fullProfile(), careers, 10)
	require.Equal(t, first, second)

	for i, match := range first {
		require.Equal(t, i+1, match.Rank)
		require.GreaterOrEqual(t, match.MatchPercentage, 0)
		require.LessOrEqual(t, match.MatchPercentage, 100)
	}
}

func TestMatchCareersTiePreservesCatalogOrder(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	profile := fullProfile()

	// Identical metadata guarantees identical computed percentages.
	riasec := map[string]interface{}{"investigative": 80.0}
	fit := map[string]interface{}{"openness": 80.0}
	careers := []models.Career{
		careerFixture(10, "Research Scientist", riasec, fit),
		careerFixture(11, "Lab Analyst", riasec, fit),
	}

	matches := engine.MatchCareers(profile, careers, 5)
	require.Len(t, matches, 2)
	require.Equal(t, matches[0].MatchPercentage, matches[1].MatchPercentage)
	require.Equal(t, uint(10), matches[0].CareerID)
	require.Equal(t, uint(11), matches[1].CareerID)
}

func TestMatchCareersMissingRIASECProfileNeutral(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	profile := fullProfile()

	bare := careerFixture(20, "Generalist", nil, nil)
	require.Equal(t, 50.0, engine.interestFit(profile, bare))
	require.Equal(t, 50.0, engine.personalityFit(profile, bare))

	matches := engine.MatchCareers(profile, []models.Career{bare}, 3)
	require.Len(t, matches, 1)
	require.Equal(t, 1, matches[0].Rank)
}

func TestMatchCareersWeightsNotSummingToOne(t *testing.T) {
	engine := NewEngine(DefaultConfig().WithWeights(3, 5, 9))
	careers := []models.Career{
		careerFixture(1, "Software Engineer", map[string]interface{}{"investigative": 90.0}, nil),
	}

	matches := engine.MatchCareers(fullProfile(), careers, 5)
	require.Len(t, matches, 1)
	require.GreaterOrEqual(t, matches[0].MatchPercentage, 0)
	require.LessOrEqual(t, matches[0].MatchPercentage, 100)
}

func TestMatchCareersZeroWeightsFallBackToDefaults(t *testing.T) {
	engine := NewEngine(Config{})
	careers := []models.Career{
		careerFixture(1, "Software Engineer", map[string]interface{}{"investigative": 90.0}, nil),
	}

	matches := engine.MatchCareers(fullProfile(), careers, 5)
	require.Len(t, matches, 1)
	require.GreaterOrEqual(t, matches[0].MatchPercentage, 0)
	require.LessOrEqual(t, matches[0].MatchPercentage, 100)
}

func TestMatchCareersEmptyProfilePlaceholder(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	careers := []models.Career{
		careerFixture(1, "First", nil, nil),
		careerFixture(2, "Second", nil, nil),
		careerFixture(3, "Third", nil, nil),
	}

	matches := engine.MatchCareers(Profile{Completed: map[string]bool{}}, careers, 10)
	require.Len(t, matches, 3)
	require.Equal(t, uint(1), matches[0].CareerID)
	require.Greater(t, matches[0].MatchPercentage, matches[1].MatchPercentage)
	require.Greater(t, matches[1].MatchPercentage, matches[2].MatchPercentage)
}

func TestMatchCareersEmptyCatalog(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	matches := engine.MatchCareers(fullProfile(), nil, 5)
	require.Empty(t, matches)
}

func TestMatchCareersTruncatesToTopN(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	careers := make([]models.Career, 0, 8)
	for i := uint(1); i <= 8; i++ {
		careers = append(careers, careerFixture(i, "Career", map[string]interface{}{"investigative": float64(i * 10)}, nil))
	}

	matches := engine.MatchCareers(fullProfile(), careers, 3)
	require.Len(t, matches, 3)
	require.Equal(t, []int{1, 2, 3}, []int{matches[0].Rank, matches[1].Rank, matches[2].Rank})
}

func TestInterestFitWeightedFormula(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	profile := fullProfile()

	career := careerFixture(1, "Data Analyst", map[string]interface{}{
		"investigative": 100.0, // user 90
		"conventional":  50.0,  // user 40
	}, nil)

	// (1.0*90 + 0.5*40) / 1.5 = 73.33...
	fit := engine.interestFit(profile, career)
	require.InDelta(t, 73.33, fit, 0.01)
}
