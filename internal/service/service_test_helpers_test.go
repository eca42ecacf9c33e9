package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/compass-edu/compass-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Question{},
		&models.Answer{},
		&models.Career{},
		&models.AssessmentType{},
		&models.Report{},
	))
	return db
}

func intPtr(v int) *int {
	return &v
}

func seedAptitudeQuestion(t *testing.T, db *gorm.DB, id uint, subDomain string, correct int) models.Question {
	t.Helper()
	q := models.Question{
		ID:            id,
		Section:       models.SectionAptitude,
		SubDomain:     subDomain,
		Type:          models.QuestionTypeMultipleChoice,
		Text:          "Which option completes the sequence?",
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: intPtr(correct),
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func seedLikertQuestion(t *testing.T, db *gorm.DB, id uint, trait string, reversed bool) models.Question {
	t.Helper()
	q := models.Question{
		ID:         id,
		Section:    models.SectionPersonality,
		Trait:      trait,
		Type:       models.QuestionTypeLikert,
		Text:       "I enjoy trying new things.",
		Options:    []string{"Strongly disagree", "Disagree", "Neutral", "Agree", "Strongly agree"},
		IsReversed: reversed,
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func seedPreferenceQuestion(t *testing.T, db *gorm.DB, id uint, category string) models.Question {
	t.Helper()
	q := models.Question{
		ID:         id,
		Section:    models.SectionInterest,
		RIASECCode: category,
		Type:       models.QuestionTypePreference,
		Text:       "Working outdoors with tools.",
		Options:    []string{"Strongly dislike", "Dislike", "Neutral", "Like", "Strongly like"},
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}
