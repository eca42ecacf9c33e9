package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/compass-edu/compass-api/internal/models"
)

func TestQuestionHandlerListBySection(t *testing.T) {
	app, db := setupApp(t)

	seedQuestion(t, db, models.Question{
		Section:       models.SectionAptitude,
		SubDomain:     "numerical",
		Type:          models.QuestionTypeMultipleChoice,
		Text:          "What is 15% of 200?",
		Options:       []string{"20", "25", "30", "35"},
		CorrectAnswer: intPtr(2),
	})
	seedQuestion(t, db, models.Question{
		Section: models.SectionPersonality,
		Trait:   "openness",
		Type:    models.QuestionTypeLikert,
		Text:    "I enjoy trying new things.",
		Options: []string{"1", "2", "3", "4", "5"},
	})

	resp := getPath(t, app, "/api/v1/assessment/questions/sections/aptitude")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool             `json:"success"`
		Data    []map[string]any `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Len(t, body.Data, 1)
	require.Equal(t, "aptitude", body.Data[0]["section"])

	// The answer key and reverse-scoring flag must never reach clients.
	require.NotContains(t, body.Data[0], "correct_answer")
	require.NotContains(t, body.Data[0], "is_reversed")
}

func TestQuestionHandlerUnknownSection(t *testing.T) {
	app, _ := setupApp(t)

	resp := getPath(t, app, "/api/v1/assessment/questions/sections/astrology")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestQuestionHandlerListAll(t *testing.T) {
	app, db := setupApp(t)

	seedQuestion(t, db, models.Question{
		Section: models.SectionInterest,
		Type:    models.QuestionTypePreference,
		Text:    "Building furniture from a kit",
		Options: []string{"0", "1", "2", "3", "4"},
	})

	resp := getPath(t, app, "/api/v1/assessment/questions")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []map[string]any `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Len(t, body.Data, 1)
}
