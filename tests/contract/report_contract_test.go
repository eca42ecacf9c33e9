package contract_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/compass-edu/compass-api/internal/dto"
	"github.com/compass-edu/compass-api/internal/handler"
)

type stubReportService struct {
	response dto.ReportResponse
}

func (s stubReportService) Generate(context.Context, uint, dto.ReportGenerateRequest) (dto.ReportResponse, error) {
	return s.response, nil
}

func (s stubReportService) Get(context.Context, uint, uint) (dto.ReportResponse, error) {
	return s.response, nil
}

func (s stubReportService) ListByUser(context.Context, uint) ([]dto.ReportResponse, error) {
	return []dto.ReportResponse{s.response}, nil
}

func TestReportContract(t *testing.T) {
	schemaPath, err := filepath.Abs(filepath.Join("..", "contracts", "report.schema.json"))
	require.NoError(t, err)

	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile("file://" + schemaPath)
	require.NoError(t, err)

	now := time.Now().UTC()
	response := dto.ReportResponse{
		ID:       7,
		UserID:   1,
		Audience: "school_student",
		Version:  2,
		AptitudeScores: map[string]float64{
			"logical": 80, "numerical": 60, "verbal": 75, "spatial": 50, "overall": 66.25,
		},
		PersonalityScores: map[string]float64{
			"openness": 84, "conscientiousness": 72, "extraversion": 56,
			"agreeableness": 64, "neuroticism": 40,
		},
		InterestScores: map[string]float64{
			"realistic": 25, "investigative": 90, "artistic": 55,
			"social": 45, "enterprising": 35, "conventional": 20,
		},
		PersonalitySummary: "Your strongest personality traits are openness and conscientiousness.",
		InterestSummary:    "Your interests align most closely with investigative, artistic and social pursuits.",
		CareerMatches: []dto.ReportMatchResponse{
			{CareerID: 3, Title: "Research Scientist", MatchPercentage: 88, Rank: 1},
			{CareerID: 5, Title: "Data Analyst", MatchPercentage: 81, Rank: 2},
		},
		Strengths:         []string{"Strong logical reasoning", "High openness"},
		DevelopmentAreas:  []string{"Practice spatial problems"},
		Recommendations:   []string{"Explore a career as a Research Scientist"},
		CompletedSections: []string{"aptitude", "personality", "interest"},
		Complete:          true,
		CreatedAt:         now,
	}

	svc := stubReportService{response: response}
	reportHandler := handler.NewReportHandler(svc, zerolog.Nop())

	app := fiber.New()
	group := app.Group("/api/v1/reports", func(c *fiber.Ctx) error {
		c.Locals("user_id", uint(1))
		return c.Next()
	})
	reportHandler.Register(group)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/7", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var payload interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NoError(t, schema.Validate(payload))
}
