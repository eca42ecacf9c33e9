package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/compass-edu/compass-api/internal/config"
	"github.com/compass-edu/compass-api/internal/handler"
	"github.com/compass-edu/compass-api/internal/models"
	"github.com/compass-edu/compass-api/internal/repository"
	"github.com/compass-edu/compass-api/internal/router"
	"github.com/compass-edu/compass-api/internal/scoring"
	"github.com/compass-edu/compass-api/internal/service"
)

const testSeedToken = "seed-secret"

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Question{},
		&models.Answer{},
		&models.Career{},
		&models.AssessmentType{},
		&models.Report{},
	))

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.Nop()
	engine := scoring.NewEngine(scoring.DefaultConfig())

	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	careerRepo := repository.NewCareerRepository(db)
	assessmentTypeRepo := repository.NewAssessmentTypeRepository(db)
	reportRepo := repository.NewReportRepository(db)

	questionService := service.NewQuestionService(questionRepo, logger)
	answerService := service.NewAnswerService(answerRepo, questionRepo, engine, validate, logger)
	careerCatalogService := service.NewCareerCatalogService(careerRepo, nil, time.Minute, logger)
	reportService := service.NewReportService(answerRepo, questionRepo, careerRepo, reportRepo, assessmentTypeRepo, scoring.DefaultConfig(), validate, logger)
	seedService, err := service.NewSeedService(questionRepo, careerRepo, assessmentTypeRepo, true, testSeedToken, logger)
	require.NoError(t, err)

	app := fiber.New()

	router.Register(app, config.Config{AppName: "Test", JWTSecret: "secret"}, router.Dependencies{
		QuestionHandler: handler.NewQuestionHandler(questionService, logger),
		AnswerHandler:   handler.NewAnswerHandler(answerService, logger),
		CareerHandler:   handler.NewCareerHandler(careerCatalogService, logger),
		ReportHandler:   handler.NewReportHandler(reportService, logger),
		SeedHandler:     handler.NewSeedHandler(seedService, logger),
		JWTMiddleware: func(c *fiber.Ctx) error {
			c.Locals("user_id", uint(1))
			return c.Next()
		},
	})

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func newRequest(t *testing.T, method, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, path, nil)
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}

func intPtr(v int) *int {
	return &v
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func seedQuestion(t *testing.T, db *gorm.DB, q models.Question) models.Question {
	t.Helper()
	require.NoError(t, db.Create(&q).Error)
	return q
}
