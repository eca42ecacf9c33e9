package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/compass-edu/compass-api/internal/config"
	"github.com/compass-edu/compass-api/internal/handler"
	"github.com/compass-edu/compass-api/internal/middleware"
	"github.com/compass-edu/compass-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	QuestionHandler *handler.QuestionHandler
	AnswerHandler   *handler.AnswerHandler
	CareerHandler   *handler.CareerHandler
	ReportHandler   *handler.ReportHandler
	SeedHandler     *handler.SeedHandler
	JWTMiddleware   fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	// Common v1 group for health & headers
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Assessment (question catalog & answers)
	if deps.QuestionHandler != nil {
		assessment := app.Group("/api/v1/assessment", jwtMiddleware)

		questionGroup := assessment.Group("/questions")
		deps.QuestionHandler.Register(questionGroup)

		if deps.AnswerHandler != nil {
			answerGroup := assessment.Group("/answers")
			deps.AnswerHandler.Register(answerGroup)
		}
	}

	// Career catalog
	if deps.CareerHandler != nil {
		careers := app.Group("/api/v1/careers", jwtMiddleware)
		deps.CareerHandler.Register(careers)
	}

	// Reports
	if deps.ReportHandler != nil {
		reports := app.Group("/api/v1/reports", jwtMiddleware,
			middleware.RateLimit("reports", 30, time.Minute))
		deps.ReportHandler.Register(reports)
	}

	// Seed tooling, gated by deploy-time token rather than user auth
	if deps.SeedHandler != nil {
		seed := app.Group("/api/v1/seed")
		deps.SeedHandler.Register(seed)
	}
}
