package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/compass-edu/compass-api/internal/config"
	"github.com/compass-edu/compass-api/internal/database"
	"github.com/compass-edu/compass-api/internal/handler"
	"github.com/compass-edu/compass-api/internal/middleware"
	"github.com/compass-edu/compass-api/internal/models"
	"github.com/compass-edu/compass-api/internal/repository"
	"github.com/compass-edu/compass-api/internal/router"
	"github.com/compass-edu/compass-api/internal/scoring"
	"github.com/compass-edu/compass-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Question{},
		&models.Answer{},
		&models.Career{},
		&models.AssessmentType{},
		&models.Report{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())
	engine := scoring.NewEngine(scoring.DefaultConfig())

	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)
	careerRepo := repository.NewCareerRepository(db)
	assessmentTypeRepo := repository.NewAssessmentTypeRepository(db)
	reportRepo := repository.NewReportRepository(db)

	questionService := service.NewQuestionService(questionRepo, logger)
	answerService := service.NewAnswerService(answerRepo, questionRepo, engine, validate, logger)
	careerCatalogService := service.NewCareerCatalogService(careerRepo, redisClient, cfg.CatalogCacheTTL, logger)
	reportService := service.NewReportService(answerRepo, questionRepo, careerRepo, reportRepo, assessmentTypeRepo, scoring.DefaultConfig(), validate, logger)
	seedService, err := service.NewSeedService(questionRepo, careerRepo, assessmentTypeRepo, cfg.SeedEnabled, cfg.SeedToken, logger)
	if err != nil {
		log.Fatalf("failed to create seed service: %v", err)
	}

	questionHandler := handler.NewQuestionHandler(questionService, logger)
	answerHandler := handler.NewAnswerHandler(answerService, logger)
	careerHandler := handler.NewCareerHandler(careerCatalogService, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)
	seedHandler := handler.NewSeedHandler(seedService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		QuestionHandler: questionHandler,
		AnswerHandler:   answerHandler,
		CareerHandler:   careerHandler,
		ReportHandler:   reportHandler,
		SeedHandler:     seedHandler,
		JWTMiddleware:   middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
