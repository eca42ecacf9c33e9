package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/compass-edu/compass-api/internal/dto"
	"github.com/compass-edu/compass-api/internal/models"
	"github.com/compass-edu/compass-api/internal/observability"
	"github.com/compass-edu/compass-api/internal/repository"
	"github.com/compass-edu/compass-api/internal/scoring"
)

// ErrAssessmentTypeNotFound indicates the requested assessment type does not exist.
var ErrAssessmentTypeNotFound = errors.New("assessment type not found")

// ErrReportNotFound indicates the report does not exist or belongs to another user.
var ErrReportNotFound = errors.New("report not found")

// ReportService runs the scoring pipeline over a user's stored answers and
// persists the resulting report.
type ReportService interface {
	Generate(ctx context.Context, userID uint, payload dto.ReportGenerateRequest) (dto.ReportResponse, error)
	Get(ctx context.Context, userID, reportID uint) (dto.ReportResponse, error)
	ListByUser(ctx context.Context, userID uint) ([]dto.ReportResponse, error)
}

type reportService struct {
	answers         repository.AnswerRepository
	questions       repository.QuestionRepository
	careers         repository.CareerRepository
	reports         repository.ReportRepository
	assessmentTypes repository.AssessmentTypeRepository
	baseConfig      scoring.Config
	validator       *validator.Validate
	logger          zerolog.Logger
}

// NewReportService constructs the report service. baseConfig supplies
// everything except section weights, which come from the assessment type
// record per request.
func NewReportService(
	answers repository.AnswerRepository,
	questions repository.QuestionRepository,
	careers repository.CareerRepository,
	reports repository.ReportRepository,
	assessmentTypes repository.AssessmentTypeRepository,
	baseConfig scoring.Config,
	validator *validator.Validate,
	logger zerolog.Logger,
) ReportService {
	return &reportService{
		answers:         answers,
		questions:       questions,
		careers:         careers,
		reports:         reports,
		assessmentTypes: assessmentTypes,
		baseConfig:      baseConfig,
		validator:       validator,
		logger:          logger.With().Str("component", "report_service").Logger(),
	}
}

func (s *reportService) Generate(ctx context.Context, userID uint, payload dto.ReportGenerateRequest) (dto.ReportResponse, error) {
	tracer := otel.Tracer("github.com/compass-edu/compass-api/internal/service/report")
	ctx, span := tracer.Start(ctx, "report.generate")
	span.SetAttributes(
		attribute.Int64("report.user_id", int64(userID)),
		attribute.String("report.assessment_type", payload.AssessmentType),
	)
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return dto.ReportResponse{}, err
	}

	assessmentType, err := s.assessmentTypes.GetBySlug(ctx, payload.AssessmentType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "assessment_type_not_found")
			observability.ReportGenerations().WithLabelValues(payload.AssessmentType, "rejected").Inc()
			return dto.ReportResponse{}, ErrAssessmentTypeNotFound
		}
		span.RecordError(err)
		return dto.ReportResponse{}, err
	}

	answers, err := s.answers.ListByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return dto.ReportResponse{}, err
	}
	questions, err := s.questions.List(ctx)
	if err != nil {
		span.RecordError(err)
		return dto.ReportResponse{}, err
	}
	careers, err := s.careers.List(ctx, repository.CareerFilter{Audience: assessmentType.Slug})
	if err != nil {
		span.RecordError(err)
		return dto.ReportResponse{}, err
	}

	cfg := s.baseConfig.WithWeights(
		assessmentType.SectionWeight(models.SectionAptitude),
		assessmentType.SectionWeight(models.SectionPersonality),
		assessmentType.SectionWeight(models.SectionInterest),
	)
	topN := payload.TopMatches
	if topN <= 0 {
		topN = assessmentType.TopMatches
	}

	engine := scoring.NewEngine(cfg)
	start := time.Now()
	result := engine.GenerateReport(userID, answers, questions, careers, topN)
	observability.ScoringDuration().WithLabelValues(assessmentType.Slug).Observe(time.Since(start).Seconds())

	version, err := s.reports.NextVersion(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return dto.ReportResponse{}, err
	}

	report := models.Report{
		UserID:             userID,
		AssessmentTypeID:   assessmentType.ID,
		Audience:           assessmentType.Slug,
		Version:            version,
		AptitudeScores:     scoresToJSON(result.AptitudeScores),
		PersonalityScores:  scoresToJSON(result.PersonalityScores),
		InterestScores:     scoresToJSON(result.InterestScores),
		PersonalitySummary: result.PersonalitySummary,
		InterestSummary:    result.InterestSummary,
		CareerMatches:      matchesToRows(result.Matches),
		Strengths:          result.Strengths,
		DevelopmentAreas:   result.DevelopmentAreas,
		Recommendations:    result.Recommendations,
		CompletedSections:  result.CompletedSections,
	}

	if err := s.reports.Create(ctx, &report); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "report_persist_failed")
		observability.ReportGenerations().WithLabelValues(assessmentType.Slug, "error").Inc()
		return dto.ReportResponse{}, err
	}

	observability.ReportGenerations().WithLabelValues(assessmentType.Slug, "ok").Inc()
	span.SetAttributes(
		attribute.Int("report.version", report.Version),
		attribute.Int("report.matches", len(report.CareerMatches)),
	)
	s.logger.Info().
		Uint("user_id", userID).
		Uint("report_id", report.ID).
		Int("version", report.Version).
		Str("assessment_type", assessmentType.Slug).
		Int("sections_completed", len(report.CompletedSections)).
		Msg("report generated")

	return dto.NewReportResponse(report), nil
}

func (s *reportService) Get(ctx context.Context, userID, reportID uint) (dto.ReportResponse, error) {
	report, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ReportResponse{}, ErrReportNotFound
		}
		return dto.ReportResponse{}, err
	}
	if report.UserID != userID {
		return dto.ReportResponse{}, ErrReportNotFound
	}
	return dto.NewReportResponse(report), nil
}

func (s *reportService) ListByUser(ctx context.Context, userID uint) ([]dto.ReportResponse, error) {
	reports, err := s.reports.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewReportListResponse(reports), nil
}

func scoresToJSON(scores scoring.SectionScores) datatypes.JSONMap {
	m := make(datatypes.JSONMap, len(scores))
	for key, value := range scores {
		m[key] = value
	}
	return m
}

func matchesToRows(matches []scoring.CareerMatch) datatypes.JSONSlice[models.ReportMatch] {
	rows := make([]models.ReportMatch, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, models.ReportMatch{
			CareerID:        m.CareerID,
			Title:           m.Title,
			MatchPercentage: m.MatchPercentage,
			Rank:            m.Rank,
		})
	}
	return rows
}
