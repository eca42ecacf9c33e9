package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/compass-edu/compass-api/internal/dto"
	"github.com/compass-edu/compass-api/internal/models"
	"github.com/compass-edu/compass-api/internal/observability"
	"github.com/compass-edu/compass-api/internal/repository"
	"github.com/compass-edu/compass-api/internal/scoring"
)

// ErrQuestionNotFound indicates the submitted answer references an unknown question.
var ErrQuestionNotFound = errors.New("question not found")

// AnswerService handles answer submission and assessment progress.
type AnswerService interface {
	Submit(ctx context.Context, userID uint, payload dto.AnswerSubmitRequest) (dto.AnswerResponse, error)
	ListByUser(ctx context.Context, userID uint) ([]dto.AnswerResponse, error)
	Progress(ctx context.Context, userID uint) (dto.ProgressResponse, error)
	ResetUser(ctx context.Context, userID uint) (int64, error)
}

type answerService struct {
	answers   repository.AnswerRepository
	questions repository.QuestionRepository
	engine    *scoring.Engine
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAnswerService constructs the answer service. The engine passed here must
// share its preference-point table with the report pipeline so the score
// stored at save time matches the one recomputed at report time.
func NewAnswerService(answers repository.AnswerRepository, questions repository.QuestionRepository, engine *scoring.Engine, validator *validator.Validate, logger zerolog.Logger) AnswerService {
	return &answerService{
		answers:   answers,
		questions: questions,
		engine:    engine,
		validator: validator,
		logger:    logger.With().Str("component", "answer_service").Logger(),
	}
}

func (s *answerService) Submit(ctx context.Context, userID uint, payload dto.AnswerSubmitRequest) (dto.AnswerResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AnswerResponse{}, err
	}

	question, err := s.questions.GetByID(ctx, payload.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AnswerResponse{}, ErrQuestionNotFound
		}
		return dto.AnswerResponse{}, err
	}

	answer := models.Answer{
		UserID:       userID,
		QuestionID:   question.ID,
		Value:        payload.Value,
		TimeSpentSec: payload.TimeSpentSec,
	}
	answer.Score = s.engine.NormalizeAnswer(answer, question)

	if err := s.answers.Upsert(ctx, &answer); err != nil {
		return dto.AnswerResponse{}, err
	}

	observability.AnswerSubmissions().WithLabelValues(question.Section).Inc()
	s.logger.Debug().
		Uint("user_id", userID).
		Uint("question_id", question.ID).
		Float64("score", answer.Score).
		Msg("answer stored")

	return dto.NewAnswerResponse(answer), nil
}

func (s *answerService) ListByUser(ctx context.Context, userID uint) ([]dto.AnswerResponse, error) {
	answers, err := s.answers.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AnswerResponse, 0, len(answers))
	for _, a := range answers {
		responses = append(responses, dto.NewAnswerResponse(a))
	}
	return responses, nil
}

func (s *answerService) Progress(ctx context.Context, userID uint) (dto.ProgressResponse, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return dto.ProgressResponse{}, err
	}

	available := map[string]int64{}
	for _, q := range questions {
		available[q.Section]++
	}

	response := dto.ProgressResponse{Complete: true}
	for _, section := range []string{models.SectionAptitude, models.SectionPersonality, models.SectionInterest} {
		answered, err := s.answers.CountByUserAndSection(ctx, userID, section)
		if err != nil {
			return dto.ProgressResponse{}, err
		}
		total := available[section]
		response.Sections = append(response.Sections, dto.SectionProgress{
			Section:   section,
			Answered:  answered,
			Available: total,
		})
		if total == 0 || answered < total {
			response.Complete = false
		}
	}

	return response, nil
}

func (s *answerService) ResetUser(ctx context.Context, userID uint) (int64, error) {
	deleted, err := s.answers.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.logger.Info().Uint("user_id", userID).Int64("deleted", deleted).Msg("answers reset")
	}
	return deleted, nil
}
