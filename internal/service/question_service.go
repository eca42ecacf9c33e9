package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/compass-edu/compass-api/internal/dto"
	"github.com/compass-edu/compass-api/internal/models"
	"github.com/compass-edu/compass-api/internal/repository"
)

// ErrUnknownSection is returned when a section filter does not name an assessment section.
var ErrUnknownSection = errors.New("unknown section")

// QuestionService serves the question catalog.
type QuestionService interface {
	List(ctx context.Context) ([]dto.QuestionResponse, error)
	ListBySection(ctx context.Context, section string) ([]dto.QuestionResponse, error)
}

type questionService struct {
	questions repository.QuestionRepository
	logger    zerolog.Logger
}

// NewQuestionService constructs the question catalog service.
func NewQuestionService(questions repository.QuestionRepository, logger zerolog.Logger) QuestionService {
	return &questionService{
		questions: questions,
		logger:    logger.With().Str("component", "question_service").Logger(),
	}
}

func (s *questionService) List(ctx context.Context) ([]dto.QuestionResponse, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewQuestionListResponse(questions), nil
}

func (s *questionService) ListBySection(ctx context.Context, section string) ([]dto.QuestionResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(section))
	switch normalized {
	case models.SectionAptitude, models.SectionPersonality, models.SectionInterest:
	default:
		return nil, ErrUnknownSection
	}

	questions, err := s.questions.ListBySection(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return dto.NewQuestionListResponse(questions), nil
}
