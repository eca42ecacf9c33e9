package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gorm.io/datatypes"

	"github.com/compass-edu/compass-api/internal/dto"
	"github.com/compass-edu/compass-api/internal/models"
	"github.com/compass-edu/compass-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
	// ErrSeedInvalidPayload indicates the payload failed schema validation.
	ErrSeedInvalidPayload = errors.New("invalid seed payload")
)

// seedCatalogSchema gates the raw payload before any row is decoded. The
// option shape is validated exactly once here; nothing downstream re-sniffs it.
const seedCatalogSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["section", "type", "text", "options"],
        "properties": {
          "id": {"type": "integer", "minimum": 0},
          "section": {"enum": ["aptitude", "personality", "interest"]},
          "type": {"enum": ["multiple_choice", "likert", "preference"]},
          "text": {"type": "string", "minLength": 1},
          "options": {"type": "array", "items": {"type": "string"}, "minItems": 2},
          "correct_answer": {"type": "integer", "minimum": 0},
          "is_reversed": {"type": "boolean"},
          "sub_domain": {"type": "string"},
          "trait": {"type": "string"},
          "riasec_code": {"type": "string"},
          "difficulty": {"type": "string"},
          "time_limit_sec": {"type": "integer", "minimum": 0}
        }
      }
    },
    "careers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "id": {"type": "integer", "minimum": 0},
          "title": {"type": "string", "minLength": 1},
          "riasec_profile": {
            "type": "object",
            "additionalProperties": {"type": "number", "minimum": 0, "maximum": 100}
          },
          "personality_fit": {
            "type": "object",
            "additionalProperties": {"type": "number", "minimum": 0, "maximum": 100}
          }
        }
      }
    },
    "assessment_types": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["slug", "name", "scoring_weights"],
        "properties": {
          "slug": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "scoring_weights": {
            "type": "object",
            "additionalProperties": {"type": "number", "minimum": 0}
          },
          "top_matches": {"type": "integer", "minimum": 1}
        }
      }
    }
  }
}`

// riasecAliases expands legacy single-letter Holland codes to full category
// names. This is a data-migration concern handled once at seed time; scoring
// only ever sees full names.
var riasecAliases = map[string]string{
	"r": "realistic",
	"i": "investigative",
	"a": "artistic",
	"s": "social",
	"e": "enterprising",
	"c": "conventional",
}

// SeedService loads catalog data (questions, careers, assessment types) from
// a validated JSON payload.
type SeedService interface {
	SeedCatalog(ctx context.Context, token string, raw []byte) (dto.SeedCatalogResponse, error)
}

type seedService struct {
	questions       repository.QuestionRepository
	careers         repository.CareerRepository
	assessmentTypes repository.AssessmentTypeRepository
	schema          *jsonschema.Schema
	enabled         bool
	token           string
	logger          zerolog.Logger
}

// NewSeedService constructs a seeding service.
func NewSeedService(questions repository.QuestionRepository, careers repository.CareerRepository, assessmentTypes repository.AssessmentTypeRepository, enabled bool, token string, logger zerolog.Logger) (SeedService, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("seed_catalog.schema.json", strings.NewReader(seedCatalogSchema)); err != nil {
		return nil, fmt.Errorf("failed to register seed schema: %w", err)
	}
	schema, err := compiler.Compile("seed_catalog.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile seed schema: %w", err)
	}

	return &seedService{
		questions:       questions,
		careers:         careers,
		assessmentTypes: assessmentTypes,
		schema:          schema,
		enabled:         enabled,
		token:           token,
		logger:          logger.With().Str("component", "seed_service").Logger(),
	}, nil
}

func (s *seedService) SeedCatalog(ctx context.Context, token string, raw []byte) (dto.SeedCatalogResponse, error) {
	if !s.enabled {
		return dto.SeedCatalogResponse{}, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return dto.SeedCatalogResponse{}, ErrSeedUnauthorized
	}

	var untyped interface{}
	if err := json.Unmarshal(raw, &untyped); err != nil {
		return dto.SeedCatalogResponse{}, fmt.Errorf("%w: %v", ErrSeedInvalidPayload, err)
	}
	if err := s.schema.Validate(untyped); err != nil {
		return dto.SeedCatalogResponse{}, fmt.Errorf("%w: %v", ErrSeedInvalidPayload, err)
	}

	var payload dto.SeedCatalogRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		return dto.SeedCatalogResponse{}, fmt.Errorf("%w: %v", ErrSeedInvalidPayload, err)
	}

	var response dto.SeedCatalogResponse
	var err error

	if response.Questions, err = s.questions.UpsertBatch(ctx, decodeQuestions(payload.Questions)); err != nil {
		return dto.SeedCatalogResponse{}, err
	}
	if response.Careers, err = s.careers.UpsertBatch(ctx, decodeCareers(payload.Careers)); err != nil {
		return dto.SeedCatalogResponse{}, err
	}
	if response.AssessmentTypes, err = s.assessmentTypes.UpsertBatch(ctx, decodeAssessmentTypes(payload.AssessmentTypes)); err != nil {
		return dto.SeedCatalogResponse{}, err
	}

	s.logger.Info().
		Int64("questions", response.Questions).
		Int64("careers", response.Careers).
		Int64("assessment_types", response.AssessmentTypes).
		Msg("catalog seeded")
	return response, nil
}

func (s *seedService) validateToken(token string) bool {
	expected := strings.TrimSpace(s.token)
	if expected == "" {
		return false
	}
	return constantTimeEqual(expected, strings.TrimSpace(token))
}

func constantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	mismatch := byte(0)
	for i := 0; i < len(a); i++ {
		mismatch |= a[i] ^ b[i]
	}
	return mismatch == 0
}

func decodeQuestions(items []dto.SeedQuestion) []models.Question {
	questions := make([]models.Question, 0, len(items))
	for _, item := range items {
		questions = append(questions, models.Question{
			ID:            item.ID,
			Section:       strings.ToLower(strings.TrimSpace(item.Section)),
			SubDomain:     strings.ToLower(strings.TrimSpace(item.SubDomain)),
			Trait:         strings.ToLower(strings.TrimSpace(item.Trait)),
			RIASECCode:    normalizeRIASEC(item.RIASECCode),
			Type:          strings.ToLower(strings.TrimSpace(item.Type)),
			Text:          item.Text,
			Options:       item.Options,
			CorrectAnswer: item.CorrectAnswer,
			IsReversed:    item.IsReversed,
			Difficulty:    strings.ToLower(strings.TrimSpace(item.Difficulty)),
			TimeLimitSec:  item.TimeLimitSec,
		})
	}
	return questions
}

func decodeCareers(items []dto.SeedCareer) []models.Career {
	careers := make([]models.Career, 0, len(items))
	for _, item := range items {
		careers = append(careers, models.Career{
			ID:              item.ID,
			Title:           item.Title,
			Description:     item.Description,
			Industry:        item.Industry,
			EducationLevel:  item.EducationLevel,
			WorkStyle:       item.WorkStyle,
			WorkEnvironment: item.WorkEnvironment,
			GrowthOutlook:   item.GrowthOutlook,
			SalaryRange:     item.SalaryRange,
			RequiredSkills:  item.RequiredSkills,
			TargetAudiences: item.TargetAudiences,
			RIASECProfile:   normalizeProfile(item.RIASECProfile, true),
			PersonalityFit:  normalizeProfile(item.PersonalityFit, false),
		})
	}
	return careers
}

func decodeAssessmentTypes(items []dto.SeedAssessmentType) []models.AssessmentType {
	types := make([]models.AssessmentType, 0, len(items))
	for _, item := range items {
		topMatches := item.TopMatches
		if topMatches <= 0 {
			topMatches = 5
		}
		types = append(types, models.AssessmentType{
			Slug:           strings.ToLower(strings.TrimSpace(item.Slug)),
			Name:           item.Name,
			Description:    item.Description,
			QuestionCounts: intMapToJSON(item.QuestionCounts),
			TimeLimits:     intMapToJSON(item.TimeLimits),
			ScoringWeights: floatMapToJSON(item.ScoringWeights),
			TopMatches:     topMatches,
			IsActive:       true,
		})
	}
	return types
}

func normalizeRIASEC(raw string) string {
	code := strings.ToLower(strings.TrimSpace(raw))
	if full, ok := riasecAliases[code]; ok {
		return full
	}
	return code
}

func normalizeProfile(raw map[string]float64, riasec bool) datatypes.JSONMap {
	if len(raw) == 0 {
		return nil
	}
	profile := make(datatypes.JSONMap, len(raw))
	for key, value := range raw {
		normalized := strings.ToLower(strings.TrimSpace(key))
		if riasec {
			normalized = normalizeRIASEC(normalized)
		}
		profile[normalized] = value
	}
	return profile
}

func intMapToJSON(raw map[string]int) datatypes.JSONMap {
	if len(raw) == 0 {
		return nil
	}
	m := make(datatypes.JSONMap, len(raw))
	for key, value := range raw {
		m[strings.ToLower(strings.TrimSpace(key))] = value
	}
	return m
}

func floatMapToJSON(raw map[string]float64) datatypes.JSONMap {
	if len(raw) == 0 {
		return nil
	}
	m := make(datatypes.JSONMap, len(raw))
	for key, value := range raw {
		m[strings.ToLower(strings.TrimSpace(key))] = value
	}
	return m
}
