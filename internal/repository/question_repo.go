package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/compass-edu/compass-api/internal/models"
)

// QuestionRepository defines read and seed operations over the question catalog.
type QuestionRepository interface {
	List(ctx context.Context) ([]models.Question, error)
	ListBySection(ctx context.Context, section string) ([]models.Question, error)
	GetByID(ctx context.Context, id uint) (models.Question, error)
	UpsertBatch(ctx context.Context, items []models.Question) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository instantiates a GORM-backed repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) List(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ListBySection(ctx context.Context, section string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("section = ?", section).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) GetByID(ctx context.Context, id uint) (models.Question, error) {
	var question models.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	return question, err
}

func (r *questionRepository) UpsertBatch(ctx context.Context, items []models.Question) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"section", "sub_domain", "trait", "riasec_code", "type", "text", "options", "correct_answer", "is_reversed", "difficulty", "time_limit_sec", "updated_at"}),
	})

	result := tx.Create(&items)
	return result.RowsAffected, result.Error
}
