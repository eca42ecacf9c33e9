package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/compass-edu/compass-api/internal/models"
)

// AnswerRepository persists user answers. A (user, question) pair maps to at
// most one row; Upsert overwrites the previous submission in place.
type AnswerRepository interface {
	Upsert(ctx context.Context, answer *models.Answer) error
	ListByUser(ctx context.Context, userID uint) ([]models.Answer, error)
	CountByUserAndSection(ctx context.Context, userID uint, section string) (int64, error)
	DeleteByUser(ctx context.Context, userID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository instantiates a GORM-backed repository.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Upsert(ctx context.Context, answer *models.Answer) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "time_spent_sec", "score", "updated_at"}),
	}).Create(answer).Error
}

func (r *answerRepository) ListByUser(ctx context.Context, userID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("question_id ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) CountByUserAndSection(ctx context.Context, userID uint, section string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Answer{}).
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.user_id = ? AND questions.section = ?", userID, section).
		Count(&count).Error
	return count, err
}

func (r *answerRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Answer{})
	return result.RowsAffected, result.Error
}
