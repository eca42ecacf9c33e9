package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/compass-edu/compass-api/internal/models"
)

// AssessmentTypeRepository resolves assessment configuration records.
type AssessmentTypeRepository interface {
	GetBySlug(ctx context.Context, slug string) (models.AssessmentType, error)
	ListActive(ctx context.Context) ([]models.AssessmentType, error)
	UpsertBatch(ctx context.Context, items []models.AssessmentType) (int64, error)
}

type assessmentTypeRepository struct {
	db *gorm.DB
}

// NewAssessmentTypeRepository instantiates a GORM-backed repository.
func NewAssessmentTypeRepository(db *gorm.DB) AssessmentTypeRepository {
	return &assessmentTypeRepository{db: db}
}

func (r *assessmentTypeRepository) GetBySlug(ctx context.Context, slug string) (models.AssessmentType, error) {
	var assessmentType models.AssessmentType
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&assessmentType).Error
	return assessmentType, err
}

func (r *assessmentTypeRepository) ListActive(ctx context.Context) ([]models.AssessmentType, error) {
	var types []models.AssessmentType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("slug ASC").
		Find(&types).Error
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (r *assessmentTypeRepository) UpsertBatch(ctx context.Context, items []models.AssessmentType) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "question_counts", "time_limits", "scoring_weights", "top_matches", "is_active", "updated_at"}),
	})

	result := tx.Create(&items)
	return result.RowsAffected, result.Error
}
