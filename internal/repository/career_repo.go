package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/compass-edu/compass-api/internal/models"
)

// CareerFilter narrows catalog listings.
type CareerFilter struct {
	Audience string
	Industry string
}

// CareerRepository defines read and seed operations over the career catalog.
type CareerRepository interface {
	List(ctx context.Context, filter CareerFilter) ([]models.Career, error)
	GetByID(ctx context.Context, id uint) (models.Career, error)
	UpsertBatch(ctx context.Context, items []models.Career) (int64, error)
}

type careerRepository struct {
	db *gorm.DB
}

// NewCareerRepository instantiates a GORM-backed repository.
func NewCareerRepository(db *gorm.DB) CareerRepository {
	return &careerRepository{db: db}
}

func (r *careerRepository) List(ctx context.Context, filter CareerFilter) ([]models.Career, error) {
	query := r.db.WithContext(ctx).Model(&models.Career{})

	if filter.Industry != "" {
		query = query.Where("LOWER(industry) = ?", strings.ToLower(strings.TrimSpace(filter.Industry)))
	}

	var careers []models.Career
	if err := query.Order("id ASC").Find(&careers).Error; err != nil {
		return nil, err
	}

	// Audience tags are stored encoded; filter after hydration so the match
	// is exact rather than a substring check.
	if filter.Audience == "" {
		return careers, nil
	}
	filtered := make([]models.Career, 0, len(careers))
	for _, career := range careers {
		if career.TargetsAudience(filter.Audience) {
			filtered = append(filtered, career)
		}
	}
	return filtered, nil
}

func (r *careerRepository) GetByID(ctx context.Context, id uint) (models.Career, error) {
	var career models.Career
	err := r.db.WithContext(ctx).First(&career, id).Error
	return career, err
}

func (r *careerRepository) UpsertBatch(ctx context.Context, items []models.Career) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "industry", "education_level", "work_style", "work_environment", "growth_outlook", "salary_range", "required_skills", "target_audiences", "riasec_profile", "personality_fit", "updated_at"}),
	})

	result := tx.Create(&items)
	return result.RowsAffected, result.Error
}
