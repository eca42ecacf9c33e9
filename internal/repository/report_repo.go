package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/compass-edu/compass-api/internal/models"
)

// ReportRepository persists completed assessment reports. Reports are
// append-only; there is deliberately no update operation.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uint) (models.Report, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Report, error)
	NextVersion(ctx context.Context, userID uint) (int, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository instantiates a GORM-backed repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) GetByID(ctx context.Context, id uint) (models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).First(&report, id).Error
	return report, err
}

func (r *reportRepository) ListByUser(ctx context.Context, userID uint) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("version DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) NextVersion(ctx context.Context, userID uint) (int, error) {
	var current int
	err := r.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(version), 0)").
		Scan(&current).Error
	if err != nil {
		return 0, err
	}
	return current + 1, nil
}
