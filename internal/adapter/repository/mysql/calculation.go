package mysql

import (
	"context"

	"gorm.io/gorm"

	calcDomain "credit-engine/internal/domain/calculation"
)

const calculationEntity = "credit calculation"

type CalculationRepository struct{ db *gorm.DB }

func NewCalculationRepository(db *gorm.DB) *CalculationRepository {
	return &CalculationRepository{db: db}
}

func (r *CalculationRepository) Create(ctx context.Context, c *calcDomain.Calculation) error {
	return translate(calculationEntity, calcDomain.ErrNotFound, r.db.WithContext(ctx).Create(c).Error)
}

func (r *CalculationRepository) GetByID(ctx context.Context, id uint64) (*calcDomain.Calculation, error) {
	var out calcDomain.Calculation
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, translate(calculationEntity, calcDomain.ErrNotFound, err)
	}
	return &out, nil
}

func (r *CalculationRepository) ListByBorrower(ctx context.Context, borrowerID uint64) ([]*calcDomain.Calculation, error) {
	var out []*calcDomain.Calculation
	err := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, translate(calculationEntity, calcDomain.ErrNotFound, err)
}
