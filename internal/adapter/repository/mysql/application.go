package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	appDomain "credit-engine/internal/domain/application"
)

const applicationEntity = "loan application"

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return translate(applicationEntity, appDomain.ErrNotFound, r.db.WithContext(ctx).Create(a).Error)
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return translate(applicationEntity, appDomain.ErrNotFound, r.db.WithContext(ctx).Save(a).Error)
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*appDomain.Application, error) {
	var out appDomain.Application
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, translate(applicationEntity, appDomain.ErrNotFound, err)
	}
	return &out, nil
}

// GetByIDForUpdate issues SELECT ... FOR UPDATE; dialects without row locks
// (sqlite) drop the clause.
func (r *ApplicationRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*appDomain.Application, error) {
	var out appDomain.Application
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id).Error
	if err != nil {
		return nil, translate(applicationEntity, appDomain.ErrNotFound, err)
	}
	return &out, nil
}

func (r *ApplicationRepository) GetByNumber(ctx context.Context, number string) (*appDomain.Application, error) {
	var out appDomain.Application
	if err := r.db.WithContext(ctx).Where("application_number = ?", number).First(&out).Error; err != nil {
		return nil, translate(applicationEntity, appDomain.ErrNotFound, err)
	}
	return &out, nil
}

func (r *ApplicationRepository) ListByBorrower(ctx context.Context, borrowerID uint64) ([]*appDomain.Application, error) {
	var out []*appDomain.Application
	err := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, translate(applicationEntity, appDomain.ErrNotFound, err)
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, status appDomain.Status) ([]*appDomain.Application, error) {
	var out []*appDomain.Application
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("is_urgent DESC, created_at ASC, id ASC").
		Find(&out).Error
	return out, translate(applicationEntity, appDomain.ErrNotFound, err)
}

func (r *ApplicationRepository) CountByProduct(ctx context.Context, productID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("product_id = ?", productID).
		Count(&n).Error
	return n, translate(applicationEntity, appDomain.ErrNotFound, err)
}

func (r *ApplicationRepository) CountByBorrowerAndStatus(ctx context.Context, borrowerID uint64, status appDomain.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("borrower_id = ? AND status = ?", borrowerID, status).
		Count(&n).Error
	return n, translate(applicationEntity, appDomain.ErrNotFound, err)
}
