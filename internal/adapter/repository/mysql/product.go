package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	productDomain "credit-engine/internal/domain/product"
)

const productEntity = "loan product"

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) Create(ctx context.Context, p *productDomain.Product) error {
	return translate(productEntity, productDomain.ErrNotFound, r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProductRepository) Save(ctx context.Context, p *productDomain.Product) error {
	return translate(productEntity, productDomain.ErrNotFound, r.db.WithContext(ctx).Save(p).Error)
}

func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&productDomain.Product{}, id)
	if res.Error != nil {
		return translate(productEntity, productDomain.ErrNotFound, res.Error)
	}
	if res.RowsAffected == 0 {
		return productDomain.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*productDomain.Product, error) {
	var out productDomain.Product
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, translate(productEntity, productDomain.ErrNotFound, err)
	}
	return &out, nil
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]*productDomain.Product, error) {
	var out []*productDomain.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC, id ASC").
		Find(&out).Error
	return out, translate(productEntity, productDomain.ErrNotFound, err)
}

func (r *ProductRepository) ListByAmount(ctx context.Context, amount decimal.Decimal) ([]*productDomain.Product, error) {
	var out []*productDomain.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND min_amount <= ? AND max_amount >= ?", true, amount, amount).
		Order("interest_rate ASC, id ASC").
		Find(&out).Error
	return out, translate(productEntity, productDomain.ErrNotFound, err)
}
