package mysql

import (
	"context"

	"gorm.io/gorm"

	borrowerDomain "credit-engine/internal/domain/borrower"
)

const borrowerEntity = "borrower"

type BorrowerRepository struct{ db *gorm.DB }

func NewBorrowerRepository(db *gorm.DB) *BorrowerRepository { return &BorrowerRepository{db: db} }

func (r *BorrowerRepository) Create(ctx context.Context, b *borrowerDomain.Borrower) error {
	return translate(borrowerEntity, borrowerDomain.ErrNotFound, r.db.WithContext(ctx).Create(b).Error)
}

func (r *BorrowerRepository) Save(ctx context.Context, b *borrowerDomain.Borrower) error {
	return translate(borrowerEntity, borrowerDomain.ErrNotFound, r.db.WithContext(ctx).Save(b).Error)
}

func (r *BorrowerRepository) GetByID(ctx context.Context, id uint64) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, translate(borrowerEntity, borrowerDomain.ErrNotFound, err)
	}
	return &out, nil
}

func (r *BorrowerRepository) GetByEmail(ctx context.Context, email string) (*borrowerDomain.Borrower, error) {
	var out borrowerDomain.Borrower
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&out).Error; err != nil {
		return nil, translate(borrowerEntity, borrowerDomain.ErrNotFound, err)
	}
	return &out, nil
}
