package mysql

import (
	"context"

	"gorm.io/gorm"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/payment"
	"credit-engine/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Products:     &ProductRepository{db: tx},
		Borrowers:    &BorrowerRepository{db: tx},
		Applications: &ApplicationRepository{db: tx},
		Payments:     &PaymentRepository{db: tx},
		Calculations: &CalculationRepository{db: tx},
	}
}

// Repos returns repositories bound to the pool, outside any transaction.
func (u *GormUoW) Repos() uow.Repos { return reposFor(u.db) }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID uint64, fn func(r uow.Repos, a *application.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the application row up-front to prevent racing transitions
		a, err := r.Applications.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, a)
	})
}

func (u *GormUoW) WithinPaymentTx(ctx context.Context, paymentID uint64, fn func(r uow.Repos, p *payment.Installment) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		p, err := r.Payments.GetByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
