package uow

import (
	"context"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/borrower"
	"credit-engine/internal/domain/calculation"
	"credit-engine/internal/domain/payment"
	"credit-engine/internal/domain/product"
)

// Repos are bound to the same transaction.
type Repos struct {
	Products     product.Repository
	Borrowers    borrower.Repository
	Applications application.Repository
	Payments     payment.Repository
	Calculations calculation.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID uint64, fn func(r Repos, a *application.Application) error) error
	// lock the payment row first, then pass it in
	WithinPaymentTx(ctx context.Context, paymentID uint64, fn func(r Repos, p *payment.Installment) error) error
}
