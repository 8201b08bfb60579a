package uowmock

import (
	"context"
	"errors"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/payment"
	"credit-engine/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinApplicationTxFn func(ctx context.Context, id uint64, fn func(r uow.Repos, a *application.Application) error) error
	WithinPaymentTxFn     func(ctx context.Context, id uint64, fn func(r uow.Repos, p *payment.Installment) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough runs every callback directly against repos, loading locked rows
// through their GetByIDForUpdate mocks. No rollback is simulated.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinApplicationTxFn: func(ctx context.Context, id uint64, fn func(uow.Repos, *application.Application) error) error {
			a, err := repos.Applications.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, a)
		},
		WithinPaymentTxFn: func(ctx context.Context, id uint64, fn func(uow.Repos, *payment.Installment) error) error {
			p, err := repos.Payments.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, p)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinApplicationTx(ctx context.Context, id uint64, fn func(r uow.Repos, a *application.Application) error) error {
	if m.WithinApplicationTxFn != nil {
		return m.WithinApplicationTxFn(ctx, id, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinPaymentTx(ctx context.Context, id uint64, fn func(r uow.Repos, p *payment.Installment) error) error {
	if m.WithinPaymentTxFn != nil {
		return m.WithinPaymentTxFn(ctx, id, fn)
	}
	return errUnimplemented
}
