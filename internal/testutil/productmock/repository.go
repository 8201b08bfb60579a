package productmock

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domain "credit-engine/internal/domain/product"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("productmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a no-op, reads to errUnimplemented.
type Repo struct {
	CreateFn       func(ctx context.Context, p *domain.Product) error
	SaveFn         func(ctx context.Context, p *domain.Product) error
	DeleteFn       func(ctx context.Context, id uint64) error
	GetByIDFn      func(ctx context.Context, id uint64) (*domain.Product, error)
	ListActiveFn   func(ctx context.Context) ([]*domain.Product, error)
	ListByAmountFn func(ctx context.Context, amount decimal.Decimal) ([]*domain.Product, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Product) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListActive(ctx context.Context) ([]*domain.Product, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByAmount(ctx context.Context, amount decimal.Decimal) ([]*domain.Product, error) {
	if m.ListByAmountFn != nil {
		return m.ListByAmountFn(ctx, amount)
	}
	return nil, errUnimplemented
}
