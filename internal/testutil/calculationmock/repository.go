package calculationmock

import (
	"context"
	"errors"

	domain "credit-engine/internal/domain/calculation"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("calculationmock: method not implemented")

type Repo struct {
	CreateFn         func(ctx context.Context, c *domain.Calculation) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Calculation, error)
	ListByBorrowerFn func(ctx context.Context, borrowerID uint64) ([]*domain.Calculation, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Calculation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Calculation, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBorrower(ctx context.Context, borrowerID uint64) ([]*domain.Calculation, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}
