package applicationmock

import (
	"context"
	"errors"

	domain "credit-engine/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("applicationmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a no-op, reads to errUnimplemented.
type Repo struct {
	CreateFn                   func(ctx context.Context, a *domain.Application) error
	SaveFn                     func(ctx context.Context, a *domain.Application) error
	GetByIDFn                  func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByIDForUpdateFn         func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByNumberFn              func(ctx context.Context, number string) (*domain.Application, error)
	ListByBorrowerFn           func(ctx context.Context, borrowerID uint64) ([]*domain.Application, error)
	ListByStatusFn             func(ctx context.Context, status domain.Status) ([]*domain.Application, error)
	CountByProductFn           func(ctx context.Context, productID uint64) (int64, error)
	CountByBorrowerAndStatusFn func(ctx context.Context, borrowerID uint64, status domain.Status) (int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByNumber(ctx context.Context, number string) (*domain.Application, error) {
	if m.GetByNumberFn != nil {
		return m.GetByNumberFn(ctx, number)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBorrower(ctx context.Context, borrowerID uint64) ([]*domain.Application, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Application, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountByProduct(ctx context.Context, productID uint64) (int64, error) {
	if m.CountByProductFn != nil {
		return m.CountByProductFn(ctx, productID)
	}
	return 0, errUnimplemented
}

func (m *Repo) CountByBorrowerAndStatus(ctx context.Context, borrowerID uint64, status domain.Status) (int64, error) {
	if m.CountByBorrowerAndStatusFn != nil {
		return m.CountByBorrowerAndStatusFn(ctx, borrowerID, status)
	}
	return 0, errUnimplemented
}
