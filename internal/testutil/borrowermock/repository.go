package borrowermock

import (
	"context"
	"errors"

	domain "credit-engine/internal/domain/borrower"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("borrowermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn     func(ctx context.Context, b *domain.Borrower) error
	SaveFn       func(ctx context.Context, b *domain.Borrower) error
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.Borrower, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Borrower, error)
}

func (m *Repo) Create(ctx context.Context, b *domain.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Borrower) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Borrower, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Borrower, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}
