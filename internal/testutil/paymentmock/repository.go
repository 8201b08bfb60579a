package paymentmock

import (
	"context"
	"errors"
	"time"

	domain "credit-engine/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("paymentmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to a no-op, reads to errUnimplemented.
type Repo struct {
	CreateBatchFn          func(ctx context.Context, items []*domain.Installment) error
	SaveFn                 func(ctx context.Context, p *domain.Installment) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Installment, error)
	GetByIDForUpdateFn     func(ctx context.Context, id uint64) (*domain.Installment, error)
	GetByNumberFn          func(ctx context.Context, number string) (*domain.Installment, error)
	ListByApplicationFn    func(ctx context.Context, applicationID uint64) ([]*domain.Installment, error)
	ListByStatusFn         func(ctx context.Context, status domain.Status) ([]*domain.Installment, error)
	ListByBorrowerFn       func(ctx context.Context, borrowerID uint64, status *domain.Status) ([]*domain.Installment, error)
	ListPendingDueBeforeFn func(ctx context.Context, before time.Time) ([]*domain.Installment, error)
	CountByApplicationFn   func(ctx context.Context, applicationID uint64) (int64, error)
	OwnerOfFn              func(ctx context.Context, paymentID uint64) (uint64, error)
}

func (m *Repo) CreateBatch(ctx context.Context, items []*domain.Installment) error {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, items)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Installment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Installment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Installment, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByNumber(ctx context.Context, number string) (*domain.Installment, error) {
	if m.GetByNumberFn != nil {
		return m.GetByNumberFn(ctx, number)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID uint64) ([]*domain.Installment, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]*domain.Installment, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByBorrower(ctx context.Context, borrowerID uint64, status *domain.Status) ([]*domain.Installment, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID, status)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListPendingDueBefore(ctx context.Context, before time.Time) ([]*domain.Installment, error) {
	if m.ListPendingDueBeforeFn != nil {
		return m.ListPendingDueBeforeFn(ctx, before)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountByApplication(ctx context.Context, applicationID uint64) (int64, error) {
	if m.CountByApplicationFn != nil {
		return m.CountByApplicationFn(ctx, applicationID)
	}
	return 0, errUnimplemented
}

func (m *Repo) OwnerOf(ctx context.Context, paymentID uint64) (uint64, error) {
	if m.OwnerOfFn != nil {
		return m.OwnerOfFn(ctx, paymentID)
	}
	return 0, errUnimplemented
}
