package payment

import (
	"context"
	"time"
)

type Repository interface {
	// All installments in one statement; the (application, installment) index
	// rejects a second schedule.
	CreateBatch(ctx context.Context, items []*Installment) error
	Save(ctx context.Context, p *Installment) error
	GetByID(ctx context.Context, id uint64) (*Installment, error)
	// Row lock; only meaningful inside a transaction
	GetByIDForUpdate(ctx context.Context, id uint64) (*Installment, error)
	GetByNumber(ctx context.Context, number string) (*Installment, error)
	// Ordered by installment number
	ListByApplication(ctx context.Context, applicationID uint64) ([]*Installment, error)
	ListByStatus(ctx context.Context, status Status) ([]*Installment, error)
	// Installments of every application the borrower holds, earliest due first;
	// nil status means all.
	ListByBorrower(ctx context.Context, borrowerID uint64, status *Status) ([]*Installment, error)
	// Pending installments due before the given instant
	ListPendingDueBefore(ctx context.Context, before time.Time) ([]*Installment, error)
	CountByApplication(ctx context.Context, applicationID uint64) (int64, error)
	// Borrower that owns the installment's application
	OwnerOf(ctx context.Context, paymentID uint64) (uint64, error)
}
