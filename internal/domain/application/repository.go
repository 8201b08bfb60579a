package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	Save(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id uint64) (*Application, error)
	// Row lock; only meaningful inside a transaction
	GetByIDForUpdate(ctx context.Context, id uint64) (*Application, error)
	GetByNumber(ctx context.Context, number string) (*Application, error)
	// Newest first
	ListByBorrower(ctx context.Context, borrowerID uint64) ([]*Application, error)
	// Oldest first so reviewers work the queue in order
	ListByStatus(ctx context.Context, status Status) ([]*Application, error)
	CountByProduct(ctx context.Context, productID uint64) (int64, error)
	CountByBorrowerAndStatus(ctx context.Context, borrowerID uint64, status Status) (int64, error)
}
