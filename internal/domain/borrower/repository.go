package borrower

import "context"

type Repository interface {
	// Duplicate email surfaces as a conflict
	Create(ctx context.Context, b *Borrower) error
	Save(ctx context.Context, b *Borrower) error
	GetByID(ctx context.Context, id uint64) (*Borrower, error)
	GetByEmail(ctx context.Context, email string) (*Borrower, error)
}
