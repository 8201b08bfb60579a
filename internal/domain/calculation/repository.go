package calculation

import "context"

type Repository interface {
	Create(ctx context.Context, c *Calculation) error
	GetByID(ctx context.Context, id uint64) (*Calculation, error)
	// Newest first
	ListByBorrower(ctx context.Context, borrowerID uint64) ([]*Calculation, error)
}
