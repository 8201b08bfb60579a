package product

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, p *Product) error
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (*Product, error)
	// Active products ordered by name
	ListActive(ctx context.Context) ([]*Product, error)
	// Active products whose range covers amount, cheapest rate first
	ListByAmount(ctx context.Context, amount decimal.Decimal) ([]*Product, error)
}
