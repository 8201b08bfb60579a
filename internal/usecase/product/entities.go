package product

import (
	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/metadata"
)

// ProductInput carries every catalog field a client may set.
type ProductInput struct {
	Name           string
	Description    string
	InterestRate   decimal.Decimal
	MinAmount      decimal.Decimal
	MaxAmount      decimal.Decimal
	MinTerm        int
	MaxTerm        int
	CommissionRate decimal.Decimal
	IsActive       bool
	Requirements   metadata.Map
}
