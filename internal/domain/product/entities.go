package product

import (
	"time"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/errs"
	"credit-engine/internal/domain/metadata"
)

var ErrNotFound = errs.NotFound("loan product")

// Table: loan_products
type Product struct {
	ID             uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name           string          `gorm:"column:name;size:100;not null" json:"name"`
	Description    string          `gorm:"column:description;type:text" json:"description"`
	InterestRate   decimal.Decimal `gorm:"column:interest_rate;type:decimal(6,2);not null" json:"interest_rate"` // annual, percent
	MinAmount      decimal.Decimal `gorm:"column:min_amount;type:decimal(18,2);not null" json:"min_amount"`
	MaxAmount      decimal.Decimal `gorm:"column:max_amount;type:decimal(18,2);not null" json:"max_amount"`
	MinTerm        int             `gorm:"column:min_term;not null" json:"min_term"`
	MaxTerm        int             `gorm:"column:max_term;not null" json:"max_term"`
	CommissionRate decimal.Decimal `gorm:"column:commission_rate;type:decimal(6,2);not null;default:0" json:"commission_rate"`
	IsActive       bool            `gorm:"column:is_active;not null" json:"is_active"`
	Requirements   metadata.Map    `gorm:"column:requirements;type:json" json:"requirements,omitempty"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string { return "loan_products" }

// Validate checks the catalog invariants.
func (p *Product) Validate() error {
	switch {
	case p.Name == "":
		return errs.Validation("loan product", "name is required")
	case p.InterestRate.IsNegative():
		return errs.Validation("loan product", "interest rate must not be negative")
	case p.CommissionRate.IsNegative():
		return errs.Validation("loan product", "commission rate must not be negative")
	case !p.MinAmount.IsPositive():
		return errs.Validation("loan product", "minimum amount must be positive")
	case p.MinAmount.GreaterThan(p.MaxAmount):
		return errs.Validation("loan product", "minimum amount exceeds maximum amount")
	case p.MinTerm <= 0:
		return errs.Validation("loan product", "minimum term must be positive")
	case p.MinTerm > p.MaxTerm:
		return errs.Validation("loan product", "minimum term exceeds maximum term")
	}
	return nil
}

// Covers reports whether amount falls within the product's principal range.
func (p *Product) Covers(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(p.MinAmount) && amount.LessThanOrEqual(p.MaxAmount)
}
