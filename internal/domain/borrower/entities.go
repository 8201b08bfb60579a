package borrower

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/errs"
)

var ErrNotFound = errs.NotFound("borrower")

// Table: borrowers
type Borrower struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email         string          `gorm:"column:email;size:191;not null;uniqueIndex:ux_borrowers_email" json:"email"`
	FirstName     string          `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName      string          `gorm:"column:last_name;size:100;not null" json:"last_name"`
	Phone         string          `gorm:"column:phone;size:32" json:"phone,omitempty"`
	MonthlyIncome decimal.Decimal `gorm:"column:monthly_income;type:decimal(18,2);not null;default:0" json:"monthly_income"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Borrower) TableName() string { return "borrowers" }

func (b *Borrower) FullName() string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

func (b *Borrower) Validate() error {
	switch {
	case strings.TrimSpace(b.Email) == "":
		return errs.Validation("borrower", "email is required")
	case b.MonthlyIncome.IsNegative():
		return errs.Validation("borrower", "monthly income must not be negative")
	}
	return nil
}
