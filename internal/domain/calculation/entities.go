package calculation

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/amortization"
	"credit-engine/internal/domain/errs"
)

var ErrNotFound = errs.NotFound("credit calculation")

// Schedule is the amortization table stored as a JSON column.
type Schedule []amortization.Installment

func (s Schedule) Value() (driver.Value, error) {
	b, err := json.Marshal([]amortization.Installment(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Schedule) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]amortization.Installment)(s))
	case string:
		return json.Unmarshal([]byte(v), (*[]amortization.Installment)(s))
	default:
		return fmt.Errorf("calculation: cannot scan schedule from %T", src)
	}
}

// Table: credit_calculations
//
// Audit record of one preview; never updated after insert.
type Calculation struct {
	ID                uint64              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BorrowerID        *uint64             `gorm:"column:borrower_id;index:idx_credit_calculations_borrower" json:"borrower_id,omitempty"`
	ProductID         uint64              `gorm:"column:product_id;not null" json:"product_id"`
	RequestedAmount   decimal.Decimal     `gorm:"column:requested_amount;type:decimal(18,2);not null" json:"requested_amount"`
	RequestedTerm     int                 `gorm:"column:requested_term;not null" json:"requested_term"`
	InterestRate      decimal.Decimal     `gorm:"column:interest_rate;type:decimal(6,2);not null" json:"interest_rate"`
	MonthlyPayment    decimal.Decimal     `gorm:"column:monthly_payment;type:decimal(18,2);not null" json:"monthly_payment"`
	TotalPayment      decimal.Decimal     `gorm:"column:total_payment;type:decimal(18,2);not null" json:"total_payment"`
	TotalInterest     decimal.Decimal     `gorm:"column:total_interest;type:decimal(18,2);not null" json:"total_interest"`
	Schedule          Schedule            `gorm:"column:payment_schedule;type:json" json:"schedule"`
	MonthlyIncome     decimal.NullDecimal `gorm:"column:monthly_income;type:decimal(18,2)" json:"monthly_income"`
	DebtToIncomeRatio decimal.Decimal     `gorm:"column:debt_to_income_ratio;type:decimal(8,2);not null;default:0" json:"debt_to_income_ratio"`
	IsEligible        bool                `gorm:"column:is_eligible;not null" json:"eligible"`
	EligibilityNotes  string              `gorm:"column:eligibility_notes;type:text" json:"eligibility_notes"`
	IPAddress         string              `gorm:"column:ip_address;size:64" json:"ip_address,omitempty"`
	UserAgent         string              `gorm:"column:user_agent;type:text" json:"user_agent,omitempty"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Calculation) TableName() string { return "credit_calculations" }
