package preview

import (
	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/amortization"
)

type Input struct {
	ProductID     uint64
	Amount        decimal.Decimal
	Term          int
	MonthlyIncome *decimal.Decimal
	BorrowerID    *uint64
	// caller metadata kept on the audit record
	IPAddress string
	UserAgent string
}

type Result struct {
	CalculationID     uint64                     `json:"calculation_id"`
	ProductID         uint64                     `json:"product_id"`
	InterestRate      decimal.Decimal            `json:"interest_rate"`
	MonthlyPayment    decimal.Decimal            `json:"monthly_payment"`
	TotalPayment      decimal.Decimal            `json:"total_payment"`
	TotalInterest     decimal.Decimal            `json:"total_interest"`
	Schedule          []amortization.Installment `json:"schedule"`
	Eligible          bool                       `json:"eligible"`
	Notes             []string                   `json:"notes"`
	Message           string                     `json:"message"`
	DebtToIncomeRatio decimal.Decimal            `json:"debt_to_income_ratio"`
}
