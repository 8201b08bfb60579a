package decision

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Policy names.
const (
	PolicyIncome = "income"
	PolicyScore  = "score"
)

// Assessment is what a policy gets to look at.
type Assessment struct {
	MonthlyIncome  decimal.Decimal
	MonthlyPayment decimal.Decimal
	IncomeRatio    decimal.Decimal
	CreditScore    int
}

// Policy decides whether an assessed request is approved automatically.
// Anything a policy declines goes to manual review, never straight to rejection.
type Policy interface {
	Name() string
	Approve(a Assessment) bool
}

// IncomeCoversPayment approves when the monthly income is strictly greater than
// the monthly payment.
type IncomeCoversPayment struct{}

func (IncomeCoversPayment) Name() string { return PolicyIncome }

func (IncomeCoversPayment) Approve(a Assessment) bool {
	return a.MonthlyIncome.GreaterThan(a.MonthlyPayment)
}

// MinimumScore approves when the informational credit score reaches Threshold.
type MinimumScore struct {
	Threshold int
}

func (MinimumScore) Name() string { return PolicyScore }

func (p MinimumScore) Approve(a Assessment) bool { return a.CreditScore >= p.Threshold }

// PolicyByName resolves a configured policy name.
func PolicyByName(name string, minScore int) (Policy, error) {
	switch name {
	case "", PolicyIncome:
		return IncomeCoversPayment{}, nil
	case PolicyScore:
		if minScore < 0 || minScore > MaxScore {
			return nil, fmt.Errorf("minimum score %d out of range 0..%d", minScore, MaxScore)
		}
		return MinimumScore{Threshold: minScore}, nil
	default:
		return nil, fmt.Errorf("unknown approval policy %q", name)
	}
}
