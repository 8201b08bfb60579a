// Package decision runs the automatic approval of a loan request.
package decision

import (
	"fmt"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/amortization"
	"credit-engine/internal/domain/errs"
)

const (
	ReasonApproved = "automatically approved"
	ReasonDeferred = "manual review required: income does not cover the monthly payment"
)

type Input struct {
	Principal       decimal.Decimal
	Term            int
	AnnualRate      decimal.Decimal // percent
	MonthlyIncome   decimal.Decimal
	ExistingCredits int
}

type Decision struct {
	Approved       bool            `json:"approved"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	IncomeRatio    decimal.Decimal `json:"income_ratio"`
	CreditScore    int             `json:"credit_score"`
	Reason         string          `json:"reason"`
	Policy         string          `json:"policy"`
}

type Engine struct {
	policy Policy
}

// NewEngine falls back to IncomeCoversPayment when p is nil.
func NewEngine(p Policy) *Engine {
	if p == nil {
		p = IncomeCoversPayment{}
	}
	return &Engine{policy: p}
}

func (e *Engine) Policy() Policy { return e.policy }

// Decide never rejects: a request the policy declines is deferred to manual review.
func (e *Engine) Decide(in Input) (Decision, error) {
	if in.MonthlyIncome.IsNegative() {
		return Decision{}, errs.Validation("decision", "monthly income must not be negative")
	}
	payment, err := amortization.MonthlyPayment(in.Principal, in.AnnualRate, in.Term)
	if err != nil {
		return Decision{}, err
	}
	if !payment.IsPositive() {
		return Decision{}, errs.Validation("decision", "monthly payment rounds to zero")
	}

	ratio := in.MonthlyIncome.Div(payment)
	a := Assessment{
		MonthlyIncome:  in.MonthlyIncome,
		MonthlyPayment: payment,
		IncomeRatio:    ratio,
		CreditScore:    CreditScore(in.MonthlyIncome, payment, in.ExistingCredits),
	}

	d := Decision{
		Approved:       e.policy.Approve(a),
		MonthlyPayment: payment,
		TotalPayment:   payment.Mul(decimal.NewFromInt(int64(in.Term))),
		IncomeRatio:    amortization.Round(ratio),
		CreditScore:    a.CreditScore,
		Policy:         e.policy.Name(),
	}
	if d.Approved {
		d.Reason = ReasonApproved
	} else {
		d.Reason = ReasonDeferred
	}
	return d, nil
}

// ReviewNote is the note left on an application deferred to manual review.
func ReviewNote(ratio decimal.Decimal) string {
	return fmt.Sprintf("manual review required, income ratio %s", ratio.StringFixed(amortization.Places))
}
