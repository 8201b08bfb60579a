// Package eligibility checks a requested loan against a product's bounds and the
// borrower's debt-to-income ratio.
package eligibility

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/amortization"
	"credit-engine/internal/domain/errs"
	"credit-engine/internal/domain/product"
)

// MaxDebtToIncome is the highest accepted payment/income ratio, in percent.
var MaxDebtToIncome = decimal.NewFromInt(40)

const eligibleMessage = "the loan request looks eligible"

type Request struct {
	Amount        decimal.Decimal
	Term          int
	MonthlyIncome *decimal.Decimal // nil skips the income check
}

type Result struct {
	Eligible          bool                  `json:"eligible"`
	DebtToIncomeRatio decimal.Decimal       `json:"debt_to_income_ratio"`
	Notes             []string              `json:"notes"`
	Message           string                `json:"message"`
	Schedule          amortization.Schedule `json:"-"`
}

// Evaluate is pure: the same request and product always give the same result.
// Amounts or terms outside the product bounds make the request ineligible rather
// than invalid; only non-positive inputs are rejected.
func Evaluate(req Request, p *product.Product) (Result, error) {
	if p == nil {
		return Result{}, errs.Validation("eligibility", "product is required")
	}
	if req.MonthlyIncome != nil && !req.MonthlyIncome.IsPositive() {
		return Result{}, errs.Validation("eligibility", "monthly income must be positive")
	}

	schedule, err := amortization.Compute(req.Amount, p.InterestRate, req.Term)
	if err != nil {
		return Result{}, err
	}

	res := Result{DebtToIncomeRatio: decimal.Zero, Notes: []string{}, Schedule: schedule}
	if req.Amount.LessThan(p.MinAmount) {
		res.Notes = append(res.Notes, fmt.Sprintf("minimum loan amount: %s", p.MinAmount.StringFixed(amortization.Places)))
	}
	if req.Amount.GreaterThan(p.MaxAmount) {
		res.Notes = append(res.Notes, fmt.Sprintf("maximum loan amount: %s", p.MaxAmount.StringFixed(amortization.Places)))
	}
	if req.Term < p.MinTerm {
		res.Notes = append(res.Notes, fmt.Sprintf("minimum term: %d months", p.MinTerm))
	}
	if req.Term > p.MaxTerm {
		res.Notes = append(res.Notes, fmt.Sprintf("maximum term: %d months", p.MaxTerm))
	}
	if req.MonthlyIncome != nil {
		dti := DebtToIncome(schedule.MonthlyPayment, *req.MonthlyIncome)
		res.DebtToIncomeRatio = amortization.Round(dti)
		if dti.GreaterThan(MaxDebtToIncome) {
			res.Notes = append(res.Notes, "debt-to-income ratio is too high (above 40%)")
		}
	}

	res.Eligible = len(res.Notes) == 0
	if res.Eligible {
		res.Message = eligibleMessage
	} else {
		res.Message = strings.Join(res.Notes, ", ")
	}
	return res, nil
}

// DebtToIncome returns payment / income as a percentage. Income must be positive.
func DebtToIncome(payment, income decimal.Decimal) decimal.Decimal {
	return payment.Div(income).Mul(decimal.NewFromInt(100))
}
