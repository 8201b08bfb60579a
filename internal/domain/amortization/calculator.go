// Package amortization turns a principal, an annual rate and a term into a fixed
// monthly payment and its installment breakdown.
//
// Every caller that needs a plan (preview, auto-approval, manual approval, schedule
// generation) goes through Compute so previews and persisted plans always agree.
package amortization

import (
	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/errs"
)

// Places is the number of currency minor-unit digits every stored amount is rounded to.
const Places int32 = 2

// MaxTermMonths bounds the plan length (100 years).
const MaxTermMonths = 1200

// carryPlaces is the precision of the balance carried between periods.
const carryPlaces int32 = 10

var (
	hundred = decimal.NewFromInt(100)
	months  = decimal.NewFromInt(12)
)

type Installment struct {
	Number           int             `json:"installment"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

type Schedule struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	Installments   []Installment   `json:"schedule"`
}

// MonthlyRate converts an annual percentage into the per-month fraction.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(hundred).Div(months)
}

// Round rounds half away from zero to currency minor units.
func Round(d decimal.Decimal) decimal.Decimal { return d.Round(Places) }

// MonthlyPayment returns the fixed, rounded payment charged every period.
func MonthlyPayment(principal, annualRatePercent decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if err := validate(principal, annualRatePercent, termMonths); err != nil {
		return decimal.Zero, err
	}
	return monthlyPayment(principal, annualRatePercent, termMonths), nil
}

func monthlyPayment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	rate := MonthlyRate(annualRatePercent)
	if rate.IsZero() {
		return Round(principal.Div(decimal.NewFromInt(int64(termMonths))))
	}
	// termMonths is bounded by validate, and a positive exponent never errors.
	growth, _ := decimal.NewFromInt(1).Add(rate).PowInt32(int32(termMonths))
	return Round(principal.Mul(rate).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1))))
}

// Compute builds the full amortization schedule.
//
// The interest of each period is charged on the balance carried from the previous
// period at carryPlaces precision; only the stored components are rounded to cents. The last installment
// reports a zero balance so sub-cent drift never outlives the plan.
func Compute(principal, annualRatePercent decimal.Decimal, termMonths int) (Schedule, error) {
	if err := validate(principal, annualRatePercent, termMonths); err != nil {
		return Schedule{}, err
	}

	payment := monthlyPayment(principal, annualRatePercent, termMonths)
	rate := MonthlyRate(annualRatePercent)
	remaining := principal

	rows := make([]Installment, 0, termMonths)
	for i := 1; i <= termMonths; i++ {
		interest := remaining.Mul(rate).Round(carryPlaces)
		principalPart := payment.Sub(interest)
		remaining = remaining.Sub(principalPart)

		balance := decimal.Max(decimal.Zero, Round(remaining))
		if i == termMonths {
			balance = decimal.Zero
		}
		rows = append(rows, Installment{
			Number:           i,
			Payment:          payment,
			Principal:        Round(principalPart),
			Interest:         Round(interest),
			RemainingBalance: balance,
		})
	}

	total := payment.Mul(decimal.NewFromInt(int64(termMonths)))
	return Schedule{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total.Sub(principal),
		Installments:   rows,
	}, nil
}

func validate(principal, annualRatePercent decimal.Decimal, termMonths int) error {
	switch {
	case !principal.IsPositive():
		return errs.Validation("amortization", "principal must be positive")
	case termMonths <= 0:
		return errs.Validation("amortization", "term must be a positive number of months")
	case termMonths > MaxTermMonths:
		return errs.Validation("amortization", "term must not exceed 1200 months")
	case annualRatePercent.IsNegative():
		return errs.Validation("amortization", "interest rate must not be negative")
	}
	return nil
}
