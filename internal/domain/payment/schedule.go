package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/amortization"
	"credit-engine/internal/domain/application"
	"credit-engine/pkg/id"
)

// GenerateSchedule builds one pending installment per approved month. Nothing is
// persisted here; the caller stores the whole batch in one transaction.
func GenerateSchedule(app *application.Application, now time.Time) ([]*Installment, error) {
	if app == nil {
		return nil, application.ErrNotFound
	}
	terms, err := app.ApprovedTerms()
	if err != nil {
		return nil, err
	}
	plan, err := amortization.Compute(terms.Amount, terms.AnnualRate, terms.TermMonths)
	if err != nil {
		return nil, err
	}

	first := FirstDueDate(now)
	out := make([]*Installment, 0, len(plan.Installments))
	for _, row := range plan.Installments {
		out = append(out, &Installment{
			Number:            id.NewNumber(NumberPrefix),
			ApplicationID:     app.ID,
			InstallmentNumber: row.Number,
			Amount:            row.Payment,
			PrincipalAmount:   row.Principal,
			InterestAmount:    row.Interest,
			RemainingBalance:  row.RemainingBalance,
			LateFee:           decimal.Zero,
			Status:            StatusPending,
			DueDate:           first.AddDate(0, row.Number-1, 0),
		})
	}
	return out, nil
}

// FirstDueDate is one calendar month after now, keeping the time of day, so
// an installment only turns late a full day after that instant.
func FirstDueDate(now time.Time) time.Time {
	return now.UTC().AddDate(0, 1, 0)
}
