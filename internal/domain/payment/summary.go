package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Summary struct {
	Total          int             `json:"total_payments"`
	Pending        int             `json:"pending_payments"`
	Paid           int             `json:"paid_payments"`
	Late           int             `json:"late_payments"`
	Defaulted      int             `json:"defaulted_payments"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalRemaining decimal.Decimal `json:"total_remaining"`
	NextDueDate    *time.Time      `json:"next_due_date"`
	OverdueCount   int             `json:"overdue_payments"`
	OverdueAmount  decimal.Decimal `json:"overdue_amount"`
}

// Summarize aggregates installments. Paid and late both count as settled; late
// fees are included in TotalPaid.
func Summarize(items []*Installment, now time.Time) Summary {
	s := Summary{
		Total:          len(items),
		TotalPaid:      decimal.Zero,
		TotalRemaining: decimal.Zero,
		OverdueAmount:  decimal.Zero,
	}
	for _, p := range items {
		switch p.Status {
		case StatusPending:
			s.Pending++
		case StatusPaid:
			s.Paid++
		case StatusLate:
			s.Late++
		case StatusDefaulted:
			s.Defaulted++
		}

		if p.Status.Settled() {
			s.TotalPaid = s.TotalPaid.Add(p.Amount).Add(p.LateFee)
		} else {
			s.TotalRemaining = s.TotalRemaining.Add(p.Amount)
		}

		if p.Status == StatusPending && (s.NextDueDate == nil || p.DueDate.Before(*s.NextDueDate)) {
			due := p.DueDate
			s.NextDueDate = &due
		}
		if p.Overdue(now) {
			s.OverdueCount++
			s.OverdueAmount = s.OverdueAmount.Add(p.Amount)
		}
	}
	return s
}
