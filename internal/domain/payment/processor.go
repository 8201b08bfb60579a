package payment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/amortization"
)

// DailyLateRate is the late fee charged per day, as a fraction of the amount.
var DailyLateRate = decimal.RequireFromString("0.0005")

// DaysLate counts whole days elapsed since due; never negative.
func DaysLate(due, now time.Time) int {
	if !now.After(due) {
		return 0
	}
	return int(now.Sub(due) / (24 * time.Hour))
}

// LateFee is amount · DailyLateRate · daysLate, rounded to cents.
func LateFee(amount decimal.Decimal, daysLate int) decimal.Decimal {
	if daysLate <= 0 {
		return decimal.Zero
	}
	return amortization.Round(amount.Mul(DailyLateRate).Mul(decimal.NewFromInt(int64(daysLate))))
}

// Pay settles a pending installment. Paying at least one full day after the due
// date marks it late and charges the late fee.
func (p *Installment) Pay(r Receipt, now time.Time) error {
	switch p.Status {
	case StatusPaid, StatusLate:
		return ErrAlreadyPaid
	case StatusDefaulted:
		return ErrDefaulted
	}
	if !r.Method.Valid() {
		return ErrMethod
	}

	days := DaysLate(p.DueDate, now)
	if days > 0 {
		p.Status = StatusLate
		p.LateFee = LateFee(p.Amount, days)
	} else {
		p.Status = StatusPaid
		p.LateFee = decimal.Zero
	}

	method := r.Method
	paidAt := now.UTC()
	p.Method = &method
	p.PaidAt = &paidAt
	if tx := strings.TrimSpace(r.TransactionID); tx != "" {
		p.TransactionID = &tx
	}
	if notes := strings.TrimSpace(r.Notes); notes != "" {
		p.Notes = &notes
	}
	if r.Details != nil {
		p.Details = r.Details
	}
	return nil
}

// MarkDefaulted is an administrative transition; defaulted is terminal.
func (p *Installment) MarkDefaulted() error {
	if p.Status != StatusPending {
		return ErrNotPending
	}
	p.Status = StatusDefaulted
	return nil
}

// Overdue reports a pending installment whose due date has passed.
func (p *Installment) Overdue(now time.Time) bool {
	return p.Status == StatusPending && p.DueDate.Before(now)
}

// Outstanding is what the borrower owes for the installment today.
func (p *Installment) Outstanding(now time.Time) decimal.Decimal {
	if p.Status.Settled() {
		return decimal.Zero
	}
	return p.Amount.Add(LateFee(p.Amount, DaysLate(p.DueDate, now)))
}
