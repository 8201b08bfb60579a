package payment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-engine/internal/domain/errs"
	"credit-engine/internal/domain/metadata"
)

var due = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

func pendingInstallment() *Installment {
	return &Installment{
		ID:                1,
		InstallmentNumber: 1,
		Amount:            decimal.NewFromInt(850),
		LateFee:           decimal.Zero,
		Status:            StatusPending,
		DueDate:           due,
	}
}

func TestPay_OnTime(t *testing.T) {
	p := pendingInstallment()
	now := due.Add(-48 * time.Hour)
	err := p.Pay(Receipt{Method: MethodBankTransfer, TransactionID: "TX-1", Notes: "first", Details: metadata.Map{"bank": "ACME"}}, now)
	require.NoError(t, err)

	assert.Equal(t, StatusPaid, p.Status)
	assert.True(t, p.LateFee.IsZero())
	assert.Equal(t, MethodBankTransfer, *p.Method)
	assert.Equal(t, "TX-1", *p.TransactionID)
	assert.Equal(t, "first", *p.Notes)
	assert.Equal(t, "ACME", p.Details["bank"])
	assert.Equal(t, now, *p.PaidAt)
}

func TestPay_SameDayAfterDueIsNotLate(t *testing.T) {
	p := pendingInstallment()
	require.NoError(t, p.Pay(Receipt{Method: MethodCash}, due.Add(23*time.Hour)))
	assert.Equal(t, StatusPaid, p.Status)
	assert.Nil(t, p.TransactionID)
	assert.Nil(t, p.Notes)
}

func TestPay_Late(t *testing.T) {
	p := pendingInstallment()
	require.NoError(t, p.Pay(Receipt{Method: MethodCreditCard}, due.Add(10*24*time.Hour+3*time.Hour)))
	assert.Equal(t, StatusLate, p.Status)
	assert.Equal(t, "4.25", p.LateFee.StringFixed(2))
}

func TestPay_AlreadySettled(t *testing.T) {
	for _, st := range []Status{StatusPaid, StatusLate} {
		p := pendingInstallment()
		p.Status = st
		err := p.Pay(Receipt{Method: MethodCash}, due)
		assert.ErrorIs(t, err, ErrAlreadyPaid)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	}

	p := pendingInstallment()
	p.Status = StatusDefaulted
	assert.ErrorIs(t, p.Pay(Receipt{Method: MethodCash}, due), ErrDefaulted)
}

func TestPay_InvalidMethod(t *testing.T) {
	for _, m := range []Method{"", "bitcoin"} {
		p := pendingInstallment()
		err := p.Pay(Receipt{Method: m}, due)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, StatusPending, p.Status)
	}
}

func TestMarkDefaulted(t *testing.T) {
	p := pendingInstallment()
	require.NoError(t, p.MarkDefaulted())
	assert.Equal(t, StatusDefaulted, p.Status)
	assert.ErrorIs(t, p.MarkDefaulted(), ErrNotPending)

	paid := pendingInstallment()
	paid.Status = StatusPaid
	assert.ErrorIs(t, paid.MarkDefaulted(), errs.ErrInvalidState)
}

func TestLateFee(t *testing.T) {
	amount := decimal.NewFromInt(850)
	assert.True(t, LateFee(amount, 0).IsZero())
	assert.True(t, LateFee(amount, -3).IsZero())
	assert.Equal(t, "4.25", LateFee(amount, 10).StringFixed(2))

	prev := decimal.Zero
	for days := 1; days <= 120; days++ {
		fee := LateFee(amount, days)
		assert.True(t, fee.GreaterThanOrEqual(prev), "fee must not decrease at day %d", days)
		prev = fee
	}
}

func TestDaysLate(t *testing.T) {
	assert.Equal(t, 0, DaysLate(due, due))
	assert.Equal(t, 0, DaysLate(due, due.Add(-time.Hour)))
	assert.Equal(t, 0, DaysLate(due, due.Add(23*time.Hour)))
	assert.Equal(t, 1, DaysLate(due, due.Add(24*time.Hour)))
	assert.Equal(t, 10, DaysLate(due, due.Add(10*24*time.Hour+time.Minute)))
}

func TestOutstanding(t *testing.T) {
	p := pendingInstallment()
	assert.Equal(t, "854.25", p.Outstanding(due.Add(10*24*time.Hour)).StringFixed(2))
	p.Status = StatusPaid
	assert.True(t, p.Outstanding(due).IsZero())
}
