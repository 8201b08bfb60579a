package payment

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/errs"
)

var generatedAt = time.Date(2026, 1, 10, 15, 4, 5, 0, time.UTC)

func approvedApp(t *testing.T, amount, rate string, term int, payment string) *application.Application {
	t.Helper()
	a := &application.Application{ID: 11, BorrowerID: 5, Status: application.StatusPending}
	p := decimal.RequireFromString(payment)
	require.NoError(t, a.Approve(application.Terms{
		Amount:         decimal.RequireFromString(amount),
		TermMonths:     term,
		AnnualRate:     decimal.RequireFromString(rate),
		MonthlyPayment: p,
		TotalPayment:   p.Mul(decimal.NewFromInt(int64(term))),
	}, generatedAt))
	return a
}

func TestGenerateSchedule_Approved(t *testing.T) {
	app := approvedApp(t, "10200", "0", 12, "850")

	items, err := GenerateSchedule(app, generatedAt)
	require.NoError(t, err)
	require.Len(t, items, 12)

	numberRe := regexp.MustCompile(`^PMT-[A-F0-9]{32}$`)
	seen := map[string]bool{}
	for i, p := range items {
		assert.Equal(t, i+1, p.InstallmentNumber)
		assert.Equal(t, app.ID, p.ApplicationID)
		assert.Equal(t, StatusPending, p.Status)
		assert.True(t, p.LateFee.IsZero())
		assert.Equal(t, "850.00", p.Amount.StringFixed(2))
		assert.Regexp(t, numberRe, p.Number)
		assert.False(t, seen[p.Number], "duplicate number %s", p.Number)
		seen[p.Number] = true

		want := time.Date(2026, time.Month(2+i), 10, 15, 4, 5, 0, time.UTC)
		assert.True(t, want.Equal(p.DueDate), "installment %d due %s, want %s", i+1, p.DueDate, want)
	}
	assert.True(t, items[11].RemainingBalance.IsZero())
}

func TestGenerateSchedule_MatchesPreviewFigures(t *testing.T) {
	app := approvedApp(t, "10000", "30", 12, "974.87")

	items, err := GenerateSchedule(app, generatedAt)
	require.NoError(t, err)
	require.Len(t, items, 12)

	first := items[0]
	assert.Equal(t, "974.87", first.Amount.StringFixed(2))
	assert.Equal(t, "250.00", first.InterestAmount.StringFixed(2))
	assert.Equal(t, "724.87", first.PrincipalAmount.StringFixed(2))
	assert.Equal(t, "9275.13", first.RemainingBalance.StringFixed(2))
}

func TestGenerateSchedule_NotApproved(t *testing.T) {
	for _, st := range []application.Status{
		application.StatusPending, application.StatusUnderReview,
		application.StatusRejected, application.StatusCancelled,
	} {
		app := &application.Application{ID: 1, Status: st}
		_, err := GenerateSchedule(app, generatedAt)
		assert.ErrorIs(t, err, application.ErrNotApproved, "status %s", st)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	}
}

func TestFirstDueDate(t *testing.T) {
	got := FirstDueDate(time.Date(2026, 5, 20, 23, 59, 0, 0, time.FixedZone("X", 3*3600)))
	assert.Equal(t, time.Date(2026, 6, 20, 20, 59, 0, 0, time.UTC), got)
}

func TestGenerateSchedule_LateCutoffFollowsGenerationInstant(t *testing.T) {
	app := approvedApp(t, "10200", "0", 12, "850")
	items, err := GenerateSchedule(app, generatedAt)
	require.NoError(t, err)

	first := items[0]
	// 23h after the due instant is still on time; 24h is one day late.
	require.NoError(t, first.Pay(Receipt{Method: MethodCash}, first.DueDate.Add(23*time.Hour)))
	assert.Equal(t, StatusPaid, first.Status)
	assert.True(t, first.LateFee.IsZero())

	second := items[1]
	require.NoError(t, second.Pay(Receipt{Method: MethodCash}, second.DueDate.Add(24*time.Hour)))
	assert.Equal(t, StatusLate, second.Status)
	assert.Equal(t, "0.43", second.LateFee.StringFixed(2))
}
