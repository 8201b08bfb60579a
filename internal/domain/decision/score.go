package decision

import "github.com/shopspring/decimal"

const MaxScore = 100

type band struct {
	min    decimal.Decimal
	points int
}

var (
	ratioBands = []band{
		{decimal.RequireFromString("3.0"), 40},
		{decimal.RequireFromString("2.5"), 35},
		{decimal.RequireFromString("2.0"), 30},
		{decimal.RequireFromString("1.5"), 20},
	}
	incomeBands = []band{
		{decimal.NewFromInt(15000), 30},
		{decimal.NewFromInt(10000), 25},
		{decimal.NewFromInt(8000), 20},
		{decimal.NewFromInt(5000), 15},
	}
)

// CreditScore is an informational 0..100 score built from the income/payment
// ratio, the number of credits the borrower already holds and the absolute income.
func CreditScore(income, payment decimal.Decimal, existingCredits int) int {
	score := 10
	if payment.IsPositive() {
		score = points(income.Div(payment), ratioBands, 10)
	}

	switch {
	case existingCredits <= 0:
		score += 30
	case existingCredits == 1:
		score += 25
	case existingCredits == 2:
		score += 15
	default:
		score += 5
	}

	score += points(income, incomeBands, 10)
	return min(score, MaxScore)
}

func points(v decimal.Decimal, bands []band, fallback int) int {
	for _, b := range bands {
		if v.GreaterThanOrEqual(b.min) {
			return b.points
		}
	}
	return fallback
}
