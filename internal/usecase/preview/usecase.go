package preview

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"credit-engine/internal/domain/borrower"
	"credit-engine/internal/domain/calculation"
	"credit-engine/internal/domain/eligibility"
	"credit-engine/internal/domain/errs"
	"credit-engine/internal/domain/product"
	"credit-engine/internal/infrastructure/logging"
)

type Usecase struct {
	products     product.Repository
	borrowers    borrower.Repository
	calculations calculation.Repository
	log          logrus.FieldLogger
}

func NewUsecase(products product.Repository, borrowers borrower.Repository, calcs calculation.Repository, log logrus.FieldLogger) *Usecase {
	if log == nil {
		log = logging.Discard()
	}
	return &Usecase{products: products, borrowers: borrowers, calculations: calcs, log: log}
}

// Preview runs the eligibility check and keeps an audit record of it. No
// application is created.
func (u *Usecase) Preview(ctx context.Context, in Input) (*Result, error) {
	p, err := u.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, errs.Validation("credit calculation", "loan product is not active")
	}
	if in.BorrowerID != nil {
		if _, err := u.borrowers.GetByID(ctx, *in.BorrowerID); err != nil {
			return nil, err
		}
	}

	res, err := eligibility.Evaluate(eligibility.Request{
		Amount:        in.Amount,
		Term:          in.Term,
		MonthlyIncome: in.MonthlyIncome,
	}, p)
	if err != nil {
		return nil, err
	}

	c := &calculation.Calculation{
		BorrowerID:        in.BorrowerID,
		ProductID:         p.ID,
		RequestedAmount:   in.Amount,
		RequestedTerm:     in.Term,
		InterestRate:      p.InterestRate,
		MonthlyPayment:    res.Schedule.MonthlyPayment,
		TotalPayment:      res.Schedule.TotalPayment,
		TotalInterest:     res.Schedule.TotalInterest,
		Schedule:          calculation.Schedule(res.Schedule.Installments),
		DebtToIncomeRatio: res.DebtToIncomeRatio,
		IsEligible:        res.Eligible,
		EligibilityNotes:  strings.Join(res.Notes, "\n"),
		IPAddress:         in.IPAddress,
		UserAgent:         in.UserAgent,
	}
	if in.MonthlyIncome != nil {
		c.MonthlyIncome = decimal.NewNullDecimal(*in.MonthlyIncome)
	}
	if err := u.calculations.Create(ctx, c); err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"calculation_id": c.ID,
		"product_id":     p.ID,
		"eligible":       res.Eligible,
	}).Debug("preview recorded")

	return &Result{
		CalculationID:     c.ID,
		ProductID:         p.ID,
		InterestRate:      p.InterestRate,
		MonthlyPayment:    res.Schedule.MonthlyPayment,
		TotalPayment:      res.Schedule.TotalPayment,
		TotalInterest:     res.Schedule.TotalInterest,
		Schedule:          res.Schedule.Installments,
		Eligible:          res.Eligible,
		Notes:             res.Notes,
		Message:           res.Message,
		DebtToIncomeRatio: res.DebtToIncomeRatio,
	}, nil
}

func (u *Usecase) Get(ctx context.Context, calculationID uint64) (*calculation.Calculation, error) {
	return u.calculations.GetByID(ctx, calculationID)
}

// History lists a borrower's previews, newest first.
func (u *Usecase) History(ctx context.Context, borrowerID uint64) ([]*calculation.Calculation, error) {
	if _, err := u.borrowers.GetByID(ctx, borrowerID); err != nil {
		return nil, err
	}
	return u.calculations.ListByBorrower(ctx, borrowerID)
}
