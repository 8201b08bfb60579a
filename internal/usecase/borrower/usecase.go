package borrower

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	borrowerDomain "credit-engine/internal/domain/borrower"
	"credit-engine/internal/domain/errs"
	"credit-engine/internal/infrastructure/logging"
)

type CreateInput struct {
	Email         string
	FirstName     string
	LastName      string
	Phone         string
	MonthlyIncome decimal.Decimal
}

type Usecase struct {
	repo borrowerDomain.Repository
	log  logrus.FieldLogger
}

func NewUsecase(r borrowerDomain.Repository, log logrus.FieldLogger) *Usecase {
	if log == nil {
		log = logging.Discard()
	}
	return &Usecase{repo: r, log: log}
}

// Create registers a borrower; a taken email is a conflict.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*borrowerDomain.Borrower, error) {
	b := &borrowerDomain.Borrower{
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Phone:         strings.TrimSpace(in.Phone),
		MonthlyIncome: in.MonthlyIncome,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	u.log.WithField("borrower_id", b.ID).Info("borrower registered")
	return b, nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID uint64) (*borrowerDomain.Borrower, error) {
	return u.repo.GetByID(ctx, borrowerID)
}

// UpdateIncome changes the income later decisions are made on. Applications
// already decided are not revisited.
func (u *Usecase) UpdateIncome(ctx context.Context, borrowerID uint64, income decimal.Decimal) (*borrowerDomain.Borrower, error) {
	if income.IsNegative() {
		return nil, errs.Validation("borrower", "monthly income must not be negative")
	}
	b, err := u.repo.GetByID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	b.MonthlyIncome = income
	if err := u.repo.Save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
