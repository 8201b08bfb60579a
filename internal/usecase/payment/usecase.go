package payment

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"credit-engine/internal/domain/errs"
	paymentDomain "credit-engine/internal/domain/payment"
	"credit-engine/internal/domain/uow"
	"credit-engine/internal/infrastructure/logging"
	"credit-engine/internal/infrastructure/metrics"
)

type Usecase struct {
	tx      uow.UnitOfWork
	repos   uow.Repos
	metrics *metrics.Collector
	log     logrus.FieldLogger
	now     func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, repos uow.Repos, m *metrics.Collector, log logrus.FieldLogger) *Usecase {
	if log == nil {
		log = logging.Discard()
	}
	return &Usecase{tx: tx, repos: repos, metrics: m, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Pay settles one installment under its row lock.
func (u *Usecase) Pay(ctx context.Context, paymentID uint64, in PayInput) (*paymentDomain.Installment, error) {
	return u.pay(ctx, paymentID, nil, in)
}

// PayForBorrower is Pay restricted to installments of the borrower's own
// applications.
func (u *Usecase) PayForBorrower(ctx context.Context, borrowerID, paymentID uint64, in PayInput) (*paymentDomain.Installment, error) {
	return u.pay(ctx, paymentID, &borrowerID, in)
}

func (u *Usecase) pay(ctx context.Context, paymentID uint64, owner *uint64, in PayInput) (*paymentDomain.Installment, error) {
	var out *paymentDomain.Installment
	err := u.tx.WithinPaymentTx(ctx, paymentID, func(r uow.Repos, p *paymentDomain.Installment) error {
		if owner != nil {
			got, err := r.Payments.OwnerOf(ctx, p.ID)
			if err != nil {
				return err
			}
			if got != *owner {
				return paymentDomain.ErrNotOwner
			}
		}
		if err := p.Pay(in.receipt(), u.now()); err != nil {
			return err
		}
		out = p
		return r.Payments.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	fee, _ := out.LateFee.Float64()
	u.metrics.RecordPayment(string(out.Status), fee)
	u.log.WithFields(logrus.Fields{
		"payment_id":     out.ID,
		"application_id": out.ApplicationID,
		"status":         out.Status,
		"late_fee":       out.LateFee.String(),
	}).Info("installment paid")
	return out, nil
}

// MarkDefaulted is the administrative pending → defaulted transition.
func (u *Usecase) MarkDefaulted(ctx context.Context, paymentID uint64) (*paymentDomain.Installment, error) {
	var out *paymentDomain.Installment
	err := u.tx.WithinPaymentTx(ctx, paymentID, func(r uow.Repos, p *paymentDomain.Installment) error {
		if err := p.MarkDefaulted(); err != nil {
			return err
		}
		out = p
		return r.Payments.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	u.metrics.RecordPayment(string(out.Status), 0)
	u.log.WithField("payment_id", out.ID).Warn("installment marked defaulted")
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, paymentID uint64) (*paymentDomain.Installment, error) {
	return u.repos.Payments.GetByID(ctx, paymentID)
}

func (u *Usecase) GetByNumber(ctx context.Context, number string) (*paymentDomain.Installment, error) {
	return u.repos.Payments.GetByNumber(ctx, number)
}

func (u *Usecase) ListByApplication(ctx context.Context, applicationID uint64) ([]*paymentDomain.Installment, error) {
	if _, err := u.repos.Applications.GetByID(ctx, applicationID); err != nil {
		return nil, err
	}
	return u.repos.Payments.ListByApplication(ctx, applicationID)
}

func (u *Usecase) ListByStatus(ctx context.Context, status paymentDomain.Status) ([]*paymentDomain.Installment, error) {
	if !status.Valid() {
		return nil, errs.Validation("payment", "unknown status "+string(status))
	}
	return u.repos.Payments.ListByStatus(ctx, status)
}

// ListByBorrower lists the borrower's installments; an empty status means all.
func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID uint64, status paymentDomain.Status) ([]*paymentDomain.Installment, error) {
	var filter *paymentDomain.Status
	if status != "" {
		if !status.Valid() {
			return nil, errs.Validation("payment", "unknown status "+string(status))
		}
		filter = &status
	}
	if _, err := u.repos.Borrowers.GetByID(ctx, borrowerID); err != nil {
		return nil, err
	}
	return u.repos.Payments.ListByBorrower(ctx, borrowerID, filter)
}

// BorrowerSummary aggregates every installment the borrower owes or has paid.
func (u *Usecase) BorrowerSummary(ctx context.Context, borrowerID uint64) (*paymentDomain.Summary, error) {
	items, err := u.ListByBorrower(ctx, borrowerID, "")
	if err != nil {
		return nil, err
	}
	s := paymentDomain.Summarize(items, u.now())
	return &s, nil
}
