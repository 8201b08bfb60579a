package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"credit-engine/internal/domain/amortization"
	appDomain "credit-engine/internal/domain/application"
	"credit-engine/internal/domain/decision"
	"credit-engine/internal/domain/errs"
	"credit-engine/internal/domain/payment"
	"credit-engine/internal/domain/uow"
	"credit-engine/internal/infrastructure/logging"
	"credit-engine/internal/infrastructure/metrics"
	"credit-engine/pkg/id"
)

type Usecase struct {
	tx      uow.UnitOfWork
	repos   uow.Repos
	engine  *decision.Engine
	metrics *metrics.Collector
	log     logrus.FieldLogger
	now     func() time.Time
}

// NewUsecase: repos serve reads outside a transaction, tx the state transitions.
// A nil engine uses the default income policy; a nil collector records nothing.
func NewUsecase(tx uow.UnitOfWork, repos uow.Repos, engine *decision.Engine, m *metrics.Collector, log logrus.FieldLogger) *Usecase {
	if engine == nil {
		engine = decision.NewEngine(nil)
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Usecase{tx: tx, repos: repos, engine: engine, metrics: m, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Submit runs the automatic decision on a new application. An approved request
// is inserted, approved and scheduled in one transaction, so a failure stores
// nothing and the same request can simply be retried. A declined one is stored
// pending with a review note.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if !in.RequestedAmount.IsPositive() {
		return nil, errs.Validation("loan application", "requested amount must be positive")
	}
	if in.RequestedTerm <= 0 {
		return nil, errs.Validation("loan application", "requested term must be positive")
	}

	b, err := u.repos.Borrowers.GetByID(ctx, in.BorrowerID)
	if err != nil {
		return nil, err
	}
	p, err := u.repos.Products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, errs.Validation("loan application", "loan product is not active")
	}
	credits, err := u.repos.Applications.CountByBorrowerAndStatus(ctx, b.ID, appDomain.StatusApproved)
	if err != nil {
		return nil, err
	}

	d, err := u.engine.Decide(decision.Input{
		Principal:       in.RequestedAmount,
		Term:            in.RequestedTerm,
		AnnualRate:      p.InterestRate,
		MonthlyIncome:   b.MonthlyIncome,
		ExistingCredits: int(credits),
	})
	if err != nil {
		return nil, err
	}

	score := d.CreditScore
	app := &appDomain.Application{
		Number:          id.NewNumber(appDomain.NumberPrefix),
		BorrowerID:      b.ID,
		ProductID:       p.ID,
		RequestedAmount: in.RequestedAmount,
		RequestedTerm:   in.RequestedTerm,
		Status:          appDomain.StatusPending,
		Documents:       in.Documents,
		CreditScore:     &score,
		IsUrgent:        in.IsUrgent,
	}
	logger := u.log.WithFields(logrus.Fields{
		"borrower_id":  b.ID,
		"policy":       d.Policy,
		"credit_score": d.CreditScore,
	})
	if !d.Approved {
		if err := app.DeferToReview(d.IncomeRatio); err != nil {
			return nil, err
		}
		if err := u.repos.Applications.Create(ctx, app); err != nil {
			return nil, err
		}
		u.metrics.RecordDecision("deferred", d.Policy, d.CreditScore)
		logger.WithField("application_id", app.ID).Info("application deferred to manual review")
		return &SubmitResult{Application: app, Decision: d}, nil
	}

	terms := appDomain.Terms{
		Amount:         in.RequestedAmount,
		TermMonths:     in.RequestedTerm,
		AnnualRate:     p.InterestRate,
		MonthlyPayment: d.MonthlyPayment,
		TotalPayment:   d.TotalPayment,
	}
	var items []*payment.Installment
	err = u.tx.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Applications.Create(ctx, app); err != nil {
			return err
		}
		var err error
		items, err = u.approve(ctx, r, app, terms)
		return err
	})
	if err != nil {
		u.metrics.RecordDecision("failed", d.Policy, d.CreditScore)
		logger.WithError(err).Error("automatic approval failed, nothing stored")
		return nil, err
	}

	u.metrics.RecordDecision("approved", d.Policy, d.CreditScore)
	logger.WithFields(logrus.Fields{
		"application_id": app.ID,
		"installments":   len(items),
	}).Info("application approved automatically")
	return &SubmitResult{Application: app, Decision: d, Payments: items}, nil
}

// approve applies the terms and stores the schedule inside the caller's
// transaction. Storage failures of the schedule come back as ErrSchedulePersist.
func (u *Usecase) approve(ctx context.Context, r uow.Repos, a *appDomain.Application, t appDomain.Terms) ([]*payment.Installment, error) {
	now := u.now()
	if err := a.Approve(t, now); err != nil {
		return nil, err
	}
	if err := r.Applications.Save(ctx, a); err != nil {
		return nil, err
	}
	items, err := payment.GenerateSchedule(a, now)
	if err != nil {
		return nil, err
	}
	if err := r.Payments.CreateBatch(ctx, items); err != nil {
		return nil, u.scheduleFailure(err)
	}
	return items, nil
}

func (u *Usecase) scheduleFailure(err error) error {
	if errors.Is(err, payment.ErrScheduleExist) {
		return err
	}
	u.metrics.RecordScheduleFailure()
	return appDomain.ErrSchedulePersist.Wrap(err)
}

// Review records a reviewer's decision on a pending or under-review application.
func (u *Usecase) Review(ctx context.Context, applicationID uint64, in ReviewInput) (*ReviewResult, error) {
	switch in.Decision {
	case ReviewApproved, ReviewRejected:
	default:
		return nil, errs.Validation("loan application", "decision must be approved or rejected")
	}

	var res ReviewResult
	err := u.tx.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *appDomain.Application) error {
		if notes := strings.TrimSpace(in.Notes); notes != "" {
			a.Notes = notes
		}
		reviewer := in.ReviewerID
		a.ReviewedBy = &reviewer

		if in.Decision == ReviewRejected {
			if err := a.Reject(in.RejectionReason, u.now()); err != nil {
				return err
			}
			res.Application = a
			return r.Applications.Save(ctx, a)
		}

		p, err := r.Products.GetByID(ctx, a.ProductID)
		if err != nil {
			return err
		}
		plan, err := amortization.Compute(a.RequestedAmount, p.InterestRate, a.RequestedTerm)
		if err != nil {
			return err
		}
		items, err := u.approve(ctx, r, a, appDomain.Terms{
			Amount:         a.RequestedAmount,
			TermMonths:     a.RequestedTerm,
			AnnualRate:     p.InterestRate,
			MonthlyPayment: plan.MonthlyPayment,
			TotalPayment:   plan.TotalPayment,
		})
		if err != nil {
			return err
		}
		res.Application, res.Payments = a, items
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"application_id": applicationID,
		"decision":       in.Decision,
		"reviewer_id":    in.ReviewerID,
	}).Info("application reviewed")
	return &res, nil
}

// StartReview moves a pending application to under_review.
func (u *Usecase) StartReview(ctx context.Context, applicationID, reviewerID uint64) (*appDomain.Application, error) {
	var out *appDomain.Application
	err := u.tx.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *appDomain.Application) error {
		if err := a.StartReview(reviewerID, u.now()); err != nil {
			return err
		}
		out = a
		return r.Applications.Save(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel is open to the owning borrower while the application is pending.
func (u *Usecase) Cancel(ctx context.Context, applicationID, borrowerID uint64) (*appDomain.Application, error) {
	var out *appDomain.Application
	err := u.tx.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *appDomain.Application) error {
		if err := a.Cancel(borrowerID); err != nil {
			return err
		}
		out = a
		return r.Applications.Save(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	u.log.WithField("application_id", applicationID).Info("application cancelled")
	return out, nil
}

// GenerateSchedule stores the schedule of an approved application, or returns
// the one already stored. Safe to call again after a failed attempt.
func (u *Usecase) GenerateSchedule(ctx context.Context, applicationID uint64) ([]*payment.Installment, error) {
	var out []*payment.Installment
	err := u.tx.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *appDomain.Application) error {
		if _, err := a.ApprovedTerms(); err != nil {
			return err
		}
		existing, err := r.Payments.ListByApplication(ctx, a.ID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			out = existing
			return nil
		}
		items, err := payment.GenerateSchedule(a, u.now())
		if err != nil {
			return err
		}
		if err := r.Payments.CreateBatch(ctx, items); err != nil {
			return u.scheduleFailure(err)
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, applicationID uint64) (*appDomain.Application, error) {
	return u.repos.Applications.GetByID(ctx, applicationID)
}

func (u *Usecase) GetByNumber(ctx context.Context, number string) (*appDomain.Application, error) {
	return u.repos.Applications.GetByNumber(ctx, number)
}

func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID uint64) ([]*appDomain.Application, error) {
	if _, err := u.repos.Borrowers.GetByID(ctx, borrowerID); err != nil {
		return nil, err
	}
	return u.repos.Applications.ListByBorrower(ctx, borrowerID)
}

func (u *Usecase) ListByStatus(ctx context.Context, status appDomain.Status) ([]*appDomain.Application, error) {
	if !status.Valid() {
		return nil, errs.Validation("loan application", "unknown status "+string(status))
	}
	return u.repos.Applications.ListByStatus(ctx, status)
}

// Summary aggregates the installments of one application.
func (u *Usecase) Summary(ctx context.Context, applicationID uint64) (*Summary, error) {
	a, err := u.repos.Applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	items, err := u.repos.Payments.ListByApplication(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	return &Summary{Application: a, Payments: payment.Summarize(items, u.now())}, nil
}
