// Package reminder notifies borrowers about pending installments that are
// overdue or fall due within a look-ahead window.
package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"credit-engine/internal/adapter/notify"
	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/borrower"
	"credit-engine/internal/domain/payment"
	"credit-engine/internal/infrastructure/logging"
	"credit-engine/internal/infrastructure/metrics"
)

const (
	KindOverdue  = "overdue"
	KindUpcoming = "upcoming"
)

type Job struct {
	payments     payment.Repository
	applications application.Repository
	borrowers    borrower.Repository
	notifier     notify.Notifier
	window       time.Duration
	metrics      *metrics.Collector
	log          logrus.FieldLogger
	now          func() time.Time
}

// Result counts what one run did.
type Result struct {
	Overdue  int
	Upcoming int
	Failed   int
}

func New(payments payment.Repository, apps application.Repository, borrowers borrower.Repository,
	n notify.Notifier, windowDays int, m *metrics.Collector, log logrus.FieldLogger) *Job {
	if log == nil {
		log = logging.Discard()
	}
	if windowDays < 0 {
		windowDays = 0
	}
	return &Job{
		payments:     payments,
		applications: apps,
		borrowers:    borrowers,
		notifier:     n,
		window:       time.Duration(windowDays) * 24 * time.Hour,
		metrics:      m,
		log:          log.WithField("job", "reminder"),
		now:          time.Now,
	}
}

// RunOnce sends one reminder per pending installment due before now+window.
// A failed send is logged and counted; the run carries on.
func (j *Job) RunOnce(ctx context.Context) (Result, error) {
	var res Result
	now := j.now().UTC()
	items, err := j.payments.ListPendingDueBefore(ctx, now.Add(j.window))
	if err != nil {
		return res, fmt.Errorf("reminder: list due installments: %w", err)
	}

	owners := make(map[uint64]*borrower.Borrower)
	for _, inst := range items {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		b, err := j.owner(ctx, inst.ApplicationID, owners)
		if err != nil {
			res.Failed++
			j.log.WithError(err).WithField("payment_id", inst.ID).Warn("reminder: borrower lookup failed")
			continue
		}

		kind := KindUpcoming
		if inst.DueDate.Before(now) {
			kind = KindOverdue
		}
		r := notify.Reminder{
			To:            b.Email,
			Name:          strings.TrimSpace(b.FirstName + " " + b.LastName),
			PaymentNumber: inst.Number,
			Installment:   inst.InstallmentNumber,
			Amount:        inst.Amount,
			LateFee:       payment.LateFee(inst.Amount, payment.DaysLate(inst.DueDate, now)),
			DueDate:       inst.DueDate,
			Overdue:       kind == KindOverdue,
		}
		if err := j.notifier.SendReminder(ctx, r); err != nil {
			res.Failed++
			j.log.WithError(err).WithField("payment_id", inst.ID).Warn("reminder: send failed")
			continue
		}
		j.metrics.RecordReminder(kind)
		if kind == KindOverdue {
			res.Overdue++
		} else {
			res.Upcoming++
		}
	}

	j.log.WithFields(logrus.Fields{
		"overdue":  res.Overdue,
		"upcoming": res.Upcoming,
		"failed":   res.Failed,
	}).Info("reminder run finished")
	return res, nil
}

func (j *Job) owner(ctx context.Context, applicationID uint64, seen map[uint64]*borrower.Borrower) (*borrower.Borrower, error) {
	if b, ok := seen[applicationID]; ok {
		return b, nil
	}
	a, err := j.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	b, err := j.borrowers.GetByID(ctx, a.BorrowerID)
	if err != nil {
		return nil, err
	}
	seen[applicationID] = b
	return b, nil
}

// Schedule registers RunOnce on a cron spec and starts the scheduler. Stop the
// returned cron to end it; runs never overlap.
func (j *Job) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(spec, func() {
		if _, err := j.RunOnce(context.Background()); err != nil {
			j.log.WithError(err).Error("reminder run failed")
		}
	}); err != nil {
		return nil, fmt.Errorf("reminder: cron spec %q: %w", spec, err)
	}
	c.Start()
	return c, nil
}
