package application

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/decision"
)

func (a *Application) reviewable() bool {
	return a.Status == StatusPending || a.Status == StatusUnderReview
}

// Approve copies the approved terms onto the application.
func (a *Application) Approve(t Terms, now time.Time) error {
	if !a.reviewable() {
		return ErrNotReviewable
	}
	term := t.TermMonths
	at := now.UTC()
	a.Status = StatusApproved
	a.ApprovedAmount = decimal.NewNullDecimal(t.Amount)
	a.ApprovedTerm = &term
	a.ApprovedInterestRate = decimal.NewNullDecimal(t.AnnualRate)
	a.MonthlyPayment = decimal.NewNullDecimal(t.MonthlyPayment)
	a.TotalPayment = decimal.NewNullDecimal(t.TotalPayment)
	a.RejectionReason = nil
	a.ReviewedAt = &at
	return nil
}

// DeferToReview leaves a pending application pending with a note carrying the
// income ratio the automatic decision saw.
func (a *Application) DeferToReview(incomeRatio decimal.Decimal) error {
	if a.Status != StatusPending {
		return ErrNotPending
	}
	a.Notes = decision.ReviewNote(incomeRatio)
	return nil
}

func (a *Application) Reject(reason string, now time.Time) error {
	if !a.reviewable() {
		return ErrNotReviewable
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	at := now.UTC()
	a.Status = StatusRejected
	a.RejectionReason = &reason
	a.ReviewedAt = &at
	return nil
}

func (a *Application) StartReview(reviewerID uint64, now time.Time) error {
	if a.Status != StatusPending {
		return ErrNotPending
	}
	at := now.UTC()
	a.Status = StatusUnderReview
	a.ReviewedBy = &reviewerID
	a.ReviewedAt = &at
	return nil
}

// Cancel is only open to the borrower who submitted the application.
func (a *Application) Cancel(borrowerID uint64) error {
	if a.BorrowerID != borrowerID {
		return ErrNotOwner
	}
	if a.Status != StatusPending {
		return ErrNotPending
	}
	a.Status = StatusCancelled
	return nil
}

// ApprovedTerms returns the terms a schedule must be generated from.
func (a *Application) ApprovedTerms() (Terms, error) {
	if a.Status != StatusApproved || !a.ApprovedAmount.Valid || a.ApprovedTerm == nil ||
		!a.ApprovedInterestRate.Valid || !a.MonthlyPayment.Valid {
		return Terms{}, ErrNotApproved
	}
	t := Terms{
		Amount:         a.ApprovedAmount.Decimal,
		TermMonths:     *a.ApprovedTerm,
		AnnualRate:     a.ApprovedInterestRate.Decimal,
		MonthlyPayment: a.MonthlyPayment.Decimal,
	}
	if a.TotalPayment.Valid {
		t.TotalPayment = a.TotalPayment.Decimal
	}
	return t, nil
}
