package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/payment"
	"credit-engine/internal/domain/uow"
)

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	p := seedProduct(t, db, "Personal", "0", "1000", "50000")
	b := seedBorrower(t, db, "ana@example.com")
	sentinel := errors.New("boom")

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		a := &application.Application{Number: "APP-ROLL", BorrowerID: b.ID, ProductID: p.ID,
			RequestedAmount: d("1000"), RequestedTerm: 3, Status: application.StatusPending}
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}
	if _, err := guow.Repos().Applications.GetByNumber(ctx, "APP-ROLL"); !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected application absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinApplicationTx_ApproveWithSchedule(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	p := seedProduct(t, db, "Personal", "0", "1000", "50000")
	b := seedBorrower(t, db, "ana@example.com")
	seeded := seedApplication(t, db, "APP-1", b.ID, p.ID, application.StatusPending)
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	err := guow.WithinApplicationTx(ctx, seeded.ID, func(r uow.Repos, a *application.Application) error {
		if a.Status != application.StatusPending {
			t.Fatalf("unexpected application passed to fn: %+v", a)
		}
		if err := a.Approve(application.Terms{
			Amount: d("10200"), TermMonths: 12, AnnualRate: d("0"),
			MonthlyPayment: d("850"), TotalPayment: d("10200"),
		}, now); err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		items, err := payment.GenerateSchedule(a, now)
		if err != nil {
			return err
		}
		return r.Payments.CreateBatch(ctx, items)
	})
	if err != nil {
		t.Fatalf("WithinApplicationTx: %v", err)
	}

	repos := guow.Repos()
	got, err := repos.Applications.GetByID(ctx, seeded.ID)
	if err != nil || got.Status != application.StatusApproved {
		t.Fatalf("application after commit: %+v, %v", got, err)
	}
	if n, _ := repos.Payments.CountByApplication(ctx, seeded.ID); n != 12 {
		t.Fatalf("want 12 installments, got %d", n)
	}
}

func TestGormUoW_WithinApplicationTx_RollbackKeepsPending(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	p := seedProduct(t, db, "Personal", "0", "1000", "50000")
	b := seedBorrower(t, db, "ana@example.com")
	seeded := seedApplication(t, db, "APP-1", b.ID, p.ID, application.StatusPending)
	sentinel := errors.New("schedule insert failed")

	_ = guow.WithinApplicationTx(ctx, seeded.ID, func(r uow.Repos, a *application.Application) error {
		a.Status = application.StatusApproved
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		return sentinel
	})

	got, err := guow.Repos().Applications.GetByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != application.StatusPending {
		t.Fatalf("expected pending after rollback, got %s", got.Status)
	}
}

func TestGormUoW_WithinApplicationTx_NotFound(t *testing.T) {
	guow := NewGormUoW(openTestDB(t))
	err := guow.WithinApplicationTx(context.Background(), 42, func(uow.Repos, *application.Application) error {
		t.Fatalf("callback should not be called when application missing")
		return nil
	})
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGormUoW_WithinPaymentTx(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	guow := NewGormUoW(db)

	p := seedProduct(t, db, "Personal", "0", "1000", "50000")
	b := seedBorrower(t, db, "ana@example.com")
	a := seedApplication(t, db, "APP-1", b.ID, p.ID, application.StatusApproved)
	due := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	items := makeInstallments(a.ID, 2, due)
	if err := guow.Repos().Payments.CreateBatch(ctx, items); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	err := guow.WithinPaymentTx(ctx, items[0].ID, func(r uow.Repos, inst *payment.Installment) error {
		if err := inst.Pay(payment.Receipt{Method: payment.MethodCash}, due.AddDate(0, 0, 10)); err != nil {
			return err
		}
		return r.Payments.Save(ctx, inst)
	})
	if err != nil {
		t.Fatalf("WithinPaymentTx: %v", err)
	}

	got, err := guow.Repos().Payments.GetByID(ctx, items[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != payment.StatusLate || !got.LateFee.Equal(d("4.25")) || got.PaidAt == nil {
		t.Fatalf("unexpected installment after pay: %+v", got)
	}
}
