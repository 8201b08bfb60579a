package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/errs"
	"credit-engine/internal/domain/payment"
)

func TestPayment_CreateBatchAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, "Personal", "0", "1000", "50000")
	b := seedBorrower(t, db, "ana@example.com")
	a := seedApplication(t, db, "APP-1", b.ID, p.ID, application.StatusApproved)

	first := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	items := makeInstallments(a.ID, 12, first)
	if err := repo.CreateBatch(ctx, items); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	for _, it := range items {
		if it.ID == 0 {
			t.Fatalf("batch insert did not set IDs")
		}
	}

	got, err := repo.ListByApplication(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListByApplication: %v", err)
	}
	if len(got) != 12 || got[0].InstallmentNumber != 1 || got[11].InstallmentNumber != 12 {
		t.Fatalf("unexpected schedule: %d rows", len(got))
	}
	if !got[0].DueDate.Equal(first) {
		t.Errorf("due date = %v, want %v", got[0].DueDate, first)
	}

	if n, err := repo.CountByApplication(ctx, a.ID); err != nil || n != 12 {
		t.Fatalf("CountByApplication = %d, %v", n, err)
	}

	byNumber, err := repo.GetByNumber(ctx, items[3].Number)
	if err != nil || byNumber.InstallmentNumber != 4 {
		t.Fatalf("GetByNumber: %+v, %v", byNumber, err)
	}
}

func TestPayment_SecondScheduleConflicts(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, "Personal", "0", "1000", "50000")
	b := seedBorrower(t, db, "ana@example.com")
	a := seedApplication(t, db, "APP-1", b.ID, p.ID, application.StatusApproved)

	first := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	if err := repo.CreateBatch(ctx, makeInstallments(a.ID, 3, first)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	err := repo.CreateBatch(ctx, makeInstallments(a.ID, 3, first))
	if !errors.Is(err, payment.ErrScheduleExist) || !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("expected schedule conflict, got %v", err)
	}
	if n, _ := repo.CountByApplication(ctx, a.ID); n != 3 {
		t.Fatalf("want 3 installments after rejected duplicate, got %d", n)
	}
}

func TestPayment_NumberCollisionIsPlainConflict(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, "Personal", "0", "1000", "50000")
	b := seedBorrower(t, db, "ana@example.com")
	a1 := seedApplication(t, db, "APP-1", b.ID, p.ID, application.StatusApproved)
	a2 := seedApplication(t, db, "APP-2", b.ID, p.ID, application.StatusApproved)

	first := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	taken := makeInstallments(a1.ID, 2, first)
	if err := repo.CreateBatch(ctx, taken); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	clash := makeInstallments(a2.ID, 2, first)
	clash[1].Number = taken[0].Number

	err := repo.CreateBatch(ctx, clash)
	if !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if errors.Is(err, payment.ErrScheduleExist) {
		t.Fatalf("number collision reported as existing schedule: %v", err)
	}
	if n, _ := repo.CountByApplication(ctx, a2.ID); n != 0 {
		t.Fatalf("want no installments for APP-2, got %d", n)
	}
}

func TestPayment_BorrowerScopedQueries(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	p := seedProduct(t, db, "Personal", "0", "1000", "50000")
	ana := seedBorrower(t, db, "ana@example.com")
	bo := seedBorrower(t, db, "bo@example.com")
	a1 := seedApplication(t, db, "APP-1", ana.ID, p.ID, application.StatusApproved)
	a2 := seedApplication(t, db, "APP-2", bo.ID, p.ID, application.StatusApproved)

	first := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	mine := makeInstallments(a1.ID, 3, first)
	if err := repo.CreateBatch(ctx, mine); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}
	if err := repo.CreateBatch(ctx, makeInstallments(a2.ID, 2, first)); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	mine[0].Status = payment.StatusLate
	if err := repo.Save(ctx, mine[0]); err != nil {
		t.Fatalf("Save: %v", err)
	}

	all, err := repo.ListByBorrower(ctx, ana.ID, nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("ListByBorrower(all) = %d, %v", len(all), err)
	}
	late := payment.StatusLate
	lateOnes, err := repo.ListByBorrower(ctx, ana.ID, &late)
	if err != nil || len(lateOnes) != 1 || lateOnes[0].ID != mine[0].ID {
		t.Fatalf("ListByBorrower(late) = %+v, %v", lateOnes, err)
	}

	owner, err := repo.OwnerOf(ctx, mine[1].ID)
	if err != nil || owner != ana.ID {
		t.Fatalf("OwnerOf = %d, %v", owner, err)
	}
	if _, err := repo.OwnerOf(ctx, 9999); !errors.Is(err, payment.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	pending, err := repo.ListByStatus(ctx, payment.StatusPending)
	if err != nil || len(pending) != 4 {
		t.Fatalf("ListByStatus(pending) = %d, %v", len(pending), err)
	}

	due, err := repo.ListPendingDueBefore(ctx, first.AddDate(0, 1, 1))
	if err != nil {
		t.Fatalf("ListPendingDueBefore: %v", err)
	}
	// ana #2, bo #1 and bo #2; ana #1 is late already
	if len(due) != 3 {
		t.Fatalf("want 3 pending due, got %d", len(due))
	}
}

func TestPayment_GetByIDForUpdate_NotFound(t *testing.T) {
	repo := NewPaymentRepository(openTestDB(t))
	if _, err := repo.GetByIDForUpdate(context.Background(), 1); !errors.Is(err, payment.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
