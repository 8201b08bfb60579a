package mysql

import (
	"context"
	"errors"
	"testing"

	"credit-engine/internal/domain/borrower"
	"credit-engine/internal/domain/errs"
)

func TestBorrower_CreateGetAndDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewBorrowerRepository(db)
	ctx := context.Background()

	b := seedBorrower(t, db, "ana@example.com")

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != b.ID || !got.MonthlyIncome.Equal(d("5000")) {
		t.Errorf("unexpected borrower: %+v", got)
	}

	dup := &borrower.Borrower{Email: "ana@example.com", FirstName: "Other"}
	if err := repo.Create(ctx, dup); !errors.Is(err, errs.ErrConflict) {
		t.Fatalf("expected conflict on duplicate email, got %v", err)
	}
}

func TestBorrower_SaveIncome(t *testing.T) {
	db := openTestDB(t)
	repo := NewBorrowerRepository(db)
	ctx := context.Background()

	b := seedBorrower(t, db, "ana@example.com")
	b.MonthlyIncome = d("7250.50")
	if err := repo.Save(ctx, b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.MonthlyIncome.Equal(d("7250.50")) {
		t.Errorf("income = %s", got.MonthlyIncome)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, borrower.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
