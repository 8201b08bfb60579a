package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/borrower"
	"credit-engine/internal/domain/payment"
	"credit-engine/internal/domain/product"
	"credit-engine/pkg/id"
)

// openTestDB creates an in-memory sqlite DB with the full schema. One connection
// only: every new sqlite connection would see its own empty database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedProduct(t *testing.T, db *gorm.DB, name, rate, min, max string) *product.Product {
	t.Helper()
	p := &product.Product{
		Name:         name,
		InterestRate: d(rate),
		MinAmount:    d(min),
		MaxAmount:    d(max),
		MinTerm:      3,
		MaxTerm:      36,
		IsActive:     true,
	}
	if err := NewProductRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func seedBorrower(t *testing.T, db *gorm.DB, email string) *borrower.Borrower {
	t.Helper()
	b := &borrower.Borrower{Email: email, FirstName: "Ana", LastName: "Silva", MonthlyIncome: d("5000")}
	if err := NewBorrowerRepository(db).Create(context.Background(), b); err != nil {
		t.Fatalf("seed borrower: %v", err)
	}
	return b
}

func seedApplication(t *testing.T, db *gorm.DB, number string, borrowerID, productID uint64, st application.Status) *application.Application {
	t.Helper()
	a := &application.Application{
		Number:          number,
		BorrowerID:      borrowerID,
		ProductID:       productID,
		RequestedAmount: d("10200"),
		RequestedTerm:   12,
		Status:          st,
	}
	if err := NewApplicationRepository(db).Create(context.Background(), a); err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a
}

func makeInstallments(applicationID uint64, n int, first time.Time) []*payment.Installment {
	out := make([]*payment.Installment, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &payment.Installment{
			Number:            id.NewNumber(payment.NumberPrefix),
			ApplicationID:     applicationID,
			InstallmentNumber: i,
			Amount:            d("850"),
			PrincipalAmount:   d("850"),
			InterestAmount:    decimal.Zero,
			LateFee:           decimal.Zero,
			RemainingBalance:  d("850").Mul(decimal.NewFromInt(int64(n - i))),
			Status:            payment.StatusPending,
			DueDate:           first.AddDate(0, i-1, 0),
		})
	}
	return out
}
