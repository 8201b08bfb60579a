package mysql

import (
	"gorm.io/gorm"

	"credit-engine/internal/domain/application"
	"credit-engine/internal/domain/borrower"
	"credit-engine/internal/domain/calculation"
	"credit-engine/internal/domain/payment"
	"credit-engine/internal/domain/product"
)

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		&product.Product{},
		&borrower.Borrower{},
		&application.Application{},
		&payment.Installment{},
		&calculation.Calculation{},
	}
}

// Migrate creates or updates the schema, including the unique indexes the
// domain relies on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
