package application

import (
	"time"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/errs"
	"credit-engine/internal/domain/metadata"
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusCancelled   Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// NumberPrefix prefixes the public application number.
const NumberPrefix = "APP"

var (
	ErrNotFound        = errs.NotFound("loan application")
	ErrNotApproved     = errs.InvalidState("loan application", "loan application is not approved")
	ErrNotReviewable   = errs.InvalidState("loan application", "only pending or under-review applications can be decided")
	ErrNotPending      = errs.InvalidState("loan application", "only pending applications can be changed")
	ErrNotOwner        = errs.New(errs.KindForbidden, "loan application", "loan application belongs to another borrower")
	ErrReasonRequired  = errs.Validation("loan application", "rejection reason is required")
	ErrSchedulePersist = errs.New(errs.KindPersistence, "loan application", "payment schedule could not be persisted")
)

// Table: loan_applications
type Application struct {
	ID                   uint64              `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Number               string              `gorm:"column:application_number;size:50;not null;uniqueIndex:ux_loan_applications_number" json:"application_number"`
	BorrowerID           uint64              `gorm:"column:borrower_id;not null;index:idx_loan_applications_borrower" json:"borrower_id"`
	ProductID            uint64              `gorm:"column:product_id;not null;index:idx_loan_applications_product" json:"product_id"`
	RequestedAmount      decimal.Decimal     `gorm:"column:requested_amount;type:decimal(18,2);not null" json:"requested_amount"`
	RequestedTerm        int                 `gorm:"column:requested_term;not null" json:"requested_term"`
	ApprovedAmount       decimal.NullDecimal `gorm:"column:approved_amount;type:decimal(18,2)" json:"approved_amount"`
	ApprovedTerm         *int                `gorm:"column:approved_term" json:"approved_term"`
	ApprovedInterestRate decimal.NullDecimal `gorm:"column:approved_interest_rate;type:decimal(6,2)" json:"approved_interest_rate"`
	MonthlyPayment       decimal.NullDecimal `gorm:"column:monthly_payment;type:decimal(18,2)" json:"monthly_payment"`
	TotalPayment         decimal.NullDecimal `gorm:"column:total_payment;type:decimal(18,2)" json:"total_payment"`
	Status               Status              `gorm:"column:status;size:20;not null;default:'pending';index:idx_loan_applications_status" json:"status"`
	RejectionReason      *string             `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`
	Notes                string              `gorm:"column:notes;type:text" json:"notes,omitempty"`
	Documents            metadata.Map        `gorm:"column:documents;type:json" json:"documents,omitempty"`
	CreditScore          *int                `gorm:"column:credit_score" json:"credit_score,omitempty"`
	IsUrgent             bool                `gorm:"column:is_urgent;not null;default:false" json:"is_urgent"`
	ReviewedAt           *time.Time          `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy           *uint64             `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	CreatedAt            time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "loan_applications" }

// Terms are the amortization figures fixed at approval.
type Terms struct {
	Amount         decimal.Decimal
	TermMonths     int
	AnnualRate     decimal.Decimal
	MonthlyPayment decimal.Decimal
	TotalPayment   decimal.Decimal
}
