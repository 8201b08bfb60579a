package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/errs"
	"credit-engine/internal/domain/metadata"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusLate      Status = "late"
	StatusDefaulted Status = "defaulted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusLate, StatusDefaulted:
		return true
	}
	return false
}

// Settled reports whether money has been received for the installment.
func (s Status) Settled() bool { return s == StatusPaid || s == StatusLate }

type Method string

const (
	MethodBankTransfer Method = "bank_transfer"
	MethodCreditCard   Method = "credit_card"
	MethodCash         Method = "cash"
	MethodCheck        Method = "check"
)

func (m Method) Valid() bool {
	switch m {
	case MethodBankTransfer, MethodCreditCard, MethodCash, MethodCheck:
		return true
	}
	return false
}

const NumberPrefix = "PMT"

var (
	ErrNotFound      = errs.NotFound("payment")
	ErrAlreadyPaid   = errs.InvalidState("payment", "payment already paid")
	ErrDefaulted     = errs.InvalidState("payment", "payment is defaulted")
	ErrNotPending    = errs.InvalidState("payment", "only pending payments can be defaulted")
	ErrMethod        = errs.Validation("payment", "payment method must be one of bank_transfer, credit_card, cash, check")
	ErrNotOwner      = errs.New(errs.KindForbidden, "payment", "payment belongs to another borrower")
	ErrScheduleExist = errs.Conflict("payment", "payment schedule already exists")
)

// Table: payments
type Installment struct {
	ID                uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Number            string          `gorm:"column:payment_number;size:50;not null;uniqueIndex:ux_payments_number" json:"payment_number"`
	ApplicationID     uint64          `gorm:"column:application_id;not null;uniqueIndex:ux_payments_application_installment,priority:1" json:"application_id"`
	InstallmentNumber int             `gorm:"column:installment_number;not null;uniqueIndex:ux_payments_application_installment,priority:2" json:"installment_number"`
	Amount            decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	PrincipalAmount   decimal.Decimal `gorm:"column:principal_amount;type:decimal(18,2);not null" json:"principal_amount"`
	InterestAmount    decimal.Decimal `gorm:"column:interest_amount;type:decimal(18,2);not null" json:"interest_amount"`
	LateFee           decimal.Decimal `gorm:"column:late_fee;type:decimal(18,2);not null;default:0" json:"late_fee"`
	RemainingBalance  decimal.Decimal `gorm:"column:remaining_balance;type:decimal(18,2);not null" json:"remaining_balance"`
	Status            Status          `gorm:"column:status;size:20;not null;default:'pending';index:idx_payments_status" json:"status"`
	Method            *Method         `gorm:"column:payment_method;size:20" json:"payment_method,omitempty"`
	DueDate           time.Time       `gorm:"column:due_date;not null;index:idx_payments_due_date" json:"due_date"`
	PaidAt            *time.Time      `gorm:"column:paid_at" json:"paid_at,omitempty"`
	TransactionID     *string         `gorm:"column:transaction_id;size:100" json:"transaction_id,omitempty"`
	Notes             *string         `gorm:"column:notes;type:text" json:"notes,omitempty"`
	Details           metadata.Map    `gorm:"column:payment_details;type:json" json:"payment_details,omitempty"`
	IsAutoPayment     bool            `gorm:"column:is_auto_payment;not null;default:false" json:"is_auto_payment"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Installment) TableName() string { return "payments" }

// Receipt describes how an installment was paid.
type Receipt struct {
	Method        Method
	TransactionID string
	Notes         string
	Details       metadata.Map
}
