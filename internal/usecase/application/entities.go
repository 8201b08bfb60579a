package application

import (
	"github.com/shopspring/decimal"

	appDomain "credit-engine/internal/domain/application"
	"credit-engine/internal/domain/decision"
	"credit-engine/internal/domain/metadata"
	"credit-engine/internal/domain/payment"
)

type SubmitInput struct {
	BorrowerID      uint64
	ProductID       uint64
	RequestedAmount decimal.Decimal
	RequestedTerm   int
	IsUrgent        bool
	Documents       metadata.Map
}

// SubmitResult carries the stored application and the automatic decision.
type SubmitResult struct {
	Application *appDomain.Application `json:"application"`
	Decision    decision.Decision      `json:"decision"`
	Payments    []*payment.Installment `json:"payments,omitempty"`
}

// Review outcomes a reviewer may choose.
const (
	ReviewApproved = "approved"
	ReviewRejected = "rejected"
)

type ReviewInput struct {
	Decision        string
	ReviewerID      uint64
	Notes           string
	RejectionReason string
}

type ReviewResult struct {
	Application *appDomain.Application `json:"application"`
	Payments    []*payment.Installment `json:"payments,omitempty"`
}

// Summary is an application with the aggregate of its installments.
type Summary struct {
	Application *appDomain.Application `json:"application"`
	Payments    payment.Summary        `json:"payments"`
}
