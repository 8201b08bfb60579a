package payment

import (
	"credit-engine/internal/domain/metadata"
	paymentDomain "credit-engine/internal/domain/payment"
)

type PayInput struct {
	Method        paymentDomain.Method
	TransactionID string
	Notes         string
	Details       metadata.Map
}

func (in PayInput) receipt() paymentDomain.Receipt {
	return paymentDomain.Receipt{
		Method:        in.Method,
		TransactionID: in.TransactionID,
		Notes:         in.Notes,
		Details:       in.Details,
	}
}
