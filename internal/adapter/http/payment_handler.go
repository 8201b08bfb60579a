package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"credit-engine/internal/domain/metadata"
	paymentDomain "credit-engine/internal/domain/payment"
	"credit-engine/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type payReq struct {
	PaymentMethod string       `json:"payment_method" validate:"required,oneof=bank_transfer credit_card cash check"`
	TransactionID string       `json:"transaction_id" validate:"max=100"`
	Notes         string       `json:"notes"`
	Details       metadata.Map `json:"details"`
}

func (r payReq) input() payment.PayInput {
	return payment.PayInput{
		Method:        paymentDomain.Method(r.PaymentMethod),
		TransactionID: r.TransactionID,
		Notes:         r.Notes,
		Details:       r.Details,
	}
}

func (h *PaymentHandler) Pay(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid payment id")
	}
	var req payReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.Pay(c.Request().Context(), id, req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// PayForBorrower serves POST /borrowers/:id/payments/:paymentId/pay.
func (h *PaymentHandler) PayForBorrower(c echo.Context) error {
	borrowerID, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid borrower id")
	}
	paymentID, ok := pathID(c, "paymentId")
	if !ok {
		return badRequest(c, "invalid payment id")
	}
	var req payReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.PayForBorrower(c.Request().Context(), borrowerID, paymentID, req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) MarkDefaulted(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid payment id")
	}
	p, err := h.uc.MarkDefaulted(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid payment id")
	}
	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) GetByNumber(c echo.Context) error {
	p, err := h.uc.GetByNumber(c.Request().Context(), c.Param("number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// List serves GET /payments?status=...
func (h *PaymentHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = string(paymentDomain.StatusPending)
	}
	list, err := h.uc.ListByStatus(c.Request().Context(), paymentDomain.Status(status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *PaymentHandler) ListByApplication(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid application id")
	}
	list, err := h.uc.ListByApplication(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// ListByBorrower serves GET /borrowers/:id/payments with an optional status filter.
func (h *PaymentHandler) ListByBorrower(c echo.Context) error {
	return h.listByBorrower(c, paymentDomain.Status(c.QueryParam("status")))
}

func (h *PaymentHandler) PendingByBorrower(c echo.Context) error {
	return h.listByBorrower(c, paymentDomain.StatusPending)
}

func (h *PaymentHandler) LateByBorrower(c echo.Context) error {
	return h.listByBorrower(c, paymentDomain.StatusLate)
}

func (h *PaymentHandler) listByBorrower(c echo.Context, status paymentDomain.Status) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid borrower id")
	}
	list, err := h.uc.ListByBorrower(c.Request().Context(), id, status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *PaymentHandler) BorrowerSummary(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid borrower id")
	}
	s, err := h.uc.BorrowerSummary(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}
