package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	appDomain "credit-engine/internal/domain/application"
	"credit-engine/internal/domain/metadata"
	"credit-engine/internal/usecase/application"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitApplicationReq struct {
	BorrowerID      uint64          `json:"borrower_id" validate:"required"`
	ProductID       uint64          `json:"product_id" validate:"required"`
	RequestedAmount decimal.Decimal `json:"requested_amount" validate:"decgt0,dec2"`
	RequestedTerm   int             `json:"requested_term" validate:"gte=1,lte=600"`
	IsUrgent        bool            `json:"is_urgent"`
	Documents       metadata.Map    `json:"documents"`
}

type reviewReq struct {
	Decision        string `json:"decision" validate:"required,oneof=approved rejected"`
	ReviewerID      uint64 `json:"reviewer_id" validate:"required"`
	Notes           string `json:"notes"`
	RejectionReason string `json:"rejection_reason" validate:"required_if=Decision rejected"`
}

type startReviewReq struct {
	ReviewerID uint64 `json:"reviewer_id" validate:"required"`
}

type cancelReq struct {
	BorrowerID uint64 `json:"borrower_id" validate:"required"`
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitApplicationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Submit(c.Request().Context(), application.SubmitInput{
		BorrowerID:      req.BorrowerID,
		ProductID:       req.ProductID,
		RequestedAmount: req.RequestedAmount,
		RequestedTerm:   req.RequestedTerm,
		IsUrgent:        req.IsUrgent,
		Documents:       req.Documents,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid application id")
	}
	a, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ApplicationHandler) GetByNumber(c echo.Context) error {
	a, err := h.uc.GetByNumber(c.Request().Context(), c.Param("number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// List serves GET /applications?status=...
func (h *ApplicationHandler) List(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = string(appDomain.StatusPending)
	}
	list, err := h.uc.ListByStatus(c.Request().Context(), appDomain.Status(status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) ListByBorrower(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid borrower id")
	}
	list, err := h.uc.ListByBorrower(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) Summary(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid application id")
	}
	s, err := h.uc.Summary(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *ApplicationHandler) Review(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid application id")
	}
	var req reviewReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Review(c.Request().Context(), id, application.ReviewInput{
		Decision:        req.Decision,
		ReviewerID:      req.ReviewerID,
		Notes:           req.Notes,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ApplicationHandler) StartReview(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid application id")
	}
	var req startReviewReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	a, err := h.uc.StartReview(c.Request().Context(), id, req.ReviewerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ApplicationHandler) Cancel(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid application id")
	}
	var req cancelReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	a, err := h.uc.Cancel(c.Request().Context(), id, req.BorrowerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// GenerateSchedule is the retry path for an approved application whose
// schedule could not be stored.
func (h *ApplicationHandler) GenerateSchedule(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid application id")
	}
	items, err := h.uc.GenerateSchedule(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
