package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"credit-engine/internal/usecase/preview"
)

type PreviewHandler struct{ uc *preview.Usecase }

func NewPreviewHandler(uc *preview.Usecase) *PreviewHandler { return &PreviewHandler{uc: uc} }

type previewReq struct {
	ProductID     uint64           `json:"product_id" validate:"required"`
	Amount        decimal.Decimal  `json:"amount" validate:"decgt0,dec2"`
	Term          int              `json:"term" validate:"gte=1,lte=600"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income" validate:"omitempty,decgt0"`
	BorrowerID    *uint64          `json:"borrower_id"`
}

func (h *PreviewHandler) Create(c echo.Context) error {
	var req previewReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Preview(c.Request().Context(), preview.Input{
		ProductID:     req.ProductID,
		Amount:        req.Amount,
		Term:          req.Term,
		MonthlyIncome: req.MonthlyIncome,
		BorrowerID:    req.BorrowerID,
		IPAddress:     c.RealIP(),
		UserAgent:     c.Request().UserAgent(),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *PreviewHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid preview id")
	}
	calc, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, calc)
}

func (h *PreviewHandler) History(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid borrower id")
	}
	list, err := h.uc.History(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}
