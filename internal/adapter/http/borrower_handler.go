package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"credit-engine/internal/usecase/borrower"
)

type BorrowerHandler struct{ uc *borrower.Usecase }

func NewBorrowerHandler(uc *borrower.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: uc} }

type createBorrowerReq struct {
	Email         string          `json:"email" validate:"required,email,max=191"`
	FirstName     string          `json:"first_name" validate:"required,max=100"`
	LastName      string          `json:"last_name" validate:"max=100"`
	Phone         string          `json:"phone" validate:"max=32"`
	MonthlyIncome decimal.Decimal `json:"monthly_income" validate:"decgte0,dec2"`
}

type incomeReq struct {
	MonthlyIncome decimal.Decimal `json:"monthly_income" validate:"decgte0,dec2"`
}

func (h *BorrowerHandler) Create(c echo.Context) error {
	var req createBorrowerReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	b, err := h.uc.Create(c.Request().Context(), borrower.CreateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BorrowerHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid borrower id")
	}
	b, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BorrowerHandler) UpdateIncome(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid borrower id")
	}
	var req incomeReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	b, err := h.uc.UpdateIncome(c.Request().Context(), id, req.MonthlyIncome)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}
