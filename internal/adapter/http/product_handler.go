package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"credit-engine/internal/domain/metadata"
	"credit-engine/internal/usecase/product"
)

type ProductHandler struct{ uc *product.Usecase }

func NewProductHandler(uc *product.Usecase) *ProductHandler { return &ProductHandler{uc: uc} }

type productReq struct {
	Name           string          `json:"name" validate:"required,max=100"`
	Description    string          `json:"description"`
	InterestRate   decimal.Decimal `json:"interest_rate" validate:"decgte0,dec2"`
	MinAmount      decimal.Decimal `json:"min_amount" validate:"decgt0,dec2"`
	MaxAmount      decimal.Decimal `json:"max_amount" validate:"decgt0,dec2"`
	MinTerm        int             `json:"min_term" validate:"gte=1"`
	MaxTerm        int             `json:"max_term" validate:"gte=1"`
	CommissionRate decimal.Decimal `json:"commission_rate" validate:"decgte0,dec2"`
	IsActive       *bool           `json:"is_active"`
	Requirements   metadata.Map    `json:"requirements"`
}

func (r productReq) input() product.ProductInput {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return product.ProductInput{
		Name:           r.Name,
		Description:    r.Description,
		InterestRate:   r.InterestRate,
		MinAmount:      r.MinAmount,
		MaxAmount:      r.MaxAmount,
		MinTerm:        r.MinTerm,
		MaxTerm:        r.MaxTerm,
		CommissionRate: r.CommissionRate,
		IsActive:       active,
		Requirements:   r.Requirements,
	}
}

func (h *ProductHandler) List(c echo.Context) error {
	list, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Match serves GET /products/match?amount=...
func (h *ProductHandler) Match(c echo.Context) error {
	amount, err := decimal.NewFromString(c.QueryParam("amount"))
	if err != nil {
		return badRequest(c, "invalid amount")
	}
	list, err := h.uc.Match(c.Request().Context(), amount)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid product id")
	}
	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req productReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.Create(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid product id")
	}
	var req productReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Activate(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid product id")
	}
	p, err := h.uc.Activate(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Deactivate(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid product id")
	}
	p, err := h.uc.Deactivate(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badRequest(c, "invalid product id")
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
