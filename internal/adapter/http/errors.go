package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"credit-engine/internal/domain/errs"
)

var kindStatus = map[errs.Kind]int{
	errs.KindNotFound:     http.StatusNotFound,
	errs.KindInvalidState: http.StatusConflict,
	errs.KindValidation:   http.StatusUnprocessableEntity,
	errs.KindConflict:     http.StatusConflict,
	errs.KindForbidden:    http.StatusForbidden,
	errs.KindPersistence:  http.StatusServiceUnavailable,
}

// StatusOf maps an error to its HTTP status; errors without a kind are 500.
func StatusOf(err error) int {
	if kind, ok := errs.KindOf(err); ok {
		if code, ok := kindStatus[kind]; ok {
			return code
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as an ErrorResponse. Storage causes stay in the logs.
func writeError(c echo.Context, err error) error {
	var e *errs.Error
	if !errors.As(err, &e) {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Kind == errs.KindPersistence {
		c.Logger().Error(err)
	}
	return c.JSON(StatusOf(err), ErrorResponse{Error: msg, Kind: string(e.Kind)})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Kind:    string(errs.KindValidation),
		Details: ToFieldErrors(err),
	})
}

// bindAndValidate decodes the body into req; a false return means the error
// response has been written.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, badRequest(c, "invalid body")
	}
	if err := c.Validate(req); err != nil {
		return false, validationFailed(c, err)
	}
	return true, nil
}

func pathID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
