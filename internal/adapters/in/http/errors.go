package http

import (
	"errors"
	"net/http"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/payment"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use-case error to the wire. Domain validation answers
// 400, missing objects 404, business conflicts 409, failed voucher
// settlement 422 with the original customer-facing message.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrOrderItemsOutOfStock),
		errors.Is(err, commands.ErrAccountLimitReached):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, payment.ErrInsufficientVoucherBalance):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: "Insufficient voucher balance.",
		})
	case errors.Is(err, payment.ErrInvalidPaymentMethod):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid payment method.",
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

// badRequest answers a malformed request body or path parameter.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
