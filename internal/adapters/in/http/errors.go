package http

import (
	"errors"
	"net/http"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/core/services"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// respondError maps application errors onto HTTP status codes with a
// {"detail": ...} body. Unrecognized errors are hidden behind a generic 500.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, ports.ErrTokenInvalid), errors.Is(err, ports.ErrTokenExpired):
		ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, services.ErrBadCredentials):
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, services.ErrNotStaff), errors.Is(err, order.ErrNotOrderOwner):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, user.ErrUsernameTaken),
		errors.Is(err, services.ErrInactiveUser),
		errors.Is(err, order.ErrOrderNotPending),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})

	default:
		ctx.Logger().Errorf("unhandled error: %v", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
	}
}

// respondBadRequest returns a 400 with the error message as the detail.
// Used for request-shaped failures that never reach the application layer.
func respondBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
}
