package http

import (
	"strings"

	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// currentUserKey is the echo context key holding the authenticated user.
const currentUserKey = "currentUser"

// requireUser authenticates the request with a bearer token and stores the
// resolved user in the request context.
func (s *Server) requireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token, err := bearerToken(ctx)
		if err != nil {
			return respondError(ctx, err)
		}

		u, err := s.accessPolicy.RequireUser(ctx.Request().Context(), token)
		if err != nil {
			return respondError(ctx, err)
		}

		ctx.Set(currentUserKey, u)
		return next(ctx)
	}
}

// requireAdmin is requireUser plus the administrator check.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token, err := bearerToken(ctx)
		if err != nil {
			return respondError(ctx, err)
		}

		u, err := s.accessPolicy.RequireAdmin(ctx.Request().Context(), token)
		if err != nil {
			return respondError(ctx, err)
		}

		ctx.Set(currentUserKey, u)
		return next(ctx)
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", ports.ErrTokenInvalid
	}
	return strings.TrimPrefix(header, prefix), nil
}

// currentUser returns the user stored by the auth middleware.
func currentUser(ctx echo.Context) *user.User {
	u, _ := ctx.Get(currentUserKey).(*user.User)
	return u
}
