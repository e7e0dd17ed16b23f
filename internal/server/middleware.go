package server

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/petr3232-cloud/syndicate-backend/internal/errors"
)

const bearerPrefix = "Bearer "

// requireAuth verifies the Bearer session token and puts the caller's
// Telegram id into the request context. Every failure mode (missing header,
// malformed token, bad signature, expiry) rejects with the same response so
// callers learn nothing about verification internals.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return apperrors.UnauthorizedError("authentication required")
		}

		telegramID, err := s.tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return apperrors.UnauthorizedError("authentication required")
		}

		c.Set("telegramID", telegramID)
		return next(c)
	}
}

// telegramID reads the authenticated caller's Telegram id set by requireAuth.
func telegramID(c echo.Context) (string, error) {
	id, ok := c.Get("telegramID").(string)
	if !ok || id == "" {
		return "", apperrors.InternalError("missing telegram id in context", nil)
	}
	return id, nil
}
